package ui

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/tturner/binwriter/internal/gen"
)

// HexPreview renders up to limit leading bytes of data as spaced hex,
// marking truncation with an ellipsis. A limit of 0 renders nothing.
func HexPreview(data []byte, limit int) string {
	if limit <= 0 || len(data) == 0 {
		return ""
	}
	if len(data) <= limit {
		return gen.EncodeHex(data, 1)
	}
	return gen.EncodeHex(data[:limit], 1) + " ..."
}

// CopyHexPreview puts the hex preview of data on the system clipboard and
// returns the copied text.
func CopyHexPreview(data []byte, limit int) (string, error) {
	text := HexPreview(data, limit)
	if text == "" {
		return "", nil
	}
	if clipboard.Unsupported {
		return text, fmt.Errorf("clipboard is not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return text, fmt.Errorf("copy to clipboard: %w", err)
	}
	return text, nil
}
