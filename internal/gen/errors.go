package gen

import (
	"errors"
	"fmt"
)

var (
	ErrModeConflict        = errors.New("more than one generation mode selected")
	ErrModeMissing         = errors.New("no generation mode selected")
	ErrMissingSize         = errors.New("size is required for this mode")
	ErrNegativeSize        = errors.New("size must not be negative")
	ErrSizeLimit           = errors.New("size exceeds configured maximum")
	ErrInvalidFillByte     = errors.New("fill must be a hex byte (00-FF)")
	ErrInvalidPattern      = errors.New("invalid pattern")
	ErrEmptyPattern        = errors.New("pattern must contain at least one byte")
	ErrInvalidHexLiteral   = errors.New("invalid hex literal")
	ErrOddLength           = errors.New("odd number of hex digits")
	ErrInvalidDigit        = errors.New("invalid hex digit")
	ErrMissingIntegers     = errors.New("integer list is empty")
	ErrInvalidInteger      = errors.New("invalid integer")
	ErrIntegerOutOfRange   = errors.New("integer out of range")
	ErrInvalidIntegerWidth = errors.New("integer width must be between 1 and 8")
	ErrInvalidEndianness   = errors.New("endianness must be little or big")
)

// DecodeError reports why hex text could not be decoded. Reason is
// ErrOddLength or ErrInvalidDigit.
type DecodeError struct {
	Reason error
	// Offset is the index into the whitespace-stripped text.
	Offset int
	Char   rune
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Reason, ErrInvalidDigit) {
		return fmt.Sprintf("%v %q at offset %d", e.Reason, e.Char, e.Offset)
	}
	return fmt.Sprintf("%v (%d digits)", e.Reason, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// RangeError identifies an integer that does not fit the requested width.
type RangeError struct {
	Index int
	Value int64
	Width int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("integer %d at index %d does not fit in %d byte(s)", e.Value, e.Index, e.Width)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrIntegerOutOfRange
}

// GenerationError wraps a strategy failure with the mode that produced it.
type GenerationError struct {
	Mode Mode
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Mode, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
