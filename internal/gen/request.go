// Package gen turns a compact content specification into an exact byte sequence.
package gen

import (
	"fmt"
	"strings"
)

// Mode identifies the generation strategy of a request.
type Mode int

const (
	ModeFill Mode = iota + 1
	ModeRandom
	ModePattern
	ModeHexLiteral
	ModeIntegers
)

func (m Mode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeRandom:
		return "random"
	case ModePattern:
		return "pattern"
	case ModeHexLiteral:
		return "hex"
	case ModeIntegers:
		return "integers"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Endianness is the byte order used by integer encoding.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// ParseEndianness accepts "little" or "big", case-insensitive.
func ParseEndianness(text string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	default:
		return LittleEndian, fmt.Errorf("%w: %q", ErrInvalidEndianness, text)
	}
}

// Request is a validated generation request. The concrete types below are
// the only implementations.
type Request interface {
	Mode() Mode
	// OutputSize is the exact number of bytes Generate will return.
	OutputSize() int64
	sealed()
}

// FillRequest repeats Byte Size times.
type FillRequest struct {
	Size int64
	Byte byte
}

// RandomRequest produces Size unpredictable bytes. When Seeded is set the
// output is reproducible from Seed.
type RandomRequest struct {
	Size   int64
	Seed   int64
	Seeded bool
}

// PatternRequest tiles a non-empty Pattern to Size bytes.
type PatternRequest struct {
	Size    int64
	Pattern []byte
}

// HexRequest emits the bytes encoded by Text. Whitespace in Text is ignored.
type HexRequest struct {
	Text string
}

// IntegersRequest encodes Values as Width-byte unsigned integers.
type IntegersRequest struct {
	Values []int64
	Width  int
	Order  Endianness
}

func (FillRequest) Mode() Mode     { return ModeFill }
func (RandomRequest) Mode() Mode   { return ModeRandom }
func (PatternRequest) Mode() Mode  { return ModePattern }
func (HexRequest) Mode() Mode      { return ModeHexLiteral }
func (IntegersRequest) Mode() Mode { return ModeIntegers }

func (r FillRequest) OutputSize() int64    { return r.Size }
func (r RandomRequest) OutputSize() int64  { return r.Size }
func (r PatternRequest) OutputSize() int64 { return r.Size }

func (r HexRequest) OutputSize() int64 {
	return int64(len(stripSpace(r.Text)) / 2)
}

func (r IntegersRequest) OutputSize() int64 {
	return int64(len(r.Values)) * int64(r.Width)
}

func (FillRequest) sealed()     {}
func (RandomRequest) sealed()   {}
func (PatternRequest) sealed()  {}
func (HexRequest) sealed()      {}
func (IntegersRequest) sealed() {}

// Describe returns a short human-readable label for the request, used in
// console summaries and manifests.
func Describe(req Request) string {
	switch r := req.(type) {
	case FillRequest:
		return fmt.Sprintf("Fill byte %02X", r.Byte)
	case RandomRequest:
		if r.Seeded {
			return fmt.Sprintf("Random (seed %d)", r.Seed)
		}
		return "Random"
	case PatternRequest:
		return fmt.Sprintf("Pattern %s (%d bytes)", EncodeHex(r.Pattern, 0), len(r.Pattern))
	case HexRequest:
		return fmt.Sprintf("Hex literal (%d bytes)", r.OutputSize())
	case IntegersRequest:
		return fmt.Sprintf("Integers x%d, %d-byte %s endian", len(r.Values), r.Width, r.Order)
	default:
		return "unknown"
	}
}
