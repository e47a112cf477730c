package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tturner/binwriter/internal/codec"
)

// Spec is an unvalidated content specification as supplied by flags, a
// config profile or the wizard. Nil fields were not given.
type Spec struct {
	Size       *int64  `yaml:"size,omitempty"`
	Fill       *string `yaml:"fill,omitempty"`
	Random     bool    `yaml:"random,omitempty"`
	Seed       *int64  `yaml:"seed,omitempty"`
	Pattern    *string `yaml:"pattern,omitempty"`
	Hex        *string `yaml:"hex,omitempty"`
	Integers   *string `yaml:"integers,omitempty"`
	Width      *int    `yaml:"width,omitempty"`
	Endianness *string `yaml:"endianness,omitempty"`
}

// Limits bounds the output a request may produce.
type Limits struct {
	// MaxSize caps the output length in bytes. Zero means unlimited.
	MaxSize int64
}

// Modes lists the modes selected in the spec, in canonical order.
func (s Spec) Modes() []Mode {
	var modes []Mode
	if s.Fill != nil {
		modes = append(modes, ModeFill)
	}
	if s.Random {
		modes = append(modes, ModeRandom)
	}
	if s.Pattern != nil {
		modes = append(modes, ModePattern)
	}
	if s.Hex != nil {
		modes = append(modes, ModeHexLiteral)
	}
	if s.Integers != nil {
		modes = append(modes, ModeIntegers)
	}
	return modes
}

// Ignored names the fields that are set but have no effect for the
// selected mode.
func (s Spec) Ignored() []string {
	modes := s.Modes()
	if len(modes) != 1 {
		return nil
	}
	var ignored []string
	switch modes[0] {
	case ModeHexLiteral, ModeIntegers:
		if s.Size != nil {
			ignored = append(ignored, "size")
		}
	}
	if modes[0] != ModeIntegers {
		if s.Width != nil {
			ignored = append(ignored, "width")
		}
		if s.Endianness != nil {
			ignored = append(ignored, "endianness")
		}
	}
	if modes[0] != ModeRandom && s.Seed != nil {
		ignored = append(ignored, "seed")
	}
	return ignored
}

// Merge returns s with every field that is set in override replaced.
func (s Spec) Merge(override Spec) Spec {
	if override.Size != nil {
		s.Size = override.Size
	}
	if override.Seed != nil {
		s.Seed = override.Seed
	}
	if override.Width != nil {
		s.Width = override.Width
	}
	if override.Endianness != nil {
		s.Endianness = override.Endianness
	}
	// A mode selected on top of a profile replaces the profile's mode.
	if len(override.Modes()) > 0 {
		s.Fill = override.Fill
		s.Random = override.Random
		s.Pattern = override.Pattern
		s.Hex = override.Hex
		s.Integers = override.Integers
	}
	return s
}

// Validate checks spec and converts it into a typed Request. Every error
// that generation could hit is reported here, before any byte is produced.
func Validate(spec Spec, limits Limits) (Request, error) {
	modes := spec.Modes()
	switch len(modes) {
	case 0:
		return nil, ErrModeMissing
	case 1:
	default:
		names := make([]string, len(modes))
		for i, mode := range modes {
			names[i] = mode.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrModeConflict, strings.Join(names, ", "))
	}

	switch modes[0] {
	case ModeFill:
		size, err := requireSize(spec, limits)
		if err != nil {
			return nil, err
		}
		b, err := ParseFillByte(*spec.Fill)
		if err != nil {
			return nil, err
		}
		return FillRequest{Size: size, Byte: b}, nil

	case ModeRandom:
		size, err := requireSize(spec, limits)
		if err != nil {
			return nil, err
		}
		req := RandomRequest{Size: size}
		if spec.Seed != nil {
			req.Seed = *spec.Seed
			req.Seeded = true
		}
		return req, nil

	case ModePattern:
		size, err := requireSize(spec, limits)
		if err != nil {
			return nil, err
		}
		pattern, err := DecodeHex(*spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		if len(pattern) == 0 {
			return nil, ErrEmptyPattern
		}
		return PatternRequest{Size: size, Pattern: pattern}, nil

	case ModeHexLiteral:
		decoded, err := DecodeHex(*spec.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidHexLiteral, err)
		}
		if err := checkLimit(int64(len(decoded)), limits); err != nil {
			return nil, err
		}
		return HexRequest{Text: *spec.Hex}, nil

	default:
		return validateIntegers(spec, limits)
	}
}

func validateIntegers(spec Spec, limits Limits) (Request, error) {
	values, err := ParseIntegers(*spec.Integers)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrMissingIntegers
	}

	width := DefaultIntegerWidth
	if spec.Width != nil {
		width = *spec.Width
	}
	if width < 1 || width > codec.MaxWidth {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIntegerWidth, width)
	}

	order := LittleEndian
	if spec.Endianness != nil {
		order, err = ParseEndianness(*spec.Endianness)
		if err != nil {
			return nil, err
		}
	}

	if err := checkRange(values, width); err != nil {
		return nil, err
	}
	req := IntegersRequest{Values: values, Width: width, Order: order}
	if err := checkLimit(req.OutputSize(), limits); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseFillByte parses one or two hex digits, with an optional 0x prefix.
func ParseFillByte(text string) (byte, error) {
	cleaned := strings.TrimSpace(text)
	if len(cleaned) > 2 && (cleaned[:2] == "0x" || cleaned[:2] == "0X") {
		cleaned = cleaned[2:]
	}
	if len(cleaned) == 0 || len(cleaned) > 2 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidFillByte, text)
	}
	value, err := strconv.ParseUint(cleaned, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidFillByte, text)
	}
	return byte(value), nil
}

func requireSize(spec Spec, limits Limits) (int64, error) {
	if spec.Size == nil {
		return 0, ErrMissingSize
	}
	size := *spec.Size
	if size < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeSize, size)
	}
	if err := checkLimit(size, limits); err != nil {
		return 0, err
	}
	return size, nil
}

func checkLimit(size int64, limits Limits) error {
	if limits.MaxSize > 0 && size > limits.MaxSize {
		return fmt.Errorf("%w: %d > %d", ErrSizeLimit, size, limits.MaxSize)
	}
	return nil
}
