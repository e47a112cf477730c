package gen

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/tturner/binwriter/internal/codec"
)

// DefaultIntegerWidth is used when a spec does not set a width.
const DefaultIntegerWidth = 4

// EncodeIntegers encodes each value as width bytes in the given byte order.
// The first value that is negative or too wide for width aborts the whole
// encoding with a *RangeError.
func EncodeIntegers(values []int64, width int, order Endianness) ([]byte, error) {
	if width < 1 || width > codec.MaxWidth {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIntegerWidth, width)
	}
	if err := checkRange(values, width); err != nil {
		return nil, err
	}
	byteOrder := order.byteOrder()
	out := make([]byte, 0, len(values)*width)
	for _, value := range values {
		var err error
		out, err = codec.AppendUint(byteOrder, out, uint64(value), width)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func checkRange(values []int64, width int) error {
	for i, value := range values {
		if value < 0 || !codec.Fits(uint64(value), width) {
			return &RangeError{Index: i, Value: value, Width: width}
		}
	}
	return nil
}

// DecodeIntegers splits data into width-byte unsigned integers. len(data)
// must be a multiple of width.
func DecodeIntegers(data []byte, width int, order Endianness) ([]uint64, error) {
	if width < 1 || width > codec.MaxWidth {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIntegerWidth, width)
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("%d bytes is not a multiple of width %d", len(data), width)
	}
	byteOrder := order.byteOrder()
	values := make([]uint64, 0, len(data)/width)
	for i := 0; i < len(data); i += width {
		value, err := codec.Uint(byteOrder, data[i:i+width])
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

// ParseIntegers splits text on commas and whitespace and parses each token
// as a signed 64-bit integer. Unprefixed tokens are decimal, so a leading
// zero does not switch to octal; 0x, 0o and 0b select another base.
func ParseIntegers(text string) ([]int64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})
	values := make([]int64, 0, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseInt(field, integerBase(field), 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q at index %d", ErrInvalidInteger, field, i)
		}
		values = append(values, value)
	}
	return values, nil
}

func integerBase(field string) int {
	digits := strings.TrimLeft(field, "+-")
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return 0
		}
	}
	return 10
}

func (e Endianness) byteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
