package codec

import (
	"encoding/binary"
	"fmt"
)

// MaxWidth is the widest integer, in bytes, the codec encodes.
const MaxWidth = 8

// MaxUint returns the largest value that fits in width bytes.
func MaxUint(width int) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return uint64(1)<<(8*uint(width)) - 1
}

// Fits reports whether value can be encoded in width bytes without truncation.
func Fits(value uint64, width int) bool {
	return width >= 1 && width <= MaxWidth && value <= MaxUint(width)
}

// PutUint writes the low width bytes of value to dst using the provided byte order.
// dst must be at least width bytes long.
func PutUint(order binary.ByteOrder, dst []byte, value uint64, width int) error {
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("unsupported width %d", width)
	}
	if len(dst) < width {
		return fmt.Errorf("buffer too short: need %d bytes, have %d", width, len(dst))
	}
	var buf [MaxWidth]byte
	switch order {
	case binary.BigEndian:
		binary.BigEndian.PutUint64(buf[:], value)
		copy(dst, buf[MaxWidth-width:])
	default:
		order.PutUint64(buf[:], value)
		copy(dst, buf[:width])
	}
	return nil
}

// AppendUint appends the low width bytes of value to dst using the provided byte order.
func AppendUint(order binary.ByteOrder, dst []byte, value uint64, width int) ([]byte, error) {
	var buf [MaxWidth]byte
	if err := PutUint(order, buf[:], value, width); err != nil {
		return dst, err
	}
	return append(dst, buf[:width]...), nil
}

// Uint decodes an unsigned integer of len(src) bytes using the provided byte order.
func Uint(order binary.ByteOrder, src []byte) (uint64, error) {
	width := len(src)
	if width < 1 || width > MaxWidth {
		return 0, fmt.Errorf("unsupported width %d", width)
	}
	var buf [MaxWidth]byte
	switch order {
	case binary.BigEndian:
		copy(buf[MaxWidth-width:], src)
		return binary.BigEndian.Uint64(buf[:]), nil
	default:
		copy(buf[:], src)
		return order.Uint64(buf[:]), nil
	}
}
