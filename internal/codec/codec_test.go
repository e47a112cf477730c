package codec

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestMaxUint(t *testing.T) {
	tests := []struct {
		width int
		want  uint64
	}{
		{1, 0xFF},
		{2, 0xFFFF},
		{3, 0xFFFFFF},
		{4, 0xFFFFFFFF},
		{7, 0x00FFFFFFFFFFFFFF},
		{8, 0xFFFFFFFFFFFFFFFF},
	}
	for _, tt := range tests {
		if got := MaxUint(tt.width); got != tt.want {
			t.Errorf("MaxUint(%d) = %#x, want %#x", tt.width, got, tt.want)
		}
	}
}

func TestFits(t *testing.T) {
	if !Fits(255, 1) {
		t.Error("255 should fit in one byte")
	}
	if Fits(256, 1) {
		t.Error("256 should not fit in one byte")
	}
	if Fits(1, 0) || Fits(1, 9) {
		t.Error("out-of-range widths should never fit")
	}
}

func TestAppendUint(t *testing.T) {
	tests := []struct {
		name  string
		order binary.ByteOrder
		value uint64
		width int
		want  []byte
	}{
		{"one byte", binary.LittleEndian, 0xFF, 1, []byte{0xFF}},
		{"little two bytes", binary.LittleEndian, 1, 2, []byte{0x01, 0x00}},
		{"big two bytes", binary.BigEndian, 1, 2, []byte{0x00, 0x01}},
		{"little three bytes", binary.LittleEndian, 0x010203, 3, []byte{0x03, 0x02, 0x01}},
		{"big three bytes", binary.BigEndian, 0x010203, 3, []byte{0x01, 0x02, 0x03}},
		{"big eight bytes", binary.BigEndian, 0x0102030405060708, 8, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AppendUint(tt.order, []byte{0xAA}, tt.value, tt.width)
			if err != nil {
				t.Fatalf("AppendUint() error: %v", err)
			}
			want := append([]byte{0xAA}, tt.want...)
			if !bytes.Equal(got, want) {
				t.Errorf("AppendUint() = %v, want %v", got, want)
			}
			back, err := Uint(tt.order, got[1:])
			if err != nil {
				t.Fatalf("Uint() error: %v", err)
			}
			if back != tt.value {
				t.Errorf("Uint() = %#x, want %#x", back, tt.value)
			}
		})
	}
}

func TestAppendUintInvalidWidth(t *testing.T) {
	for _, width := range []int{0, 9, -1} {
		if _, err := AppendUint(binary.LittleEndian, nil, 1, width); err == nil {
			t.Errorf("width %d: expected error", width)
		}
	}
}

func TestPutUintShortBuffer(t *testing.T) {
	if err := PutUint(binary.LittleEndian, make([]byte, 1), 1, 2); err == nil {
		t.Fatal("expected error for short buffer")
	}
}
