package codec

import (
	"errors"
	"testing"
)

func TestReaderSequentialReads(t *testing.T) {
	r := NewReader([]byte{0x42, 0x18, 0x00, 0xF8, 0x00})
	b, err := r.Uint8()
	if err != nil {
		t.Fatalf("Uint8: %v", err)
	}
	if b != 0x42 {
		t.Fatalf("unexpected byte: 0x%02X", b)
	}
	u, err := r.Uint16()
	if err != nil {
		t.Fatalf("Uint16: %v", err)
	}
	if u != 0x1800 {
		t.Fatalf("unexpected uint16: 0x%04X", u)
	}
	s, err := r.Int16()
	if err != nil {
		t.Fatalf("Int16: %v", err)
	}
	if s != -2048 {
		t.Fatalf("unexpected int16: %d", s)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected empty reader, %d bytes left", r.Remaining())
	}
}

func TestReaderShortPayload(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.Uint16(); !errors.Is(err, ErrShortPayload) {
		t.Fatalf("expected ErrShortPayload, got %v", err)
	}
	if r.Pos() != 0 {
		t.Fatalf("cursor moved on failed read: %d", r.Pos())
	}
}

func TestMiniFloat16(t *testing.T) {
	cases := []struct {
		raw  []byte
		want float64
	}{
		{[]byte{0xF9, 0x07}, 0.564208984375}, // exp 15, mantissa 0x907
		{[]byte{0x88, 0x00}, 0.00390625},     // exp 8, mantissa 0x800
		{[]byte{0xF0, 0x00}, 0},
	}
	for _, tc := range cases {
		r := NewReader(tc.raw)
		got, err := r.MiniFloat16()
		if err != nil {
			t.Fatalf("MiniFloat16(% X): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("MiniFloat16(% X) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
