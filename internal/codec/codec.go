package codec

import (
	"errors"
	"fmt"
	"math"
)

// ErrShortPayload reports a field read extending past the end of the payload.
var ErrShortPayload = errors.New("payload too short")

// Reader walks a payload from front to back. Every read advances the cursor
// by the field width and fails instead of reading past the buffer.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortPayload, n, r.pos, len(r.buf)-r.pos)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Uint8 reads one byte.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a big-endian unsigned 16-bit value.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// Int16 reads a big-endian 16-bit value reinterpreted as two's complement.
func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// MiniFloat16 reads the compact unsigned float encoding used for rate and
// air-quality fields: 4 exponent bits over a 12-bit mantissa, with value
// mantissa/4096 * 2^(exponent-15).
func (r *Reader) MiniFloat16() (float64, error) {
	v, err := r.Uint16()
	if err != nil {
		return 0, err
	}
	exponent := int(v>>12) - 15
	mantissa := float64(v&0x0FFF) / 4096.0
	return mantissa * math.Pow(2, float64(exponent)), nil
}
