// Package tl packs and unpacks the platform's native binary primitives: little-endian
// fixed-width integers and length-prefixed, 4-byte aligned byte strings.
//
// String form:
//   - length < 254: 1 byte length, content, zero padding to a 4-byte boundary
//   - length >= 254: 0xFE, 3 byte little-endian length, content, zero padding
package tl

import (
	"errors"
	"fmt"
	"io"

	"github.com/gotd/td/bin"

	"github.com/dcdunkan/tgfileid/errs"
)

// Encoder appends primitives to a byte slice.
//
// The zero value is ready to use. Note: Encoder is NOT thread-safe.
type Encoder struct {
	buf bin.Buffer
}

// NewEncoder creates an encoder that appends to dst[:0], reusing its capacity.
func NewEncoder(dst []byte) *Encoder {
	return &Encoder{buf: bin.Buffer{Buf: dst[:0]}}
}

// PutUint32 appends v as 4 little-endian bytes.
func (e *Encoder) PutUint32(v uint32) {
	e.buf.PutUint32(v)
}

// PutInt32 appends v as 4 little-endian bytes, two's complement.
func (e *Encoder) PutInt32(v int32) {
	e.buf.PutInt32(v)
}

// PutInt64 appends v as 8 little-endian bytes, two's complement.
func (e *Encoder) PutInt64(v int64) {
	e.buf.PutLong(v)
}

// PutBytes appends v in string form with its length prefix and padding.
func (e *Encoder) PutBytes(v []byte) {
	e.buf.PutBytes(v)
}

// PutString appends s in string form with its length prefix and padding.
func (e *Encoder) PutString(s string) {
	e.buf.PutString(s)
}

// PutRaw appends v without any prefix or padding.
func (e *Encoder) PutRaw(v []byte) {
	e.buf.Buf = append(e.buf.Buf, v...)
}

// PutByte appends a single byte.
func (e *Encoder) PutByte(v byte) {
	e.buf.Buf = append(e.buf.Buf, v)
}

// Bytes returns the encoded bytes. The slice aliases the encoder's buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf.Buf
}

// Len returns the number of encoded bytes.
func (e *Encoder) Len() int {
	return len(e.buf.Buf)
}

// Decoder reads primitives from the front of a byte slice.
//
// Each read advances the cursor. A read that needs more bytes than remain fails with
// errs.ErrTruncatedInput and leaves the cursor where it was.
type Decoder struct {
	buf bin.Buffer
}

// NewDecoder creates a decoder over data. The decoder does not copy data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: bin.Buffer{Buf: data}}
}

// Uint32 reads 4 little-endian bytes.
func (d *Decoder) Uint32() (uint32, error) {
	v, err := d.buf.Uint32()
	if err != nil {
		return 0, wrap(err, "uint32", 4, d.Len())
	}

	return v, nil
}

// Int32 reads 4 little-endian bytes as a signed value.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.buf.Int32()
	if err != nil {
		return 0, wrap(err, "int32", 4, d.Len())
	}

	return v, nil
}

// Int64 reads 8 little-endian bytes as a signed value.
func (d *Decoder) Int64() (int64, error) {
	v, err := d.buf.Long()
	if err != nil {
		return 0, wrap(err, "int64", 8, d.Len())
	}

	return v, nil
}

// Bytes reads a byte string, skipping its padding. The result is a copy.
//
// Only the encoding Encoder.PutBytes produces is accepted: the long form for
// content shorter than 254 bytes, a 0xFF prefix and non-zero padding all fail with
// errs.ErrCorruptEncoding.
func (d *Decoder) Bytes() ([]byte, error) {
	need := stringSize(d.buf.Buf)
	if len(d.buf.Buf) >= need {
		if err := checkCanonical(d.buf.Buf[:need]); err != nil {
			return nil, err
		}
	}

	v, err := d.buf.Bytes()
	if err != nil {
		return nil, wrap(err, "string", need, d.Len())
	}
	if v == nil {
		v = []byte{}
	}

	return v, nil
}

// String reads a byte string and returns it as a Go string.
func (d *Decoder) String() (string, error) {
	v, err := d.Bytes()
	if err != nil {
		return "", err
	}

	return string(v), nil
}

// Raw reads exactly n bytes without prefix or padding. The result is a copy.
func (d *Decoder) Raw(n int) ([]byte, error) {
	if n < 0 || len(d.buf.Buf) < n {
		return nil, fmt.Errorf("%w: raw field needs %d bytes, have %d", errs.ErrTruncatedInput, n, d.Len())
	}

	v := make([]byte, n)
	copy(v, d.buf.Buf[:n])
	d.buf.Buf = d.buf.Buf[n:]

	return v, nil
}

// Len returns the number of unread bytes.
func (d *Decoder) Len() int {
	return len(d.buf.Buf)
}

// stringSize reports the encoded size of the string at the front of b, padding
// included, or 0 if the prefix itself is unreadable.
func stringSize(b []byte) int {
	if len(b) == 0 {
		return 1
	}

	n, start := int(b[0]), 1
	if n == 254 {
		if len(b) < 4 {
			return 4
		}
		n, start = int(b[1])|int(b[2])<<8|int(b[3])<<16, 4
	}

	size := start + n

	return size + (4-size%4)%4
}

// checkCanonical validates the prefix and padding of the complete encoded string b.
func checkCanonical(b []byte) error {
	n, start := int(b[0]), 1
	switch n {
	case 255:
		return fmt.Errorf("%w: string prefix 0xff", errs.ErrCorruptEncoding)
	case 254:
		n, start = int(b[1])|int(b[2])<<8|int(b[3])<<16, 4
		if n < 254 {
			return fmt.Errorf("%w: %d byte string in long form", errs.ErrCorruptEncoding, n)
		}
	}

	for _, c := range b[start+n:] {
		if c != 0 {
			return fmt.Errorf("%w: non-zero string padding", errs.ErrCorruptEncoding)
		}
	}

	return nil
}

func wrap(err error, field string, need, have int) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s field needs %d bytes, have %d", errs.ErrTruncatedInput, field, need, have)
	}

	return fmt.Errorf("%w: %s field: %w", errs.ErrCorruptEncoding, field, err)
}
