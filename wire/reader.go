package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/dennwc/varint"

	"github.com/wippyai/protowire/errors"
)

// Reader decodes the wire format the Writer produces. It wraps a byte
// slice with position tracking; returned Bytes sub-slices share the
// backing array.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the current byte position.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the number of bytes remaining.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// readVarint reads one varint of up to 10 bytes.
func (r *Reader) readVarint() (uint64, error) {
	v, n := varint.Uvarint(r.buf[r.pos:])
	if n == 0 {
		return 0, errors.Truncated(r.pos, "varint")
	}
	if n < 0 {
		return 0, errors.Overflow(r.pos, "varint")
	}
	r.pos += n
	return v, nil
}

// Uint32 reads a varint and truncates it to 32 bits.
func (r *Reader) Uint32() (uint32, error) {
	v, err := r.readVarint()
	return uint32(v), err
}

// Int32 reads a varint and truncates it to a signed 32-bit value.
func (r *Reader) Int32() (int32, error) {
	v, err := r.readVarint()
	return int32(uint32(v)), err
}

// Sint32 reads a zig-zag encoded varint as a signed 32-bit value.
func (r *Reader) Sint32() (int32, error) {
	v, err := r.readVarint()
	u := uint32(v)
	return int32(u>>1) ^ -int32(u&1), err
}

// Uint64 reads a varint.
func (r *Reader) Uint64() (uint64, error) {
	return r.readVarint()
}

// Int64 reads a varint as a signed 64-bit value.
func (r *Reader) Int64() (int64, error) {
	v, err := r.readVarint()
	return int64(v), err
}

// Sint64 reads a zig-zag encoded varint as a signed 64-bit value.
func (r *Reader) Sint64() (int64, error) {
	v, err := r.readVarint()
	return int64(v>>1) ^ -int64(v&1), err
}

// Bool reads a varint and reports whether it is non-zero.
func (r *Reader) Bool() (bool, error) {
	v, err := r.readVarint()
	return v != 0, err
}

func (r *Reader) take(n int, what string) ([]byte, error) {
	if r.Len() < n {
		return nil, errors.Truncated(r.pos, what)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Fixed32 reads 4 little-endian bytes.
func (r *Reader) Fixed32() (uint32, error) {
	b, err := r.take(4, "fixed32")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Sfixed32 reads a zig-zag encoded fixed32 as a signed 32-bit value.
func (r *Reader) Sfixed32() (int32, error) {
	v, err := r.Fixed32()
	return int32(v>>1) ^ -int32(v&1), err
}

// Fixed64 reads 8 little-endian bytes.
func (r *Reader) Fixed64() (uint64, error) {
	b, err := r.take(8, "fixed64")
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// Sfixed64 reads a zig-zag encoded fixed64 as a signed 64-bit value.
func (r *Reader) Sfixed64() (int64, error) {
	v, err := r.Fixed64()
	return int64(v>>1) ^ -int64(v&1), err
}

// Float reads an IEEE-754 binary32, little-endian.
func (r *Reader) Float() (float32, error) {
	v, err := r.Fixed32()
	return math.Float32frombits(v), err
}

// Double reads an IEEE-754 binary64, little-endian.
func (r *Reader) Double() (float64, error) {
	v, err := r.Fixed64()
	return math.Float64frombits(v), err
}

// Bytes reads a varint length prefix and that many payload bytes. The
// returned slice shares the Reader's backing array.
func (r *Reader) Bytes() ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	return r.take(int(n), "length-delimited payload")
}

// String reads a length-prefixed UTF-8 string and validates it.
func (r *Reader) String() (string, error) {
	start := r.pos
	b, err := r.Bytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.InvalidUTF8(start, b)
	}
	return string(b), nil
}

// Tag reads a field tag and splits it into field id and wire type.
func (r *Reader) Tag() (uint32, WireType, error) {
	v, err := r.Uint32()
	return v >> 3, WireType(v & 7), err
}

// Skip consumes the payload of a field with the given wire type.
func (r *Reader) Skip(wt WireType) error {
	switch wt {
	case WireVarint:
		_, err := r.readVarint()
		return err
	case WireFixed64:
		_, err := r.take(8, "fixed64")
		return err
	case WireBytes:
		_, err := r.Bytes()
		return err
	case WireFixed32:
		_, err := r.take(4, "fixed32")
		return err
	default:
		return errors.BadWireType(r.pos, uint32(wt))
	}
}
