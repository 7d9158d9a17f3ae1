package wire

import "encoding/binary"

// opKind selects the emit routine for a queued write operation.
type opKind uint8

const (
	opByte opKind = iota
	opVarint32
	opVarint64
	opFixed32
	opFixed64
	opBytes
	opString
	opUTF16
)

// op is one deferred write. Its size is computed when the op is queued;
// emission trusts it, so the two must agree exactly.
type op struct {
	b    []byte
	s    string
	u16  []uint16
	size uint32
	u32  uint32 // opByte, opVarint32, opFixed32
	lo   uint32 // opVarint64, opFixed64
	hi   uint32
	kind opKind
}

// emit writes the op into buf at pos and returns the new position.
func (o *op) emit(buf []byte, pos int) int {
	switch o.kind {
	case opByte:
		buf[pos] = byte(o.u32)
		return pos + 1
	case opVarint32:
		return putVarint32(buf, pos, o.u32)
	case opVarint64:
		return putVarint64(buf, pos, o.lo, o.hi)
	case opFixed32:
		binary.LittleEndian.PutUint32(buf[pos:], o.u32)
		return pos + 4
	case opFixed64:
		binary.LittleEndian.PutUint32(buf[pos:], o.lo)
		binary.LittleEndian.PutUint32(buf[pos+4:], o.hi)
		return pos + 8
	case opBytes:
		return pos + copy(buf[pos:], o.b)
	case opString:
		return pos + copy(buf[pos:], o.s)
	case opUTF16:
		return putUTF16(buf, pos, o.u16)
	}
	return pos
}

// varint32Size returns the encoded byte count for a 32-bit varint.
func varint32Size(v uint32) uint32 {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return 5
	}
}

// putVarint32 writes v as a varint at pos and returns the new position.
func putVarint32(buf []byte, pos int, v uint32) int {
	for v > 0x7f {
		buf[pos] = byte(v) | 0x80
		pos++
		v >>= 7
	}
	buf[pos] = byte(v)
	return pos + 1
}

// putVarint64 writes the (lo, hi) pair as a varint at pos and returns the
// new position. Bits shift from hi into lo seven at a time until hi is
// drained, then the remainder finishes on the 32-bit path.
func putVarint64(buf []byte, pos int, lo, hi uint32) int {
	for hi != 0 {
		buf[pos] = byte(lo&0x7f) | 0x80
		pos++
		lo = lo>>7 | hi<<25
		hi >>= 7
	}
	for lo > 0x7f {
		buf[pos] = byte(lo) | 0x80
		pos++
		lo >>= 7
	}
	buf[pos] = byte(lo)
	return pos + 1
}
