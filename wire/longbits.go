package wire

import (
	"math/bits"
	"strconv"

	"github.com/wippyai/protowire/errors"
)

// LongBits is a 64-bit unsigned value split into 32-bit halves. All
// 64-bit varint and fixed64 emission paths normalize their input to
// this form first, so sign extension and zig-zag work the same way
// regardless of how the value arrived.
type LongBits struct {
	Lo uint32
	Hi uint32
}

// NewLongBits creates a LongBits from explicit halves.
func NewLongBits(lo, hi uint32) LongBits {
	return LongBits{Lo: lo, Hi: hi}
}

// LongBitsFromUint64 splits an unsigned 64-bit value.
func LongBitsFromUint64(v uint64) LongBits {
	return LongBits{Lo: uint32(v), Hi: uint32(v >> 32)}
}

// LongBitsFromInt64 splits a signed 64-bit value. Negative values keep
// their two's-complement representation, already sign-extended to 64 bits.
func LongBitsFromInt64(v int64) LongBits {
	return LongBitsFromUint64(uint64(v))
}

// LongBitsFromFloat64 splits a safe-range integral float by division and
// modulo 2^32, negating via two's complement for negative input. The
// fractional part, if any, is truncated.
func LongBitsFromFloat64(v float64) LongBits {
	if v == 0 {
		return LongBits{}
	}
	neg := v < 0
	if neg {
		v = -v
	}
	lo := uint32(uint64(v) & 0xFFFFFFFF)
	hi := uint32(uint64(v) >> 32)
	if neg {
		lo = ^lo
		hi = ^hi
		lo++
		if lo == 0 {
			hi++
		}
	}
	return LongBits{Lo: lo, Hi: hi}
}

// ParseLongBits interprets a decimal string as a 64-bit integer. It
// accepts the full signed and unsigned 64-bit ranges. Input that does
// not parse fails with KindInvalidLongInput.
func ParseLongBits(s string) (LongBits, error) {
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return LongBitsFromUint64(u), nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return LongBits{}, errors.InvalidLongInput(s, err)
	}
	return LongBitsFromInt64(i), nil
}

// Uint64 recombines the halves.
func (b LongBits) Uint64() uint64 {
	return uint64(b.Hi)<<32 | uint64(b.Lo)
}

// Int64 recombines the halves as a signed value.
func (b LongBits) Int64() int64 {
	return int64(b.Uint64())
}

// Zero reports whether both halves are zero.
func (b LongBits) Zero() bool {
	return b.Lo == 0 && b.Hi == 0
}

// Length returns the number of bytes (1..10) the value occupies as a varint.
func (b LongBits) Length() int {
	v := b.Uint64()
	if v == 0 {
		return 1
	}
	return (bits.Len64(v) + 6) / 7
}

// ZigZag applies the 64-bit zig-zag transform in place, mapping signed
// values to unsigned so small magnitudes stay short on the wire.
func (b *LongBits) ZigZag() {
	mask := uint32(int32(b.Hi) >> 31)
	b.Hi = (b.Hi<<1 | b.Lo>>31) ^ mask
	b.Lo = b.Lo<<1 ^ mask
}
