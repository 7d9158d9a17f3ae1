package wire

import (
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/protowire/errors"
)

// WireType is the 3-bit field-type tag colocated with the field id.
type WireType uint32

const (
	WireVarint     WireType = 0
	WireFixed64    WireType = 1
	WireBytes      WireType = 2
	WireStartGroup WireType = 3
	WireEndGroup   WireType = 4
	WireFixed32    WireType = 5
)

// frame is a saved fork snapshot: where the sub-message's ops begin and
// what the surrounding queue's byte length was.
type frame struct {
	start    int
	outerLen uint32
}

// Writer builds a Protocol Buffers message as a queue of deferred write
// operations. Write calls record the operation and its exact byte length;
// Finish makes a single allocation of the accumulated length and emits
// every op linearly. A Writer is not safe for concurrent use.
type Writer struct {
	ops    []op
	frames []frame
	n      uint32 // pending byte length of the current frame
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the pending byte length of the current frame: the innermost
// open fork, or the whole message when no fork is open.
func (w *Writer) Len() int {
	return int(w.n)
}

func (w *Writer) push(o op) *Writer {
	w.ops = append(w.ops, o)
	w.n += o.size
	return w
}

// Tag writes a field tag: (id << 3) | wireType as a varint.
func (w *Writer) Tag(id uint32, wt WireType) *Writer {
	return w.Uint32(id<<3 | uint32(wt)&7)
}

// Uint32 writes v as a varint (1..5 bytes).
func (w *Writer) Uint32(v uint32) *Writer {
	return w.push(op{kind: opVarint32, size: varint32Size(v), u32: v})
}

// Int32 writes v as a varint. Negative values are sign-extended to 64
// bits and take 10 bytes, matching what a varint decoder reassembles.
func (w *Writer) Int32(v int32) *Writer {
	if v < 0 {
		b := LongBitsFromInt64(int64(v))
		return w.push(op{kind: opVarint64, size: 10, lo: b.Lo, hi: b.Hi})
	}
	return w.Uint32(uint32(v))
}

// Sint32 writes v zig-zag encoded as a varint.
func (w *Writer) Sint32(v int32) *Writer {
	return w.Uint32(uint32(v<<1 ^ v>>31))
}

// Uint64 writes v as a varint (1..10 bytes).
func (w *Writer) Uint64(v uint64) *Writer {
	b := LongBitsFromUint64(v)
	return w.push(op{kind: opVarint64, size: uint32(b.Length()), lo: b.Lo, hi: b.Hi})
}

// Int64 writes v as a varint. Identical to Uint64: the two's-complement
// representation already sign-extends inside LongBits.
func (w *Writer) Int64(v int64) *Writer {
	return w.Uint64(uint64(v))
}

// Sint64 writes v zig-zag encoded as a varint.
func (w *Writer) Sint64(v int64) *Writer {
	b := LongBitsFromInt64(v)
	b.ZigZag()
	return w.push(op{kind: opVarint64, size: uint32(b.Length()), lo: b.Lo, hi: b.Hi})
}

// Long writes an already-split 64-bit value as a varint.
func (w *Writer) Long(b LongBits) *Writer {
	return w.push(op{kind: opVarint64, size: uint32(b.Length()), lo: b.Lo, hi: b.Hi})
}

// Bool writes a single byte, 0x01 for true and 0x00 for false.
func (w *Writer) Bool(v bool) *Writer {
	var b uint32
	if v {
		b = 1
	}
	return w.push(op{kind: opByte, size: 1, u32: b})
}

// Fixed32 writes v as 4 little-endian bytes.
func (w *Writer) Fixed32(v uint32) *Writer {
	return w.push(op{kind: opFixed32, size: 4, u32: v})
}

// Sfixed32 writes v zig-zag encoded as 4 little-endian bytes.
func (w *Writer) Sfixed32(v int32) *Writer {
	return w.Fixed32(uint32(v<<1 ^ v>>31))
}

// Fixed64 writes v as 8 little-endian bytes.
func (w *Writer) Fixed64(v uint64) *Writer {
	b := LongBitsFromUint64(v)
	return w.push(op{kind: opFixed64, size: 8, lo: b.Lo, hi: b.Hi})
}

// Sfixed64 writes v zig-zag encoded as 8 little-endian bytes.
func (w *Writer) Sfixed64(v int64) *Writer {
	b := LongBitsFromInt64(v)
	b.ZigZag()
	return w.push(op{kind: opFixed64, size: 8, lo: b.Lo, hi: b.Hi})
}

// Float writes v as IEEE-754 binary32, little-endian. Negative zero,
// infinities, and NaNs round-trip bitwise.
func (w *Writer) Float(v float32) *Writer {
	return w.push(op{kind: opFixed32, size: 4, u32: math.Float32bits(v)})
}

// Double writes v as IEEE-754 binary64, little-endian.
func (w *Writer) Double(v float64) *Writer {
	b := LongBitsFromUint64(math.Float64bits(v))
	return w.push(op{kind: opFixed64, size: 8, lo: b.Lo, hi: b.Hi})
}

// Bytes writes a varint length prefix followed by v. The slice is
// captured by reference; the caller must not mutate it before Finish
// returns. Empty input emits the single zero-length byte.
func (w *Writer) Bytes(v []byte) *Writer {
	n := uint32(len(v))
	if n == 0 {
		return w.push(op{kind: opByte, size: 1})
	}
	w.Uint32(n)
	return w.push(op{kind: opBytes, size: n, b: v})
}

// String writes a varint length prefix followed by the string's UTF-8
// bytes. Go strings already store UTF-8, so the bytes are emitted as-is.
func (w *Writer) String(v string) *Writer {
	n := uint32(len(v))
	if n == 0 {
		return w.push(op{kind: opByte, size: 1})
	}
	w.Uint32(n)
	return w.push(op{kind: opString, size: n, s: v})
}

// StringUTF16 writes a varint length prefix followed by the UTF-8
// encoding of the given UTF-16 code units. Surrogate pairs combine into
// 4-byte sequences; an unpaired surrogate is emitted as the 3-byte form
// of its raw code unit.
func (w *Writer) StringUTF16(units []uint16) *Writer {
	n := utf16Len(units)
	if n == 0 {
		return w.push(op{kind: opByte, size: 1})
	}
	w.Uint32(n)
	return w.push(op{kind: opUTF16, size: n, u16: units})
}

// Fork begins a length-delimited sub-message whose length is unknown
// until Ldelim. The current queue state is saved and the length counter
// starts over for the sub-message.
func (w *Writer) Fork() *Writer {
	w.frames = append(w.frames, frame{start: len(w.ops), outerLen: w.n})
	w.n = 0
	return w
}

// Reset discards the current frame. With an open fork it drops the
// sub-message's ops and restores the surrounding state; otherwise it
// empties the writer.
func (w *Writer) Reset() *Writer {
	if k := len(w.frames); k > 0 {
		f := w.frames[k-1]
		w.frames = w.frames[:k-1]
		w.ops = w.ops[:f.start]
		w.n = f.outerLen
	} else {
		w.ops = w.ops[:0]
		w.n = 0
	}
	return w
}

// Ldelim closes the innermost fork: it restores the surrounding state,
// writes the optional field tag and the sub-message's varint length in
// front of the sub-message's ops, and folds its length into the outer
// total. Calling Ldelim without a matching Fork is a caller error.
func (w *Writer) Ldelim(id ...uint32) *Writer {
	k := len(w.frames) - 1
	f := w.frames[k]
	w.frames = w.frames[:k]
	inner := w.n
	w.n = f.outerLen

	// The prefix ops land at the queue tail; move them in front of the
	// sub-message. At most two ops: tag and length.
	mark := len(w.ops)
	if len(id) > 0 {
		w.Tag(id[0], WireBytes)
	}
	w.Uint32(inner)
	var tmp [2]op
	c := copy(tmp[:], w.ops[mark:])
	w.ops = slices.Insert(w.ops[:mark], f.start, tmp[:c]...)
	w.n += inner
	return w
}

// Finish allocates a buffer of the accumulated length, emits every
// queued op into it, resets the writer for reuse, and returns the
// buffer. If fork frames are still open the outermost frame is finished
// and the forked ops are discarded, with a warning through the package
// logger; use FinishStrict to fail instead.
func (w *Writer) Finish() []byte {
	if open := len(w.frames); open > 0 {
		Logger().Warn("finish with open forks, discarding forked operations",
			zap.Int("open", open))
		f := w.frames[0]
		w.ops = w.ops[:f.start]
		w.n = f.outerLen
		w.frames = w.frames[:0]
	}
	buf := make([]byte, w.n)
	pos := 0
	for i := range w.ops {
		pos = w.ops[i].emit(buf, pos)
	}
	w.ops = w.ops[:0]
	w.n = 0
	return buf
}

// FinishStrict is Finish that fails when fork frames are still open.
func (w *Writer) FinishStrict() ([]byte, error) {
	if open := len(w.frames); open > 0 {
		return nil, errors.UnbalancedFork(open)
	}
	return w.Finish(), nil
}
