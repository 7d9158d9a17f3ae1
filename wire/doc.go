// Package wire implements the Protocol Buffers binary wire format.
//
// The Writer is a deferred-write encoder: each call records an operation
// together with its exact byte length, and Finish makes one allocation
// of the accumulated length and emits every operation linearly. This
// keeps length-delimited nesting cheap, because a sub-message's length
// prefix is only known after its fields have been queued.
//
// # Writing
//
// Build a message by chaining field writes:
//
//	w := wire.NewWriter()
//	w.Tag(1, wire.WireVarint).Uint32(150)
//	w.Tag(2, wire.WireBytes).String("testing")
//	buf := w.Finish()
//
// Nested messages use Fork and Ldelim. Fork starts a sub-message whose
// length is not yet known; Ldelim closes it, writing the tag and length
// prefix in front of the queued sub-message:
//
//	w.Fork()
//	w.Tag(1, wire.WireVarint).Uint32(42)
//	w.Ldelim(3) // field 3, length-delimited
//
// Finish resets the writer, so one Writer can build many messages.
//
// # Reading
//
// The Reader decodes what the Writer produces:
//
//	r := wire.NewReader(buf)
//	id, wt, err := r.Tag()
//	v, err := r.Uint32()
//
// # 64-bit values
//
// All 64-bit paths normalize through LongBits, a (lo, hi) pair of 32-bit
// halves. Textual input parses via ParseLongBits and fails with
// KindInvalidLongInput when it is not a 64-bit integer.
package wire
