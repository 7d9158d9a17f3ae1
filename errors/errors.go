package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // value to wire format
	PhaseDecode Phase = "decode" // wire format to value
	PhaseFinish Phase = "finish" // buffer finalization
	PhaseParse  Phase = "parse"  // input parsing (textual 64-bit values, hex input)
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidLongInput Kind = "invalid_long_input"
	KindUnbalancedFork   Kind = "unbalanced_fork"
	KindOverflow         Kind = "overflow"
	KindTruncated        Kind = "truncated"
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindBadWireType      Kind = "bad_wire_type"
	KindInvalidInput     Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int // byte offset into the input, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the byte offset into the input
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidLongInput creates an error for a textual 64-bit value that does not parse
func InvalidLongInput(value string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidLongInput,
		Detail: fmt.Sprintf("cannot interpret %q as a 64-bit integer", value),
		Value:  value,
		Cause:  cause,
		Offset: -1,
	}
}

// UnbalancedFork creates an error for finalization with open fork frames
func UnbalancedFork(open int) *Error {
	return &Error{
		Phase:  PhaseFinish,
		Kind:   KindUnbalancedFork,
		Detail: fmt.Sprintf("%d fork frame(s) still open", open),
		Value:  open,
		Offset: -1,
	}
}

// Truncated creates an error for input that ends before a value is complete
func Truncated(offset int, what string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Detail: fmt.Sprintf("input ends inside %s", what),
		Offset: offset,
	}
}

// Overflow creates an error for a value that exceeds its maximum width
func Overflow(offset int, what string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("%s exceeds maximum width", what),
		Offset: offset,
	}
}

// BadWireType creates an error for an unknown or unsupported wire type
func BadWireType(offset int, wireType uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadWireType,
		Detail: fmt.Sprintf("wire type %d", wireType),
		Value:  wireType,
		Offset: offset,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
		Offset: offset,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
		Offset: -1,
	}
}
