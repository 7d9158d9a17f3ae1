// Package errors provides structured error types for the protowire library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: byte offset into the input, offending value,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncated).
//		Offset(12).
//		Detail("varint continues past end of input").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(12, "varint")
//	err := errors.InvalidLongInput("not-a-number", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
