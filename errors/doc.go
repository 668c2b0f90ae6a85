// Package errors provides structured error types for the devwire codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the field id and buffer offset being
// processed when the failure was detected.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncated).
//		Field(3).
//		Offset(17).
//		Detail("declared length 12 exceeds remaining 5 bytes").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MalformedVarint(errors.PhaseDecode, 9)
//	err := errors.Truncated(errors.PhaseDecode, 17, 12, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
