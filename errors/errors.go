package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode Phase = "decode" // wire bytes to message
	PhaseSize   Phase = "size"   // pre-encode size calculation and its verification
	PhaseSchema Phase = "schema" // message type lookup/registration
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedVarint Kind = "malformed_varint"
	KindTruncated       Kind = "truncated"
	KindSizeMismatch    Kind = "size_mismatch"
	KindInvalidTag      Kind = "invalid_tag"
	KindUnknownMessage  Kind = "unknown_message"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Field  uint32 // field id being processed, 0 when not applicable
	Offset int    // byte offset into the buffer, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Field != 0 {
		fmt.Fprintf(&b, " field %d", e.Field)
	}
	if e.Offset > 0 {
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

// Is reports whether target matches this error.
// Two Errors match when their Kinds agree; an empty Phase in the target acts
// as a wildcard so package-level sentinels can match any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && e.Phase != t.Phase {
			return false
		}
		return e.Kind == t.Kind
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

// Field sets the field id being processed
func (b *Builder) Field(id uint32) *Builder {
	b.err.Field = id
	return b
}

// Offset sets the byte offset into the buffer
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// MalformedVarint reports a varint whose continuation bit is still set past
// the maximum representable width.
func MalformedVarint(phase Phase, offset int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformedVarint,
		Offset: offset,
		Detail: "continuation bit set past maximum width",
	}
}

// Truncated reports a buffer that ends before a declared payload does.
func Truncated(phase Phase, offset, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, %d remain", need, have),
	}
}

// InvalidTag reports a tag with an unsupported wire kind or a zero field id.
func InvalidTag(offset int, field uint32, kind uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidTag,
		Field:  field,
		Offset: offset,
		Detail: fmt.Sprintf("wire kind %d", kind),
	}
}

// SizeMismatch reports disagreement between the size pass and the encode
// pass. This is a defect in a message type's field list, never a runtime
// condition.
func SizeMismatch(calculated, encoded int) *Error {
	return &Error{
		Phase:  PhaseSize,
		Kind:   KindSizeMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("calculated %d bytes, encoded %d", calculated, encoded),
	}
}

// UnknownMessage reports a message name with no registered schema.
func UnknownMessage(name string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindUnknownMessage,
		Offset: -1,
		Detail: fmt.Sprintf("message %q not registered", name),
	}
}
