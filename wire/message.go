package wire

import "github.com/tetherline/devwire/errors"

// Sentinel values for the decode/encode failure taxonomy. Match with
// errors.Is; the concrete errors carry field id and buffer offset.
var (
	ErrMalformedVarint error = &errors.Error{Kind: errors.KindMalformedVarint}
	ErrTruncated       error = &errors.Error{Kind: errors.KindTruncated}
	ErrInvalidTag      error = &errors.Error{Kind: errors.KindInvalidTag}
	ErrSizeMismatch    error = &errors.Error{Kind: errors.KindSizeMismatch}
)

// Message is implemented by every wire message type.
//
// CalculateSize and Encode must walk the same fields and make identical
// omission decisions; Marshal verifies that they agree. The Accept methods
// route one decoded field each and report whether the field id belongs to
// the message's schema. An unrecognized id is not an error: Unmarshal skips
// it so newer producers stay compatible with older consumers.
//
// Views passed to AcceptLengthDelimited borrow from the decode buffer and
// must not be retained past it unless cloned.
type Message interface {
	CalculateSize(c *SizeCalculator)
	Encode(w *WriteBuffer)

	AcceptVarint(field uint32, v uint64) bool
	AcceptFixed32(field uint32, v uint32) bool
	AcceptFixed64(field uint32, v uint64) bool
	AcceptLengthDelimited(field uint32, view View) bool
}

// Marshal encodes m using the two-pass protocol: compute the exact encoded
// size, allocate a buffer of exactly that length, then encode into it. The
// backing array never grows during encode. A disagreement between the two
// passes is a defect in the message's field list and is reported as
// ErrSizeMismatch.
func Marshal(m Message) ([]byte, error) {
	var c SizeCalculator
	m.CalculateSize(&c)

	w := NewWriteBuffer(c.Size())
	m.Encode(w)

	if len(w.Bytes()) != c.Size() {
		return nil, errors.SizeMismatch(c.Size(), len(w.Bytes()))
	}
	return w.Bytes(), nil
}
