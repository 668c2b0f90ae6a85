package wire

import (
	"go.uber.org/zap"

	"github.com/tetherline/devwire/errors"
)

// Unmarshal streams data tag by tag and routes each field to m's Accept
// methods in a single forward pass. Length-delimited payloads are passed as
// Views borrowing from data. Field ids the message does not recognize are
// skipped and logged at debug level; a malformed tag, truncated payload, or
// varint overflow aborts the decode of this message.
func Unmarshal(data []byte, m Message) error {
	off := 0
	for off < len(data) {
		tag, n, err := ReadUVarint(data[off:])
		if err != nil {
			return fieldErr(err, 0, off)
		}
		field, kind := SplitTag(tag)
		if field == 0 || !kind.Valid() {
			return errors.InvalidTag(off, field, uint8(kind))
		}
		off += n

		accepted := false
		switch kind {
		case KindVarint:
			v, n, err := ReadUVarint(data[off:])
			if err != nil {
				return fieldErr(err, field, off)
			}
			off += n
			accepted = m.AcceptVarint(field, v)

		case KindFixed32:
			v, err := ReadFixed32(data[off:])
			if err != nil {
				return fieldErr(err, field, off)
			}
			off += 4
			accepted = m.AcceptFixed32(field, v)

		case KindFixed64:
			v, err := ReadFixed64(data[off:])
			if err != nil {
				return fieldErr(err, field, off)
			}
			off += 8
			accepted = m.AcceptFixed64(field, v)

		case KindLengthDelimited:
			length, n, err := ReadUVarint(data[off:])
			if err != nil {
				return fieldErr(err, field, off)
			}
			off += n
			if length > uint64(len(data)-off) {
				return errors.New(errors.PhaseDecode, errors.KindTruncated).
					Field(field).
					Offset(off).
					Detail("declared length %d exceeds remaining %d bytes", length, len(data)-off).
					Build()
			}
			accepted = m.AcceptLengthDelimited(field, View(data[off:off+int(length)]))
			off += int(length)
		}

		if !accepted {
			Logger().Debug("skipped unknown field",
				zap.Uint32("field", field),
				zap.Stringer("kind", kind))
		}
	}
	return nil
}

// SkipField returns the number of bytes the payload of the given wire kind
// occupies at the front of data, without decoding a value. It is the
// wire-kind-aware skipping primitive the counting pre-pass is built on, and
// lets callers step over records they do not care about.
func SkipField(data []byte, kind WireKind) (int, error) {
	switch kind {
	case KindVarint:
		_, n, err := ReadUVarint(data)
		return n, err
	case KindFixed32:
		if len(data) < 4 {
			return 0, errors.Truncated(errors.PhaseDecode, 0, 4, len(data))
		}
		return 4, nil
	case KindFixed64:
		if len(data) < 8 {
			return 0, errors.Truncated(errors.PhaseDecode, 0, 8, len(data))
		}
		return 8, nil
	case KindLengthDelimited:
		length, n, err := ReadUVarint(data)
		if err != nil {
			return 0, err
		}
		if length > uint64(len(data)-n) {
			return 0, errors.Truncated(errors.PhaseDecode, n, int(length), len(data)-n)
		}
		return n + int(length), nil
	}
	return 0, errors.InvalidTag(0, 0, uint8(kind))
}

// CountField counts how many records in data carry the given field id. It is
// a skip-only scan over the same buffer a subsequent Unmarshal pass will
// decode, run first so that a fixed-capacity container can be allocated at
// exactly the occurrence count.
func CountField(data []byte, field uint32) (int, error) {
	count := 0
	off := 0
	for off < len(data) {
		tag, n, err := ReadUVarint(data[off:])
		if err != nil {
			return 0, fieldErr(err, 0, off)
		}
		f, kind := SplitTag(tag)
		if f == 0 || !kind.Valid() {
			return 0, errors.InvalidTag(off, f, uint8(kind))
		}
		off += n

		n, err = SkipField(data[off:], kind)
		if err != nil {
			return 0, fieldErr(err, f, off)
		}
		off += n

		if f == field {
			count++
		}
	}
	return count, nil
}

// fieldErr rebases a primitive decode error onto the field and absolute
// offset being processed.
func fieldErr(err error, field uint32, off int) error {
	if e, ok := err.(*errors.Error); ok {
		rebased := *e
		rebased.Field = field
		if rebased.Offset >= 0 {
			rebased.Offset += off
		}
		return &rebased
	}
	return err
}
