package wire

import "unsafe"

// View is a borrowed byte range into a decode input buffer. It is handed to
// message types for strings, opaque bytes, nested submessage spans, and
// packed scalar spans. A View is valid only until the input buffer is
// released; the codec never copies it. Consumers that must keep a value past
// the buffer's lifetime clone it explicitly.
type View []byte

// Bytes returns the borrowed range itself.
func (v View) Bytes() []byte { return v }

// Len returns the length of the borrowed range.
func (v View) Len() int { return len(v) }

// BorrowString reinterprets the view as a UTF-8 string without copying. The
// result aliases the input buffer and shares its lifetime.
func (v View) BorrowString() string {
	if len(v) == 0 {
		return ""
	}
	return unsafe.String(&v[0], len(v))
}

// CloneString copies the view into an owned string.
func (v View) CloneString() string { return string(v) }

// Clone copies the view into an owned byte slice.
func (v View) Clone() []byte {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

// Cursor returns a cursor over the view interpreted as a packed span of
// back-to-back scalar-encoded elements.
func (v View) Cursor() PackedCursor { return PackedCursor{buf: v} }

// PackedCursor steps through a packed scalar span element by element.
type PackedCursor struct {
	buf View
	off int
}

// More reports whether bytes remain in the span.
func (c *PackedCursor) More() bool { return c.off < len(c.buf) }

// UVarint decodes the next varint element.
func (c *PackedCursor) UVarint() (uint64, error) {
	v, n, err := ReadUVarint(c.buf[c.off:])
	if err != nil {
		return 0, err
	}
	c.off += n
	return v, nil
}

// Fixed32 decodes the next 4-byte little-endian element.
func (c *PackedCursor) Fixed32() (uint32, error) {
	v, err := ReadFixed32(c.buf[c.off:])
	if err != nil {
		return 0, err
	}
	c.off += 4
	return v, nil
}

// Fixed64 decodes the next 8-byte little-endian element.
func (c *PackedCursor) Fixed64() (uint64, error) {
	v, err := ReadFixed64(c.buf[c.off:])
	if err != nil {
		return 0, err
	}
	c.off += 8
	return v, nil
}
