package wire

// WireKind is the low 3 bits of a field tag, indicating payload framing.
type WireKind uint8

const (
	KindVarint          WireKind = 0
	KindFixed64         WireKind = 1
	KindLengthDelimited WireKind = 2
	KindFixed32         WireKind = 5
)

// Valid reports whether k is one of the modeled wire kinds.
// Groups (3, 4) and kinds 6-7 are not part of the protocol.
func (k WireKind) Valid() bool {
	switch k {
	case KindVarint, KindFixed64, KindLengthDelimited, KindFixed32:
		return true
	}
	return false
}

func (k WireKind) String() string {
	switch k {
	case KindVarint:
		return "varint"
	case KindFixed64:
		return "fixed64"
	case KindLengthDelimited:
		return "length-delimited"
	case KindFixed32:
		return "fixed32"
	}
	return "invalid"
}

// MakeTag builds a field tag from a field id and wire kind.
func MakeTag(field uint32, kind WireKind) uint64 {
	return uint64(field)<<3 | uint64(kind)
}

// SplitTag splits a decoded tag into its field id and wire kind.
func SplitTag(tag uint64) (uint32, WireKind) {
	return uint32(tag >> 3), WireKind(tag & 7)
}

// TagSize returns the encoded size of a field's tag in bytes.
func TagSize(field uint32) int {
	return UVarintSize(uint64(field) << 3)
}
