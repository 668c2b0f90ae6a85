package protocol

import "github.com/tetherline/devwire/wire"

// ColorMode enumerates the color capabilities a light can report.
type ColorMode uint32

const (
	ColorModeUnknown    ColorMode = 0
	ColorModeOnOff      ColorMode = 1
	ColorModeBrightness ColorMode = 2
	ColorModeWhite      ColorMode = 7
	ColorModeColorTemp  ColorMode = 11
	ColorModeRGB        ColorMode = 35
)

// LightInfoResponse describes a light entity. Effects and
// SupportedColorModes are repeated fields: every element re-emits its tag,
// zero-valued elements included, because the receiver reconstructs the array
// from the occurrence count alone.
type LightInfoResponse struct {
	ObjectID            string      // field 1, borrowed on decode
	Name                string      // field 3, borrowed on decode
	Effects             []string    // field 4, repeated, elements borrowed
	SupportedColorModes []ColorMode // field 5, repeated varint
	Key                 uint32      // field 2, fixed32 entity key
}

func (m *LightInfoResponse) CalculateSize(c *wire.SizeCalculator) {
	c.AddStringField(1, m.ObjectID)
	c.AddFixed32Field(2, m.Key)
	c.AddStringField(3, m.Name)
	for _, e := range m.Effects {
		c.AddStringFieldForced(4, e)
	}
	for _, cm := range m.SupportedColorModes {
		c.AddUint32FieldForced(5, uint32(cm))
	}
}

func (m *LightInfoResponse) Encode(w *wire.WriteBuffer) {
	w.WriteStringField(1, m.ObjectID)
	w.WriteFixed32Field(2, m.Key)
	w.WriteStringField(3, m.Name)
	for _, e := range m.Effects {
		w.WriteStringFieldForced(4, e)
	}
	for _, cm := range m.SupportedColorModes {
		w.WriteUint32FieldForced(5, uint32(cm))
	}
}

func (m *LightInfoResponse) AcceptVarint(field uint32, v uint64) bool {
	if field == 5 {
		m.SupportedColorModes = append(m.SupportedColorModes, ColorMode(v))
		return true
	}
	return false
}

func (m *LightInfoResponse) AcceptFixed32(field uint32, v uint32) bool {
	if field == 2 {
		m.Key = v
		return true
	}
	return false
}

func (m *LightInfoResponse) AcceptFixed64(field uint32, v uint64) bool { return false }

func (m *LightInfoResponse) AcceptLengthDelimited(field uint32, view wire.View) bool {
	switch field {
	case 1:
		m.ObjectID = view.BorrowString()
	case 3:
		m.Name = view.BorrowString()
	case 4:
		m.Effects = append(m.Effects, view.BorrowString())
	default:
		return false
	}
	return true
}

// Decode sizes the repeated containers with a counting pre-pass over data,
// then runs the streaming pass. The appends in the Accept methods therefore
// never grow past the pre-sized capacity.
func (m *LightInfoResponse) Decode(data []byte) error {
	nEffects, err := wire.CountField(data, 4)
	if err != nil {
		return err
	}
	nModes, err := wire.CountField(data, 5)
	if err != nil {
		return err
	}
	m.Effects = make([]string, 0, nEffects)
	m.SupportedColorModes = make([]ColorMode, 0, nModes)
	return wire.Unmarshal(data, m)
}
