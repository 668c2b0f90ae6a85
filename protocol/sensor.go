package protocol

import (
	"math"

	"github.com/tetherline/devwire/wire"
)

// SensorStateResponse reports one sensor reading. MissingState is an
// explicit has-value marker: a reading of exactly zero is a real state,
// while MissingState set means the device has no reading at all. Without
// the marker the two would be indistinguishable on the wire, since a zero
// State is omitted.
type SensorStateResponse struct {
	Key          uint32  // field 1, fixed32 entity key
	State        float32 // field 2
	MissingState bool    // field 3
}

func (m *SensorStateResponse) CalculateSize(c *wire.SizeCalculator) {
	c.AddFixed32Field(1, m.Key)
	c.AddFloatField(2, m.State)
	c.AddBoolField(3, m.MissingState)
}

func (m *SensorStateResponse) Encode(w *wire.WriteBuffer) {
	w.WriteFixed32Field(1, m.Key)
	w.WriteFloatField(2, m.State)
	w.WriteBoolField(3, m.MissingState)
}

func (m *SensorStateResponse) AcceptVarint(field uint32, v uint64) bool {
	if field == 3 {
		m.MissingState = v != 0
		return true
	}
	return false
}

func (m *SensorStateResponse) AcceptFixed32(field uint32, v uint32) bool {
	switch field {
	case 1:
		m.Key = v
	case 2:
		m.State = math.Float32frombits(v)
	default:
		return false
	}
	return true
}

func (m *SensorStateResponse) AcceptFixed64(field uint32, v uint64) bool { return false }

func (m *SensorStateResponse) AcceptLengthDelimited(field uint32, view wire.View) bool {
	return false
}

func (m *SensorStateResponse) Decode(data []byte) error {
	return wire.Unmarshal(data, m)
}
