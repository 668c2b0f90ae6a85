package protocol

import (
	"math"

	"github.com/tetherline/devwire/wire"
)

// ServiceArgValue is one argument to a user-defined service call. IntValue
// rides as a zigzag varint so small negative values stay compact; IntArray
// is a repeated field that also accepts a packed span from producers that
// compact it.
type ServiceArgValue struct {
	StringValue string  // field 4, borrowed on decode
	IntArray    []int64 // field 5, repeated sint64
	IntValue    int32   // field 2, sint32
	FloatValue  float32 // field 3
	BoolValue   bool    // field 1

	decodeErr error
}

func (m *ServiceArgValue) CalculateSize(c *wire.SizeCalculator) {
	c.AddBoolField(1, m.BoolValue)
	c.AddSint32Field(2, m.IntValue)
	c.AddFloatField(3, m.FloatValue)
	c.AddStringField(4, m.StringValue)
	for _, v := range m.IntArray {
		c.AddSint64FieldForced(5, v)
	}
}

func (m *ServiceArgValue) Encode(w *wire.WriteBuffer) {
	w.WriteBoolField(1, m.BoolValue)
	w.WriteSint32Field(2, m.IntValue)
	w.WriteFloatField(3, m.FloatValue)
	w.WriteStringField(4, m.StringValue)
	for _, v := range m.IntArray {
		w.WriteSint64FieldForced(5, v)
	}
}

func (m *ServiceArgValue) AcceptVarint(field uint32, v uint64) bool {
	switch field {
	case 1:
		m.BoolValue = v != 0
	case 2:
		m.IntValue = int32(wire.ZigZagDecode(v))
	case 5:
		m.IntArray = append(m.IntArray, wire.ZigZagDecode(v))
	default:
		return false
	}
	return true
}

func (m *ServiceArgValue) AcceptFixed32(field uint32, v uint32) bool {
	if field == 3 {
		m.FloatValue = math.Float32frombits(v)
		return true
	}
	return false
}

func (m *ServiceArgValue) AcceptFixed64(field uint32, v uint64) bool { return false }

func (m *ServiceArgValue) AcceptLengthDelimited(field uint32, view wire.View) bool {
	switch field {
	case 4:
		m.StringValue = view.BorrowString()
	case 5:
		// Packed form of the repeated sint64 field. A span that ends
		// mid-element is a recognized field with a malformed payload, not an
		// unknown field: report it accepted and let Decode surface the error.
		cur := view.Cursor()
		for cur.More() {
			u, err := cur.UVarint()
			if err != nil {
				m.decodeErr = err
				return true
			}
			m.IntArray = append(m.IntArray, wire.ZigZagDecode(u))
		}
	default:
		return false
	}
	return true
}

func (m *ServiceArgValue) Decode(data []byte) error {
	n, err := wire.CountField(data, 5)
	if err != nil {
		return err
	}
	m.IntArray = make([]int64, 0, n)
	if err := wire.Unmarshal(data, m); err != nil {
		return err
	}
	return m.decodeErr
}

// ExecuteServiceRequest asks the device to run a user-defined service with
// the given arguments.
type ExecuteServiceRequest struct {
	Args []ServiceArgValue // field 2, repeated submessage
	Key  uint32            // field 1, fixed32 service key

	decodeErr error
}

func (m *ExecuteServiceRequest) CalculateSize(c *wire.SizeCalculator) {
	c.AddFixed32Field(1, m.Key)
	for i := range m.Args {
		c.AddMessageField(2, &m.Args[i])
	}
}

func (m *ExecuteServiceRequest) Encode(w *wire.WriteBuffer) {
	w.WriteFixed32Field(1, m.Key)
	for i := range m.Args {
		w.WriteMessageField(2, &m.Args[i])
	}
}

func (m *ExecuteServiceRequest) AcceptVarint(field uint32, v uint64) bool { return false }

func (m *ExecuteServiceRequest) AcceptFixed32(field uint32, v uint32) bool {
	if field == 1 {
		m.Key = v
		return true
	}
	return false
}

func (m *ExecuteServiceRequest) AcceptFixed64(field uint32, v uint64) bool { return false }

func (m *ExecuteServiceRequest) AcceptLengthDelimited(field uint32, view wire.View) bool {
	if field == 2 {
		var arg ServiceArgValue
		if err := arg.Decode(view); err != nil {
			// A recognized submessage that fails to decode aborts the whole
			// message; Decode reports it after the streaming pass.
			m.decodeErr = err
			return true
		}
		m.Args = append(m.Args, arg)
		return true
	}
	return false
}

func (m *ExecuteServiceRequest) Decode(data []byte) error {
	n, err := wire.CountField(data, 2)
	if err != nil {
		return err
	}
	m.Args = make([]ServiceArgValue, 0, n)
	if err := wire.Unmarshal(data, m); err != nil {
		return err
	}
	return m.decodeErr
}
