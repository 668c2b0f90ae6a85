package protocol

import "github.com/tetherline/devwire/wire"

// CameraImageResponse carries one frame (or frame fragment) from the device.
// Data stays a borrowed view into the decode buffer; a consumer that queues
// the frame past the buffer's release clones it first.
type CameraImageResponse struct {
	Data wire.View // field 2, borrowed
	Key  uint32    // field 1, fixed32 entity key
	Done bool      // field 3, last fragment of the frame
}

func (m *CameraImageResponse) CalculateSize(c *wire.SizeCalculator) {
	c.AddFixed32Field(1, m.Key)
	c.AddBytesField(2, m.Data)
	c.AddBoolField(3, m.Done)
}

func (m *CameraImageResponse) Encode(w *wire.WriteBuffer) {
	w.WriteFixed32Field(1, m.Key)
	w.WriteBytesField(2, m.Data)
	w.WriteBoolField(3, m.Done)
}

func (m *CameraImageResponse) AcceptVarint(field uint32, v uint64) bool {
	if field == 3 {
		m.Done = v != 0
		return true
	}
	return false
}

func (m *CameraImageResponse) AcceptFixed32(field uint32, v uint32) bool {
	if field == 1 {
		m.Key = v
		return true
	}
	return false
}

func (m *CameraImageResponse) AcceptFixed64(field uint32, v uint64) bool { return false }

func (m *CameraImageResponse) AcceptLengthDelimited(field uint32, view wire.View) bool {
	if field == 2 {
		m.Data = view
		return true
	}
	return false
}

func (m *CameraImageResponse) Decode(data []byte) error {
	return wire.Unmarshal(data, m)
}
