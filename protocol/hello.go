package protocol

import "github.com/tetherline/devwire/wire"

// HelloRequest opens a session: the controller identifies itself and states
// the protocol version it speaks.
type HelloRequest struct {
	ClientInfo      string // field 1, borrowed on decode
	APIVersionMajor uint32 // field 2
	APIVersionMinor uint32 // field 3
}

func (m *HelloRequest) CalculateSize(c *wire.SizeCalculator) {
	c.AddStringField(1, m.ClientInfo)
	c.AddUint32Field(2, m.APIVersionMajor)
	c.AddUint32Field(3, m.APIVersionMinor)
}

func (m *HelloRequest) Encode(w *wire.WriteBuffer) {
	w.WriteStringField(1, m.ClientInfo)
	w.WriteUint32Field(2, m.APIVersionMajor)
	w.WriteUint32Field(3, m.APIVersionMinor)
}

func (m *HelloRequest) AcceptVarint(field uint32, v uint64) bool {
	switch field {
	case 2:
		m.APIVersionMajor = uint32(v)
	case 3:
		m.APIVersionMinor = uint32(v)
	default:
		return false
	}
	return true
}

func (m *HelloRequest) AcceptFixed32(field uint32, v uint32) bool { return false }
func (m *HelloRequest) AcceptFixed64(field uint32, v uint64) bool { return false }

func (m *HelloRequest) AcceptLengthDelimited(field uint32, view wire.View) bool {
	if field == 1 {
		m.ClientInfo = view.BorrowString()
		return true
	}
	return false
}

func (m *HelloRequest) Decode(data []byte) error {
	return wire.Unmarshal(data, m)
}

// HelloResponse answers a HelloRequest with the device's identity and the
// version it will speak.
type HelloResponse struct {
	ServerInfo      string // field 3, borrowed on decode
	Name            string // field 4, borrowed on decode
	APIVersionMajor uint32 // field 1
	APIVersionMinor uint32 // field 2
}

func (m *HelloResponse) CalculateSize(c *wire.SizeCalculator) {
	c.AddUint32Field(1, m.APIVersionMajor)
	c.AddUint32Field(2, m.APIVersionMinor)
	c.AddStringField(3, m.ServerInfo)
	c.AddStringField(4, m.Name)
}

func (m *HelloResponse) Encode(w *wire.WriteBuffer) {
	w.WriteUint32Field(1, m.APIVersionMajor)
	w.WriteUint32Field(2, m.APIVersionMinor)
	w.WriteStringField(3, m.ServerInfo)
	w.WriteStringField(4, m.Name)
}

func (m *HelloResponse) AcceptVarint(field uint32, v uint64) bool {
	switch field {
	case 1:
		m.APIVersionMajor = uint32(v)
	case 2:
		m.APIVersionMinor = uint32(v)
	default:
		return false
	}
	return true
}

func (m *HelloResponse) AcceptFixed32(field uint32, v uint32) bool { return false }
func (m *HelloResponse) AcceptFixed64(field uint32, v uint64) bool { return false }

func (m *HelloResponse) AcceptLengthDelimited(field uint32, view wire.View) bool {
	switch field {
	case 3:
		m.ServerInfo = view.BorrowString()
	case 4:
		m.Name = view.BorrowString()
	default:
		return false
	}
	return true
}

func (m *HelloResponse) Decode(data []byte) error {
	return wire.Unmarshal(data, m)
}
