package protocol

import "github.com/tetherline/devwire/wire"

// DeviceInfoResponse describes the device to the controller. Bluetooth
// fields exist only in builds with the capability compiled in; the build
// tag selects the ext layout (see deviceinfo_bt.go / deviceinfo_nobt.go).
type DeviceInfoResponse struct {
	Name            string // field 2, borrowed on decode
	MACAddress      string // field 3, borrowed on decode
	FirmwareVersion string // field 4, borrowed on decode
	Model           string // field 5, borrowed on decode
	UptimeNanos     uint64 // field 6, fixed64
	UsesPassword    bool   // field 1
	deviceInfoExt
}

func (m *DeviceInfoResponse) CalculateSize(c *wire.SizeCalculator) {
	c.AddBoolField(1, m.UsesPassword)
	c.AddStringField(2, m.Name)
	c.AddStringField(3, m.MACAddress)
	c.AddStringField(4, m.FirmwareVersion)
	c.AddStringField(5, m.Model)
	c.AddFixed64Field(6, m.UptimeNanos)
	m.calculateSizeExt(c)
}

func (m *DeviceInfoResponse) Encode(w *wire.WriteBuffer) {
	w.WriteBoolField(1, m.UsesPassword)
	w.WriteStringField(2, m.Name)
	w.WriteStringField(3, m.MACAddress)
	w.WriteStringField(4, m.FirmwareVersion)
	w.WriteStringField(5, m.Model)
	w.WriteFixed64Field(6, m.UptimeNanos)
	m.encodeExt(w)
}

func (m *DeviceInfoResponse) AcceptVarint(field uint32, v uint64) bool {
	if field == 1 {
		m.UsesPassword = v != 0
		return true
	}
	return m.acceptVarintExt(field, v)
}

func (m *DeviceInfoResponse) AcceptFixed32(field uint32, v uint32) bool { return false }

func (m *DeviceInfoResponse) AcceptFixed64(field uint32, v uint64) bool {
	if field == 6 {
		m.UptimeNanos = v
		return true
	}
	return false
}

func (m *DeviceInfoResponse) AcceptLengthDelimited(field uint32, view wire.View) bool {
	switch field {
	case 2:
		m.Name = view.BorrowString()
	case 3:
		m.MACAddress = view.BorrowString()
	case 4:
		m.FirmwareVersion = view.BorrowString()
	case 5:
		m.Model = view.BorrowString()
	default:
		return m.acceptLengthDelimitedExt(field, view)
	}
	return true
}

func (m *DeviceInfoResponse) Decode(data []byte) error {
	return wire.Unmarshal(data, m)
}
