//go:build !nobt

package protocol

import "github.com/tetherline/devwire/wire"

// deviceInfoExt carries the Bluetooth-capability fields. Builds without
// Bluetooth support compile the empty layout from deviceinfo_nobt.go
// instead, so the schema has no runtime capability branches.
type deviceInfoExt struct {
	BluetoothMACAddress   string // field 10, borrowed on decode
	BluetoothFeatureFlags uint32 // field 11
}

func (e *deviceInfoExt) calculateSizeExt(c *wire.SizeCalculator) {
	c.AddStringField(10, e.BluetoothMACAddress)
	c.AddUint32Field(11, e.BluetoothFeatureFlags)
}

func (e *deviceInfoExt) encodeExt(w *wire.WriteBuffer) {
	w.WriteStringField(10, e.BluetoothMACAddress)
	w.WriteUint32Field(11, e.BluetoothFeatureFlags)
}

func (e *deviceInfoExt) acceptVarintExt(field uint32, v uint64) bool {
	if field == 11 {
		e.BluetoothFeatureFlags = uint32(v)
		return true
	}
	return false
}

func (e *deviceInfoExt) acceptLengthDelimitedExt(field uint32, view wire.View) bool {
	if field == 10 {
		e.BluetoothMACAddress = view.BorrowString()
		return true
	}
	return false
}
