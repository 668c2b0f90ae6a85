//go:build nobt

package protocol

import "github.com/tetherline/devwire/wire"

// deviceInfoExt is empty in builds without Bluetooth support. On the wire
// the Bluetooth field ids simply never appear; a peer that still sends them
// is skipped over like any other unknown field.
type deviceInfoExt struct{}

func (deviceInfoExt) calculateSizeExt(*wire.SizeCalculator) {}

func (deviceInfoExt) encodeExt(*wire.WriteBuffer) {}

func (deviceInfoExt) acceptVarintExt(uint32, uint64) bool { return false }

func (deviceInfoExt) acceptLengthDelimitedExt(uint32, wire.View) bool { return false }
