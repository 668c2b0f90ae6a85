package wire

import (
	"encoding/binary"
	"math"

	"github.com/tetherline/devwire/errors"
)

// Raw little-endian fixed-width encoding. No length framing.

// AppendFixed32 appends v to b as four little-endian bytes.
func AppendFixed32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// AppendFixed64 appends v to b as eight little-endian bytes.
func AppendFixed64(b []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, v)
}

// AppendFloat32 appends the IEEE-754 bit pattern of v as four little-endian
// bytes.
func AppendFloat32(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}

// ReadFixed32 reads four little-endian bytes from the front of buf.
func ReadFixed32(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, errors.Truncated(errors.PhaseDecode, 0, 4, len(buf))
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadFixed64 reads eight little-endian bytes from the front of buf.
func ReadFixed64(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, errors.Truncated(errors.PhaseDecode, 0, 8, len(buf))
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// ReadFloat32 reads a little-endian IEEE-754 single float from the front of
// buf.
func ReadFloat32(buf []byte) (float32, error) {
	bits, err := ReadFixed32(buf)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}
