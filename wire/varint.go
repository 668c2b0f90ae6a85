package wire

import "github.com/tetherline/devwire/errors"

// MaxVarintLen is the maximum number of bytes a uvarint occupies on the wire.
const MaxVarintLen = 10

// AppendUVarint appends v to b in unsigned variable-length encoding: seven
// payload bits per byte, least-significant group first, continuation bit set
// on every byte but the last.
func AppendUVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// UVarintSize returns the number of bytes AppendUVarint would write for v.
func UVarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// ReadUVarint decodes a uvarint from the front of buf and returns the value
// and the number of bytes consumed. It fails with a malformed_varint error
// when a tenth byte still carries the continuation bit, and with a truncated
// error when the buffer ends before a terminating byte.
func ReadUVarint(buf []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if i == MaxVarintLen-1 && b&0x80 != 0 {
			return 0, 0, errors.MalformedVarint(errors.PhaseDecode, i)
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, errors.Truncated(errors.PhaseDecode, len(buf), len(buf)+1, len(buf))
}

// ZigZagEncode maps a signed integer to an unsigned one so that values of
// small magnitude stay compact under varint encoding: 0, -1, 1, -2 map to
// 0, 1, 2, 3.
func ZigZagEncode(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
