package wire

// SizeCalculator accumulates the exact byte length a WriteBuffer would emit.
// Every Add method mirrors the corresponding Write method's omission
// decision, so that for any message the calculated size equals the encoded
// length. The two-pass size-then-encode protocol depends on that equality:
// the outgoing buffer is allocated once at exactly the calculated size and
// never resized during encode.
type SizeCalculator struct {
	n int
}

// Size returns the accumulated byte count.
func (c *SizeCalculator) Size() int { return c.n }

// AddTag accounts for a field's uvarint tag.
func (c *SizeCalculator) AddTag(field uint32) {
	c.n += TagSize(field)
}

// AddUVarint accounts for a bare uvarint payload.
func (c *SizeCalculator) AddUVarint(v uint64) {
	c.n += UVarintSize(v)
}

// AddRaw accounts for n raw payload bytes.
func (c *SizeCalculator) AddRaw(n int) {
	c.n += n
}

// Varint-kind fields.

func (c *SizeCalculator) addVarintField(field uint32, v uint64, force bool) {
	if v == 0 && !force {
		return
	}
	c.n += TagSize(field) + UVarintSize(v)
}

func (c *SizeCalculator) AddBoolField(field uint32, v bool) {
	if v {
		c.addVarintField(field, 1, false)
	}
}

func (c *SizeCalculator) AddBoolFieldForced(field uint32, v bool) {
	var u uint64
	if v {
		u = 1
	}
	c.addVarintField(field, u, true)
}

func (c *SizeCalculator) AddUint32Field(field uint32, v uint32) {
	c.addVarintField(field, uint64(v), false)
}

func (c *SizeCalculator) AddUint32FieldForced(field uint32, v uint32) {
	c.addVarintField(field, uint64(v), true)
}

func (c *SizeCalculator) AddUint64Field(field uint32, v uint64) {
	c.addVarintField(field, v, false)
}

func (c *SizeCalculator) AddUint64FieldForced(field uint32, v uint64) {
	c.addVarintField(field, v, true)
}

func (c *SizeCalculator) AddInt32Field(field uint32, v int32) {
	c.addVarintField(field, uint64(int64(v)), false)
}

func (c *SizeCalculator) AddInt32FieldForced(field uint32, v int32) {
	c.addVarintField(field, uint64(int64(v)), true)
}

func (c *SizeCalculator) AddInt64Field(field uint32, v int64) {
	c.addVarintField(field, uint64(v), false)
}

func (c *SizeCalculator) AddInt64FieldForced(field uint32, v int64) {
	c.addVarintField(field, uint64(v), true)
}

func (c *SizeCalculator) AddSint32Field(field uint32, v int32) {
	c.addVarintField(field, ZigZagEncode(int64(v)), false)
}

func (c *SizeCalculator) AddSint32FieldForced(field uint32, v int32) {
	c.addVarintField(field, ZigZagEncode(int64(v)), true)
}

func (c *SizeCalculator) AddSint64Field(field uint32, v int64) {
	c.addVarintField(field, ZigZagEncode(v), false)
}

func (c *SizeCalculator) AddSint64FieldForced(field uint32, v int64) {
	c.addVarintField(field, ZigZagEncode(v), true)
}

// Fixed-kind fields.

func (c *SizeCalculator) AddFixed32Field(field uint32, v uint32) {
	if v == 0 {
		return
	}
	c.AddFixed32FieldForced(field, v)
}

func (c *SizeCalculator) AddFixed32FieldForced(field uint32, v uint32) {
	c.n += TagSize(field) + 4
}

func (c *SizeCalculator) AddFixed64Field(field uint32, v uint64) {
	if v == 0 {
		return
	}
	c.AddFixed64FieldForced(field, v)
}

func (c *SizeCalculator) AddFixed64FieldForced(field uint32, v uint64) {
	c.n += TagSize(field) + 8
}

func (c *SizeCalculator) AddFloatField(field uint32, v float32) {
	if v == 0 {
		return
	}
	c.AddFloatFieldForced(field, v)
}

func (c *SizeCalculator) AddFloatFieldForced(field uint32, v float32) {
	c.n += TagSize(field) + 4
}

// Length-delimited fields.

func (c *SizeCalculator) AddStringField(field uint32, s string) {
	if s == "" {
		return
	}
	c.AddStringFieldForced(field, s)
}

func (c *SizeCalculator) AddStringFieldForced(field uint32, s string) {
	c.n += TagSize(field) + UVarintSize(uint64(len(s))) + len(s)
}

func (c *SizeCalculator) AddBytesField(field uint32, b []byte) {
	if len(b) == 0 {
		return
	}
	c.AddBytesFieldForced(field, b)
}

func (c *SizeCalculator) AddBytesFieldForced(field uint32, b []byte) {
	c.n += TagSize(field) + UVarintSize(uint64(len(b))) + len(b)
}

// AddMessageField accounts for a nested message: tag, uvarint length, and
// the submessage's own size.
func (c *SizeCalculator) AddMessageField(field uint32, m Message) {
	var sub SizeCalculator
	m.CalculateSize(&sub)
	c.n += TagSize(field) + UVarintSize(uint64(sub.n)) + sub.n
}
