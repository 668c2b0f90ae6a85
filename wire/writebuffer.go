package wire

// WriteBuffer is an append-only sink that emits tag+payload records into a
// pre-sized backing array. Callers obtain the exact size from a
// SizeCalculator first; a correctly sized buffer never reallocates during
// encode.
//
// Field writers apply the default-omission rule: a scalar holding its zero
// value is not emitted at all. The ...Forced variants emit unconditionally
// and are required for elements of a repeated field, where a skipped zero
// element would read back as a shorter array.
type WriteBuffer struct {
	buf []byte
}

// NewWriteBuffer returns a WriteBuffer backed by an array of exactly size
// bytes.
func NewWriteBuffer(size int) *WriteBuffer {
	return &WriteBuffer{buf: make([]byte, 0, size)}
}

// Bytes returns the encoded bytes written so far.
func (w *WriteBuffer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *WriteBuffer) Len() int { return len(w.buf) }

// Low-level primitives. Exposed so consumers can emit packed scalar spans.

// WriteTag emits the uvarint tag for a field.
func (w *WriteBuffer) WriteTag(field uint32, kind WireKind) {
	w.buf = AppendUVarint(w.buf, MakeTag(field, kind))
}

// WriteUVarint emits a bare uvarint payload.
func (w *WriteBuffer) WriteUVarint(v uint64) {
	w.buf = AppendUVarint(w.buf, v)
}

// WriteFixed32 emits four little-endian bytes.
func (w *WriteBuffer) WriteFixed32(v uint32) {
	w.buf = AppendFixed32(w.buf, v)
}

// WriteFixed64 emits eight little-endian bytes.
func (w *WriteBuffer) WriteFixed64(v uint64) {
	w.buf = AppendFixed64(w.buf, v)
}

// WriteFloat32 emits the IEEE-754 bit pattern of v, little-endian.
func (w *WriteBuffer) WriteFloat32(v float32) {
	w.buf = AppendFloat32(w.buf, v)
}

// WriteRaw emits raw payload bytes.
func (w *WriteBuffer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}

// Varint-kind fields.

func (w *WriteBuffer) writeVarintField(field uint32, v uint64, force bool) {
	if v == 0 && !force {
		return
	}
	w.WriteTag(field, KindVarint)
	w.WriteUVarint(v)
}

func (w *WriteBuffer) WriteBoolField(field uint32, v bool) {
	if v {
		w.writeVarintField(field, 1, false)
	}
}

func (w *WriteBuffer) WriteBoolFieldForced(field uint32, v bool) {
	var u uint64
	if v {
		u = 1
	}
	w.writeVarintField(field, u, true)
}

func (w *WriteBuffer) WriteUint32Field(field uint32, v uint32) {
	w.writeVarintField(field, uint64(v), false)
}

func (w *WriteBuffer) WriteUint32FieldForced(field uint32, v uint32) {
	w.writeVarintField(field, uint64(v), true)
}

func (w *WriteBuffer) WriteUint64Field(field uint32, v uint64) {
	w.writeVarintField(field, v, false)
}

func (w *WriteBuffer) WriteUint64FieldForced(field uint32, v uint64) {
	w.writeVarintField(field, v, true)
}

// Negative int32 values sign-extend to 64 bits on the wire, so they always
// occupy ten bytes. Use sint32 when small negatives are common.
func (w *WriteBuffer) WriteInt32Field(field uint32, v int32) {
	w.writeVarintField(field, uint64(int64(v)), false)
}

func (w *WriteBuffer) WriteInt32FieldForced(field uint32, v int32) {
	w.writeVarintField(field, uint64(int64(v)), true)
}

func (w *WriteBuffer) WriteInt64Field(field uint32, v int64) {
	w.writeVarintField(field, uint64(v), false)
}

func (w *WriteBuffer) WriteInt64FieldForced(field uint32, v int64) {
	w.writeVarintField(field, uint64(v), true)
}

func (w *WriteBuffer) WriteSint32Field(field uint32, v int32) {
	w.writeVarintField(field, ZigZagEncode(int64(v)), false)
}

func (w *WriteBuffer) WriteSint32FieldForced(field uint32, v int32) {
	w.writeVarintField(field, ZigZagEncode(int64(v)), true)
}

func (w *WriteBuffer) WriteSint64Field(field uint32, v int64) {
	w.writeVarintField(field, ZigZagEncode(v), false)
}

func (w *WriteBuffer) WriteSint64FieldForced(field uint32, v int64) {
	w.writeVarintField(field, ZigZagEncode(v), true)
}

// Fixed-kind fields.

func (w *WriteBuffer) WriteFixed32Field(field uint32, v uint32) {
	if v == 0 {
		return
	}
	w.WriteFixed32FieldForced(field, v)
}

func (w *WriteBuffer) WriteFixed32FieldForced(field uint32, v uint32) {
	w.WriteTag(field, KindFixed32)
	w.WriteFixed32(v)
}

func (w *WriteBuffer) WriteFixed64Field(field uint32, v uint64) {
	if v == 0 {
		return
	}
	w.WriteFixed64FieldForced(field, v)
}

func (w *WriteBuffer) WriteFixed64FieldForced(field uint32, v uint64) {
	w.WriteTag(field, KindFixed64)
	w.WriteFixed64(v)
}

func (w *WriteBuffer) WriteFloatField(field uint32, v float32) {
	if v == 0 {
		return
	}
	w.WriteFloatFieldForced(field, v)
}

func (w *WriteBuffer) WriteFloatFieldForced(field uint32, v float32) {
	w.WriteTag(field, KindFixed32)
	w.WriteFloat32(v)
}

// Length-delimited fields.

func (w *WriteBuffer) WriteStringField(field uint32, s string) {
	if s == "" {
		return
	}
	w.WriteStringFieldForced(field, s)
}

func (w *WriteBuffer) WriteStringFieldForced(field uint32, s string) {
	w.WriteTag(field, KindLengthDelimited)
	w.WriteUVarint(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *WriteBuffer) WriteBytesField(field uint32, b []byte) {
	if len(b) == 0 {
		return
	}
	w.WriteBytesFieldForced(field, b)
}

func (w *WriteBuffer) WriteBytesFieldForced(field uint32, b []byte) {
	w.WriteTag(field, KindLengthDelimited)
	w.WriteUVarint(uint64(len(b)))
	w.WriteRaw(b)
}

// WriteMessageField frames a nested message: tag, uvarint length of the
// submessage, then the submessage's own records. The inner length comes from
// a fresh size pass, so the outer size calculation already accounted for it.
// Nested messages are always emitted; callers skip absent submessages by not
// calling this at all.
func (w *WriteBuffer) WriteMessageField(field uint32, m Message) {
	var c SizeCalculator
	m.CalculateSize(&c)
	w.WriteTag(field, KindLengthDelimited)
	w.WriteUVarint(uint64(c.Size()))
	m.Encode(w)
}
