package wire_test

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"

	"github.com/tetherline/devwire/wire"
)

func TestUnmarshalSkipsUnknownFields(t *testing.T) {
	// Known field 1, then field 999 in every wire kind, then known field 2.
	// An older consumer must decode the known fields and step over the rest
	// without corrupting subsequent parsing.
	var buf []byte
	buf = wire.AppendUVarint(buf, wire.MakeTag(1, wire.KindVarint))
	buf = wire.AppendUVarint(buf, 300)

	buf = wire.AppendUVarint(buf, wire.MakeTag(999, wire.KindVarint))
	buf = wire.AppendUVarint(buf, 42)
	buf = wire.AppendUVarint(buf, wire.MakeTag(999, wire.KindFixed32))
	buf = wire.AppendFixed32(buf, 7)
	buf = wire.AppendUVarint(buf, wire.MakeTag(999, wire.KindFixed64))
	buf = wire.AppendFixed64(buf, 7)
	buf = wire.AppendUVarint(buf, wire.MakeTag(999, wire.KindLengthDelimited))
	buf = wire.AppendUVarint(buf, 3)
	buf = append(buf, "xyz"...)

	buf = wire.AppendUVarint(buf, wire.MakeTag(2, wire.KindLengthDelimited))
	buf = wire.AppendUVarint(buf, 2)
	buf = append(buf, "hi"...)

	var m pairMessage
	if err := wire.Unmarshal(buf, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if m.Value != 300 || m.Text != "hi" {
		t.Errorf("decoded %+v", m)
	}
}

func TestUnmarshalTruncatedPayload(t *testing.T) {
	// Declared length exceeds the remaining bytes.
	var buf []byte
	buf = wire.AppendUVarint(buf, wire.MakeTag(2, wire.KindLengthDelimited))
	buf = wire.AppendUVarint(buf, 10)
	buf = append(buf, "hi"...)

	var m pairMessage
	err := wire.Unmarshal(buf, &m)
	if !errors.Is(err, wire.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestUnmarshalTruncatedEverywhere(t *testing.T) {
	msg := &pairMessage{Value: 300, Text: "hi"}
	data, err := wire.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}

	// data is 08 AC 02 12 02 68 69. Cutting at any interior point must fail
	// with ErrTruncated, except at offset 3, which is a complete record
	// boundary and decodes just the first field.
	for cut := 1; cut < len(data); cut++ {
		var m pairMessage
		err := wire.Unmarshal(data[:cut], &m)
		if cut == 3 {
			if err != nil || m.Value != 300 || m.Text != "" {
				t.Errorf("cut at 3: err=%v decoded %+v", err, m)
			}
			continue
		}
		if !errors.Is(err, wire.ErrTruncated) {
			t.Errorf("cut at %d: expected ErrTruncated, got %v", cut, err)
		}
	}
}

func TestUnmarshalMalformedVarint(t *testing.T) {
	buf := []byte{0x08}
	buf = append(buf, bytes.Repeat([]byte{0x80}, 10)...)
	buf = append(buf, 0x01)

	var m pairMessage
	err := wire.Unmarshal(buf, &m)
	if !errors.Is(err, wire.ErrMalformedVarint) {
		t.Errorf("expected ErrMalformedVarint, got %v", err)
	}
}

func TestUnmarshalInvalidTag(t *testing.T) {
	// Field id 0.
	var m pairMessage
	err := wire.Unmarshal([]byte{0x00, 0x00}, &m)
	if !errors.Is(err, wire.ErrInvalidTag) {
		t.Errorf("field 0: expected ErrInvalidTag, got %v", err)
	}

	// Wire kind 3 (group start) is not modeled.
	buf := wire.AppendUVarint(nil, 1<<3|3)
	err = wire.Unmarshal(buf, &m)
	if !errors.Is(err, wire.ErrInvalidTag) {
		t.Errorf("kind 3: expected ErrInvalidTag, got %v", err)
	}
}

func TestUnmarshalZeroCopyString(t *testing.T) {
	msg := &pairMessage{Text: "borrowed"}
	data, err := wire.Marshal(msg)
	if err != nil {
		t.Fatal(err)
	}

	var m pairMessage
	if err := wire.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}

	// The decoded string must occupy the exact sub-range of the input
	// buffer that held the payload: tag(1) + length(1), then 8 bytes.
	payload := data[2:]
	if m.Text != "borrowed" {
		t.Fatalf("decoded %q", m.Text)
	}
	if unsafe.StringData(m.Text) != &payload[0] {
		t.Error("decoded string does not alias the input buffer")
	}

	allocs := testing.AllocsPerRun(100, func() {
		var m pairMessage
		_ = wire.Unmarshal(data, &m)
	})
	if allocs != 0 {
		t.Errorf("Unmarshal allocated %v times per run", allocs)
	}
}

func TestSkipField(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		kind wire.WireKind
		want int
	}{
		{"varint", []byte{0xAC, 0x02, 0xFF}, wire.KindVarint, 2},
		{"fixed32", []byte{1, 2, 3, 4, 5}, wire.KindFixed32, 4},
		{"fixed64", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, wire.KindFixed64, 8},
		{"length-delimited", []byte{0x03, 'a', 'b', 'c', 'd'}, wire.KindLengthDelimited, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := wire.SkipField(tt.data, tt.kind)
			if err != nil {
				t.Fatalf("SkipField: %v", err)
			}
			if n != tt.want {
				t.Errorf("skipped %d bytes, want %d", n, tt.want)
			}
		})
	}

	t.Run("truncated length-delimited", func(t *testing.T) {
		_, err := wire.SkipField([]byte{0x05, 'a'}, wire.KindLengthDelimited)
		if !errors.Is(err, wire.ErrTruncated) {
			t.Errorf("expected ErrTruncated, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := wire.SkipField([]byte{0x00}, wire.WireKind(3))
		if !errors.Is(err, wire.ErrInvalidTag) {
			t.Errorf("expected ErrInvalidTag, got %v", err)
		}
	})
}

func TestCountField(t *testing.T) {
	build := func(n int) []byte {
		var buf []byte
		buf = wire.AppendUVarint(buf, wire.MakeTag(1, wire.KindVarint))
		buf = wire.AppendUVarint(buf, 5)
		for i := 0; i < n; i++ {
			buf = wire.AppendUVarint(buf, wire.MakeTag(4, wire.KindLengthDelimited))
			buf = wire.AppendUVarint(buf, 1)
			buf = append(buf, 'x')
		}
		buf = wire.AppendUVarint(buf, wire.MakeTag(2, wire.KindLengthDelimited))
		buf = wire.AppendUVarint(buf, 0)
		return buf
	}

	for _, n := range []int{0, 1, 7} {
		got, err := wire.CountField(build(n), 4)
		if err != nil {
			t.Fatalf("CountField: %v", err)
		}
		if got != n {
			t.Errorf("counted %d occurrences, want %d", got, n)
		}
	}
}

func TestCountFieldNoAlloc(t *testing.T) {
	var buf []byte
	for i := 0; i < 5; i++ {
		buf = wire.AppendUVarint(buf, wire.MakeTag(4, wire.KindVarint))
		buf = wire.AppendUVarint(buf, uint64(i))
	}

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = wire.CountField(buf, 4)
	})
	if allocs != 0 {
		t.Errorf("CountField allocated %v times per run", allocs)
	}
}
