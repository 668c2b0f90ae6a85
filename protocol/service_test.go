package protocol_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tetherline/devwire/protocol"
	"github.com/tetherline/devwire/wire"
)

func TestExecuteServiceRoundTrip(t *testing.T) {
	m := &protocol.ExecuteServiceRequest{
		Key: 0xCAFE,
		Args: []protocol.ServiceArgValue{
			{BoolValue: true},
			{IntValue: -42, StringValue: "mode"},
			{FloatValue: 2.5, IntArray: []int64{-1, 0, 7}},
		},
	}

	got := roundTrip(t, "ExecuteServiceRequest", m).(*protocol.ExecuteServiceRequest)
	if got.Key != m.Key {
		t.Errorf("Key = %#x", got.Key)
	}
	if len(got.Args) != 3 {
		t.Fatalf("decoded %d args", len(got.Args))
	}
	if !got.Args[0].BoolValue {
		t.Error("arg 0 lost BoolValue")
	}
	if got.Args[1].IntValue != -42 || got.Args[1].StringValue != "mode" {
		t.Errorf("arg 1 = %+v", got.Args[1])
	}
	if got.Args[2].FloatValue != 2.5 {
		t.Errorf("arg 2 float = %v", got.Args[2].FloatValue)
	}
	if len(got.Args[2].IntArray) != 3 || got.Args[2].IntArray[0] != -1 ||
		got.Args[2].IntArray[1] != 0 || got.Args[2].IntArray[2] != 7 {
		t.Errorf("arg 2 array = %v", got.Args[2].IntArray)
	}
}

func TestExecuteServiceRepeatedSizing(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		m := &protocol.ExecuteServiceRequest{Key: 1}
		for i := 0; i < n; i++ {
			m.Args = append(m.Args, protocol.ServiceArgValue{IntValue: int32(i)})
		}

		data, err := wire.Marshal(m)
		if err != nil {
			t.Fatal(err)
		}

		var got protocol.ExecuteServiceRequest
		if err := got.Decode(data); err != nil {
			t.Fatal(err)
		}
		if len(got.Args) != n || cap(got.Args) != n {
			t.Errorf("n=%d: len %d cap %d", n, len(got.Args), cap(got.Args))
		}
	}
}

func TestServiceArgZigZagCompact(t *testing.T) {
	// Small negative magnitudes must stay compact: tag + one byte.
	m := &protocol.ServiceArgValue{IntValue: -1}
	data, err := wire.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2 {
		t.Errorf("sint32 -1 encoded as % x, want 2 bytes", data)
	}

	var got protocol.ServiceArgValue
	if err := got.Decode(data); err != nil {
		t.Fatal(err)
	}
	if got.IntValue != -1 {
		t.Errorf("IntValue = %d", got.IntValue)
	}
}

func TestServiceArgPackedSpan(t *testing.T) {
	// A producer may compact the repeated sint64 field into one packed
	// length-delimited span; the consumer accepts both forms.
	var payload []byte
	for _, v := range []int64{-3, 0, 1 << 33} {
		payload = wire.AppendUVarint(payload, wire.ZigZagEncode(v))
	}
	var buf []byte
	buf = wire.AppendUVarint(buf, wire.MakeTag(5, wire.KindLengthDelimited))
	buf = wire.AppendUVarint(buf, uint64(len(payload)))
	buf = append(buf, payload...)

	var got protocol.ServiceArgValue
	if err := got.Decode(buf); err != nil {
		t.Fatal(err)
	}
	if len(got.IntArray) != 3 || got.IntArray[0] != -3 || got.IntArray[1] != 0 || got.IntArray[2] != 1<<33 {
		t.Errorf("IntArray = %v", got.IntArray)
	}
}

func TestExecuteServiceMalformedNestedArg(t *testing.T) {
	// A recognized submessage whose payload is cut off must fail the whole
	// decode, not vanish: the one-byte payload is a length-delimited tag with
	// its length byte missing.
	var buf []byte
	buf = wire.AppendUVarint(buf, wire.MakeTag(2, wire.KindLengthDelimited))
	buf = wire.AppendUVarint(buf, 1)
	buf = append(buf, 0x22)

	var got protocol.ExecuteServiceRequest
	err := got.Decode(buf)
	if !errors.Is(err, wire.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	if len(got.Args) != 0 {
		t.Errorf("decoded %d args from a malformed buffer", len(got.Args))
	}
}

func TestServiceArgTruncatedPackedSpan(t *testing.T) {
	// A packed span ending mid-varint: the declared length covers the bytes,
	// so the record itself is intact, but the last element never terminates.
	var buf []byte
	buf = wire.AppendUVarint(buf, wire.MakeTag(5, wire.KindLengthDelimited))
	buf = wire.AppendUVarint(buf, 2)
	buf = append(buf, 0x80, 0x80)

	var got protocol.ServiceArgValue
	err := got.Decode(buf)
	if !errors.Is(err, wire.ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
}

func TestServiceArgMalformedPackedSpan(t *testing.T) {
	// An element inside the span whose tenth byte still carries the
	// continuation bit.
	payload := bytes.Repeat([]byte{0x80}, 10)
	payload = append(payload, 0x01)
	var buf []byte
	buf = wire.AppendUVarint(buf, wire.MakeTag(5, wire.KindLengthDelimited))
	buf = wire.AppendUVarint(buf, uint64(len(payload)))
	buf = append(buf, payload...)

	var got protocol.ServiceArgValue
	err := got.Decode(buf)
	if !errors.Is(err, wire.ErrMalformedVarint) {
		t.Errorf("expected ErrMalformedVarint, got %v", err)
	}
}
