package protocol_test

import (
	"testing"

	"github.com/tetherline/devwire/protocol"
	"github.com/tetherline/devwire/wire"
)

// roundTrip marshals m and decodes the bytes into a fresh message of the
// same registered type.
func roundTrip(t *testing.T, name string, m protocol.Message) protocol.Message {
	t.Helper()

	data, err := wire.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal(%s): %v", name, err)
	}

	var c wire.SizeCalculator
	m.CalculateSize(&c)
	if c.Size() != len(data) {
		t.Fatalf("%s: calculated %d bytes, encoded %d", name, c.Size(), len(data))
	}

	got, err := protocol.New(name)
	if err != nil {
		t.Fatalf("New(%s): %v", name, err)
	}
	if err := got.Decode(data); err != nil {
		t.Fatalf("Decode(%s): %v", name, err)
	}
	return got
}

func TestHelloRoundTrip(t *testing.T) {
	req := &protocol.HelloRequest{
		ClientInfo:      "controller 2026.8.0",
		APIVersionMajor: 1,
		APIVersionMinor: 10,
	}
	got := roundTrip(t, "HelloRequest", req).(*protocol.HelloRequest)
	if *got != *req {
		t.Errorf("decoded %+v, want %+v", got, req)
	}

	resp := &protocol.HelloResponse{
		APIVersionMajor: 1,
		APIVersionMinor: 10,
		ServerInfo:      "devwire 0.3",
		Name:            "garden-node",
	}
	gotResp := roundTrip(t, "HelloResponse", resp).(*protocol.HelloResponse)
	if *gotResp != *resp {
		t.Errorf("decoded %+v, want %+v", gotResp, resp)
	}
}

func TestHelloForwardCompatibility(t *testing.T) {
	// A newer producer adds field 999; an older consumer must decode the
	// fields it knows and skip the rest.
	req := &protocol.HelloRequest{ClientInfo: "new client", APIVersionMajor: 2}
	data, err := wire.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	data = wire.AppendUVarint(data, wire.MakeTag(999, wire.KindLengthDelimited))
	data = wire.AppendUVarint(data, 4)
	data = append(data, "wxyz"...)

	var got protocol.HelloRequest
	if err := got.Decode(data); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.ClientInfo != "new client" || got.APIVersionMajor != 2 {
		t.Errorf("decoded %+v", got)
	}
}

func TestDeviceInfoRoundTrip(t *testing.T) {
	m := &protocol.DeviceInfoResponse{
		UsesPassword:    true,
		Name:            "garden-node",
		MACAddress:      "AA:BB:CC:DD:EE:FF",
		FirmwareVersion: "2026.8.1",
		Model:           "esp32-c6",
		UptimeNanos:     1234567890123456789,
	}

	got := roundTrip(t, "DeviceInfoResponse", m).(*protocol.DeviceInfoResponse)
	if *got != *m {
		t.Errorf("decoded %+v, want %+v", got, m)
	}
}

func TestDeviceInfoZeroUptimeOmitted(t *testing.T) {
	m := &protocol.DeviceInfoResponse{Name: "n"}
	data, err := wire.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	// name tag+len+1 byte only; the fixed64 uptime must not appear.
	if len(data) != 3 {
		t.Errorf("encoded %d bytes: % x", len(data), data)
	}
}

func TestSensorStateHasPattern(t *testing.T) {
	// A present-but-zero reading and an absent reading differ only in the
	// explicit marker field.
	zero := &protocol.SensorStateResponse{Key: 0xABCDEF01, State: 0}
	absent := &protocol.SensorStateResponse{Key: 0xABCDEF01, MissingState: true}

	zeroData, err := wire.Marshal(zero)
	if err != nil {
		t.Fatal(err)
	}
	absentData, err := wire.Marshal(absent)
	if err != nil {
		t.Fatal(err)
	}

	var gotZero, gotAbsent protocol.SensorStateResponse
	if err := gotZero.Decode(zeroData); err != nil {
		t.Fatal(err)
	}
	if err := gotAbsent.Decode(absentData); err != nil {
		t.Fatal(err)
	}

	if gotZero.MissingState || gotZero.State != 0 {
		t.Errorf("zero reading decoded %+v", gotZero)
	}
	if !gotAbsent.MissingState {
		t.Errorf("absent reading decoded %+v", gotAbsent)
	}
}

func TestSensorStateRoundTrip(t *testing.T) {
	m := &protocol.SensorStateResponse{Key: 42, State: -21.5}
	got := roundTrip(t, "SensorStateResponse", m).(*protocol.SensorStateResponse)
	if *got != *m {
		t.Errorf("decoded %+v, want %+v", got, m)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range protocol.Names() {
		m, err := protocol.New(name)
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		if m == nil {
			t.Fatalf("New(%s) returned nil", name)
		}
	}

	if _, err := protocol.New("NoSuchMessage"); err == nil {
		t.Error("expected error for unregistered message")
	}
}
