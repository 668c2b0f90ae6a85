package protocol

import (
	"sort"

	"github.com/tetherline/devwire/errors"
	"github.com/tetherline/devwire/wire"
)

// Message is a wire message with a full decode entry point. Decode runs any
// counting pre-passes the type needs before the streaming pass; types
// without repeated fields decode in a single pass.
type Message interface {
	wire.Message
	Decode(data []byte) error
}

var registry = map[string]func() Message{
	"HelloRequest":          func() Message { return &HelloRequest{} },
	"HelloResponse":         func() Message { return &HelloResponse{} },
	"DeviceInfoResponse":    func() Message { return &DeviceInfoResponse{} },
	"SensorStateResponse":   func() Message { return &SensorStateResponse{} },
	"LightInfoResponse":     func() Message { return &LightInfoResponse{} },
	"ExecuteServiceRequest": func() Message { return &ExecuteServiceRequest{} },
	"ServiceArgValue":       func() Message { return &ServiceArgValue{} },
	"CameraImageResponse":   func() Message { return &CameraImageResponse{} },
}

// New returns a fresh, zero-valued message for the given type name.
func New(name string) (Message, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, errors.UnknownMessage(name)
	}
	return ctor(), nil
}

// Names lists the registered message type names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
