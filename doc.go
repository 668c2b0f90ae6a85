// Package devwire implements a compact binary message codec for device
// control traffic.
//
// The wire format is a stripped-down protobuf encoding: each record is a
// varint tag packing a field id and a wire kind, followed by a varint,
// fixed-width, or length-prefixed payload. Messages encode in two passes,
// sizing first and writing second, so output buffers are allocated exactly
// once and never grow.
//
// # Architecture Overview
//
//	devwire/
//	├── wire/            Tag, varint, and fixed codecs plus the encode and
//	│                    decode engines
//	├── protocol/        Concrete message types and the name registry
//	├── errors/          Structured error types for debugging
//	└── cmd/wiredump/    Frame inspection CLI
//
// # Quick Start
//
// Encode a message:
//
//	req := &protocol.HelloRequest{ClientInfo: "probe 1.0"}
//	frame, err := wire.Marshal(req)
//
// Decode one, borrowing directly from the input buffer:
//
//	var resp protocol.HelloResponse
//	if err := resp.Decode(frame); err != nil {
//	    log.Fatal(err)
//	}
//
// # Memory Model
//
// Decoding never copies payload bytes. String and bytes fields alias the
// input buffer through wire.View, so decoded messages are valid only while
// the buffer they were decoded from is. Call Clone or CloneString to detach
// a value that must outlive the frame.
package devwire
