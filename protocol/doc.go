// Package protocol defines the message types exchanged over a
// device-to-controller session, each with a hand-laid-out field schema on
// top of the wire codec.
//
// Field ids and wire kinds are fixed per message type and never change
// within a schema version. Messages holding repeated fields decode in two
// passes: a counting pre-pass sizes each destination slice, then the normal
// streaming pass fills it, so no container reallocates during decode.
//
// String and byte fields are populated as borrowed views into the decode
// buffer and are valid only until that buffer is released. Callers that keep
// a decoded message longer clone those fields first.
//
// Some capability-specific fields exist only when the capability is compiled
// in; the build configuration selects one concrete field layout per type
// (see the nobt build tag on DeviceInfoResponse).
package protocol
