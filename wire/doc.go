// Package wire implements a compact, allocation-averse binary message codec
// for device-to-controller links.
//
// The wire format is a Protocol-Buffers-compatible subset: each field record
// is a uvarint tag (field id shifted left by three bits, ORed with the wire
// kind) followed by its payload. Supported wire kinds are varint, 64-bit
// fixed, length-delimited, and 32-bit fixed; groups and maps are not modeled.
//
// # Encoding
//
// Encoding is a strict two-pass protocol. A SizeCalculator first walks the
// message and accumulates the exact encoded length; a WriteBuffer of exactly
// that capacity is then allocated and the message encoded into it. The
// backing array never grows during encode. Marshal performs both passes and
// verifies they agree:
//
//	data, err := wire.Marshal(&msg)
//
// Scalar fields holding their zero value are omitted from the wire entirely.
// Elements of a repeated field are the exception: each element re-emits its
// tag and payload even when zero, because consumers rely on element count
// alone. The ...FieldForced writers implement that rule.
//
// # Decoding
//
// Unmarshal streams a buffer tag by tag and routes each payload to the
// message's Accept methods. Unrecognized field ids are skipped, keeping old
// consumers compatible with newer producers. Length-delimited payloads are
// surfaced as borrowed Views into the input buffer; a View is valid only
// until the buffer is released and must be cloned by consumers that keep it
// longer.
//
// Repeated fields decode in two passes over the same buffer: CountField runs
// a skip-only scan to size the destination slice, then Unmarshal fills it.
// Both passes share the SkipField primitive.
//
// The codec is single-threaded and synchronous: no I/O, no retries, no
// locking. A malformed tag, truncated payload, or varint overflow aborts the
// decode of the current message only.
package wire
