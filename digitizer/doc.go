// Package digitizer encodes and decodes the FlatBuffer messages a
// neutron-detector digitizer emits: event lists ("dev2") and analog
// traces ("dat2").
//
// Both message kinds share the FrameMetadata/GpsTime definitions; two
// buffers of different kinds describing the same frame carry identical
// metadata. The transport moving these buffers is out of scope here;
// this package only guarantees that what goes onto the wire is exactly
// the declared layout and that malformed buffers are rejected with a
// specific error.
//
// # Encoding
//
// Producers either call the encode functions directly:
//
//	buf, err := digitizer.EncodeEventList(&digitizer.EventList{...})
//
// or use a fluent builder when events arrive one at a time:
//
//	buf, err := digitizer.NewEventListBuilder().
//	    WithDigitizerID(4).
//	    WithFrameNumber(128).
//	    AddEvent(100, 512, 7).
//	    Build()
//
// Encode validates at the API boundary: mismatched event-vector
// lengths, a zero sample rate, or (in strict mode) duplicate channel
// numbers fail before any bytes are written.
//
// # Decoding
//
// Decode returns a zero-copy view borrowing the input buffer; the view
// is valid only as long as the buffer is. Owned() materializes a
// self-contained copy when the data must outlive the buffer:
//
//	view, err := digitizer.DecodeTrace(buf)
//	...
//	msg := view.Owned() // safe after buf is recycled
//
// Consumers receiving heterogeneous buffers route them with Identify,
// which peeks only at the 4-byte format identifier:
//
//	switch digitizer.Identify(buf) {
//	case digitizer.KindEventList:
//	    ...
//	case digitizer.KindAnalogTrace:
//	    ...
//	default:
//	    // not ours; reroute or drop
//	}
//
// # Errors
//
// Failures carry a typed error that unwraps to one of the package
// sentinels, so errors.Is distinguishes "this buffer is not mine"
// (ErrBadIdentifier) from "this buffer claims to be mine but is
// malformed" (ErrTruncatedBuffer, ErrMissingRequiredField,
// ErrLengthMismatch). Nothing is retried, defaulted or repaired
// internally.
//
// # Thread Safety
//
// Encode, decode, validate and identify are pure functions; they are
// safe to call concurrently and carry no state between calls. Builders
// are the one exception: one builder per goroutine.
package digitizer
