package digitizer

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Format identifiers carried at bytes [4:8) of every message buffer.
const (
	EventListIdentifier   = "dev2"
	AnalogTraceIdentifier = "dat2"
)

// identifierLen is the FlatBuffers file-identifier length.
const identifierLen = 4

// Kind classifies a buffer by its format identifier.
type Kind int

const (
	KindUnknown Kind = iota
	KindEventList
	KindAnalogTrace
)

func (k Kind) String() string {
	switch k {
	case KindEventList:
		return "event-list"
	case KindAnalogTrace:
		return "analog-trace"
	}
	return "unknown"
}

// Identify peeks at a buffer's format identifier and reports which
// message kind it claims to be, without parsing anything else.
// Buffers too short to carry an identifier, and buffers with an
// unrecognized identifier, report KindUnknown; they are never coerced
// into a known kind.
func Identify(buf []byte) Kind {
	if len(buf) < flatbuffers.SizeUOffsetT+identifierLen {
		return KindUnknown
	}
	switch {
	case flatbuffers.BufferHasIdentifier(buf, EventListIdentifier):
		return KindEventList
	case flatbuffers.BufferHasIdentifier(buf, AnalogTraceIdentifier):
		return KindAnalogTrace
	}
	return KindUnknown
}
