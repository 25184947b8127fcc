// Package digitizer provides fluent builders for digitizer messages.
package digitizer

import (
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
)

// EventListBuilder assembles event-list messages for producers that
// collect events one at a time. Builders are NOT thread-safe; each
// goroutine should create its own. Build returns a copy of the
// buffer, so the returned bytes can be safely shared.
type EventListBuilder struct {
	builder     *flatbuffers.Builder
	digitizerID uint8
	metadata    FrameMetadata
	time        []uint32
	voltage     []uint16
	channel     []uint32
}

// NewEventListBuilder creates a builder for an empty event list in a
// running frame stamped with the current time.
func NewEventListBuilder() *EventListBuilder {
	return &EventListBuilder{
		builder: flatbuffers.NewBuilder(1024),
		metadata: FrameMetadata{
			Timestamp: GpsTimeFromTime(time.Now()),
			Running:   true,
		},
	}
}

// WithDigitizerID sets the source digitizer identifier.
func (b *EventListBuilder) WithDigitizerID(id uint8) *EventListBuilder {
	b.digitizerID = id
	return b
}

// WithMetadata replaces the frame metadata.
func (b *EventListBuilder) WithMetadata(m FrameMetadata) *EventListBuilder {
	b.metadata = m
	return b
}

// WithFrameNumber sets the frame sequence number.
func (b *EventListBuilder) WithFrameNumber(n uint32) *EventListBuilder {
	b.metadata.FrameNumber = n
	return b
}

// AddEvent appends one detected event.
func (b *EventListBuilder) AddEvent(t uint32, voltage uint16, channel uint32) *EventListBuilder {
	b.time = append(b.time, t)
	b.voltage = append(b.voltage, voltage)
	b.channel = append(b.channel, channel)
	return b
}

// WithEvents replaces the three parallel event vectors. Length
// agreement is checked by Build, not here.
func (b *EventListBuilder) WithEvents(t []uint32, voltage []uint16, channel []uint32) *EventListBuilder {
	b.time = t
	b.voltage = voltage
	b.channel = channel
	return b
}

// Reset clears the accumulated events, keeping the digitizer id and
// metadata, so one builder can produce a stream of frames.
func (b *EventListBuilder) Reset() *EventListBuilder {
	b.time = b.time[:0]
	b.voltage = b.voltage[:0]
	b.channel = b.channel[:0]
	return b
}

// Build encodes the event-list message and returns a copy of the
// bytes.
func (b *EventListBuilder) Build() ([]byte, error) {
	b.builder.Reset()
	m := &EventList{
		DigitizerID: b.digitizerID,
		Metadata:    b.metadata,
		Time:        b.time,
		Voltage:     b.voltage,
		Channel:     b.channel,
	}
	if err := encodeEventListInto(b.builder, m); err != nil {
		return nil, err
	}

	// Return a copy to avoid buffer reuse issues
	result := make([]byte, len(b.builder.FinishedBytes()))
	copy(result, b.builder.FinishedBytes())
	return result, nil
}

// TraceBuilder assembles analog-trace messages. Builders are NOT
// thread-safe; each goroutine should create its own. Build returns a
// copy of the buffer, so the returned bytes can be safely shared.
type TraceBuilder struct {
	builder     *flatbuffers.Builder
	digitizerID uint8
	metadata    FrameMetadata
	sampleRate  uint64
	channels    []ChannelTrace
	strict      bool
}

// NewTraceBuilder creates a builder for an empty trace message in a
// running frame stamped with the current time, sampled at 1 GHz.
func NewTraceBuilder() *TraceBuilder {
	return &TraceBuilder{
		builder: flatbuffers.NewBuilder(4096),
		metadata: FrameMetadata{
			Timestamp: GpsTimeFromTime(time.Now()),
			Running:   true,
		},
		sampleRate: 1_000_000_000,
	}
}

// WithDigitizerID sets the source digitizer identifier.
func (b *TraceBuilder) WithDigitizerID(id uint8) *TraceBuilder {
	b.digitizerID = id
	return b
}

// WithMetadata replaces the frame metadata.
func (b *TraceBuilder) WithMetadata(m FrameMetadata) *TraceBuilder {
	b.metadata = m
	return b
}

// WithFrameNumber sets the frame sequence number.
func (b *TraceBuilder) WithFrameNumber(n uint32) *TraceBuilder {
	b.metadata.FrameNumber = n
	return b
}

// WithSampleRate sets the common sample rate in samples per second.
func (b *TraceBuilder) WithSampleRate(rate uint64) *TraceBuilder {
	b.sampleRate = rate
	return b
}

// WithChannel appends one channel's waveform.
func (b *TraceBuilder) WithChannel(channel uint32, voltage []uint16) *TraceBuilder {
	b.channels = append(b.channels, ChannelTrace{Channel: channel, Voltage: voltage})
	return b
}

// WithStrict makes duplicate channel numbers fatal at Build time.
func (b *TraceBuilder) WithStrict() *TraceBuilder {
	b.strict = true
	return b
}

// Reset clears the accumulated channels, keeping the digitizer id,
// metadata and sample rate.
func (b *TraceBuilder) Reset() *TraceBuilder {
	b.channels = b.channels[:0]
	return b
}

// Build encodes the analog-trace message and returns a copy of the
// bytes.
func (b *TraceBuilder) Build() ([]byte, error) {
	b.builder.Reset()
	m := &AnalogTrace{
		DigitizerID: b.digitizerID,
		Metadata:    b.metadata,
		SampleRate:  b.sampleRate,
		Channels:    b.channels,
	}
	var opts []EncodeOption
	if b.strict {
		opts = append(opts, Strict())
	}
	if err := encodeTraceInto(b.builder, m, opts...); err != nil {
		return nil, err
	}

	// Return a copy to avoid buffer reuse issues
	result := make([]byte, len(b.builder.FinishedBytes()))
	copy(result, b.builder.FinishedBytes())
	return result, nil
}
