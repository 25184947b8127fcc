package digitizer

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/neutrondaq/streaming-types/schema"
)

// ChannelTrace is the raw waveform captured on one channel.
type ChannelTrace struct {
	// Channel is the facility-assigned channel number.
	Channel uint32
	Voltage []uint16
}

// AnalogTrace is an owned, self-contained analog-trace message.
// Per-channel trace lengths are independent; channel numbers within
// one message should be unique but duplicates are only fatal in
// strict mode.
type AnalogTrace struct {
	DigitizerID uint8
	Metadata    FrameMetadata
	// SampleRate in samples per second, common to every channel.
	SampleRate uint64
	Channels   []ChannelTrace
}

// EncodeOption adjusts encode-side validation policy.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	strict bool
}

// Strict makes duplicate channel numbers a fatal DuplicateChannelError
// instead of a logged warning.
func Strict() EncodeOption {
	return func(o *encodeOptions) { o.strict = true }
}

// EncodeTrace serializes an analog-trace message into a buffer
// carrying the "dat2" identifier. A zero sample rate fails with
// ErrZeroSampleRate before anything is written: a trace without a
// timebase is meaningless. Duplicate channel numbers are logged and
// kept unless the Strict option is given. The returned slice is owned
// by the caller.
func EncodeTrace(m *AnalogTrace, opts ...EncodeOption) ([]byte, error) {
	b := flatbuffers.NewBuilder(traceSizeHint(m))
	if err := encodeTraceInto(b, m, opts...); err != nil {
		return nil, err
	}
	return b.FinishedBytes(), nil
}

func traceSizeHint(m *AnalogTrace) int {
	n := 96
	for i := range m.Channels {
		n += 32 + 2*len(m.Channels[i].Voltage)
	}
	return n
}

func encodeTraceInto(b *flatbuffers.Builder, m *AnalogTrace, opts ...EncodeOption) error {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if m.SampleRate == 0 {
		return ErrZeroSampleRate
	}
	seen := make(map[uint32]bool, len(m.Channels))
	for i := range m.Channels {
		ch := m.Channels[i].Channel
		if seen[ch] {
			if o.strict {
				return &DuplicateChannelError{Channel: ch}
			}
			log.Warnf("analog trace repeats channel %d; keeping both entries", ch)
		}
		seen[ch] = true
	}

	metaOff := writeFrameMetadata(b, m.Metadata)

	chOffs := make([]flatbuffers.UOffsetT, len(m.Channels))
	for i := range m.Channels {
		voltage := m.Channels[i].Voltage
		schema.ChannelTraceStartVoltageVector(b, len(voltage))
		for j := len(voltage) - 1; j >= 0; j-- {
			b.PrependUint16(voltage[j])
		}
		voltageOff := b.EndVector(len(voltage))

		schema.ChannelTraceStart(b)
		schema.ChannelTraceAddChannel(b, m.Channels[i].Channel)
		schema.ChannelTraceAddVoltage(b, voltageOff)
		chOffs[i] = schema.ChannelTraceEnd(b)
	}

	schema.DigitizerAnalogTraceMessageStartChannelsVector(b, len(chOffs))
	for i := len(chOffs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(chOffs[i])
	}
	channelsOff := b.EndVector(len(chOffs))

	schema.DigitizerAnalogTraceMessageStart(b)
	schema.DigitizerAnalogTraceMessageAddDigitizerId(b, m.DigitizerID)
	schema.DigitizerAnalogTraceMessageAddMetadata(b, metaOff)
	schema.DigitizerAnalogTraceMessageAddSampleRate(b, m.SampleRate)
	schema.DigitizerAnalogTraceMessageAddChannels(b, channelsOff)
	schema.FinishDigitizerAnalogTraceMessageBuffer(b, schema.DigitizerAnalogTraceMessageEnd(b))
	return nil
}

// TraceView is a zero-copy decode result. It borrows the buffer passed
// to DecodeTrace and is valid only as long as that buffer is; callers
// that need the data to outlive the buffer should take an Owned copy.
type TraceView struct {
	msg  *schema.DigitizerAnalogTraceMessage
	meta FrameMetadata
}

// DecodeTrace parses an analog-trace buffer into a borrowing view. It
// fails with a BadIdentifierError if the buffer does not carry the
// "dat2" identifier, a TruncatedBufferError if the buffer is too
// short, and a MissingRequiredFieldError if the frame metadata or its
// timestamp is absent. Duplicate channel numbers and a zero sample
// rate do not fail decode: consumers must be able to inspect whatever
// the hardware actually sent.
func DecodeTrace(buf []byte) (*TraceView, error) {
	if err := checkIdentified(buf, AnalogTraceIdentifier); err != nil {
		return nil, err
	}
	msg := schema.GetRootAsDigitizerAnalogTraceMessage(buf, 0)

	mv := msg.Metadata(nil)
	if mv == nil {
		return nil, &MissingRequiredFieldError{Field: "metadata"}
	}
	meta, err := frameMetadataFromView(mv, "metadata.timestamp")
	if err != nil {
		return nil, err
	}

	return &TraceView{msg: msg, meta: meta}, nil
}

// DigitizerID returns the source digitizer's identifier.
func (v *TraceView) DigitizerID() uint8 { return v.msg.DigitizerId() }

// Metadata returns the frame metadata as an owned value.
func (v *TraceView) Metadata() FrameMetadata { return v.meta }

// SampleRate returns the common sample rate in samples per second.
func (v *TraceView) SampleRate() uint64 { return v.msg.SampleRate() }

// Len returns the number of channel traces in the message.
func (v *TraceView) Len() int { return v.msg.ChannelsLength() }

// Channel returns a borrowing view of channel trace i.
func (v *TraceView) Channel(i int) ChannelTraceView {
	var ct schema.ChannelTrace
	v.msg.Channels(&ct, i)
	return ChannelTraceView{ct: ct}
}

// Owned copies the view into a self-contained AnalogTrace that does
// not reference the decoded buffer.
func (v *TraceView) Owned() *AnalogTrace {
	m := &AnalogTrace{
		DigitizerID: v.DigitizerID(),
		Metadata:    v.meta,
		SampleRate:  v.SampleRate(),
	}
	if n := v.Len(); n > 0 {
		m.Channels = make([]ChannelTrace, n)
		for i := 0; i < n; i++ {
			m.Channels[i] = v.Channel(i).Owned()
		}
	}
	return m
}

// ChannelTraceView is a borrowing view of one channel's waveform.
type ChannelTraceView struct {
	ct schema.ChannelTrace
}

// Channel returns the facility-assigned channel number.
func (v ChannelTraceView) Channel() uint32 { return v.ct.Channel() }

// Len returns the number of samples in this channel's trace.
func (v ChannelTraceView) Len() int { return v.ct.VoltageLength() }

// At returns sample j.
func (v ChannelTraceView) At(j int) uint16 { return v.ct.Voltage(j) }

// Owned copies the waveform out of the decoded buffer.
func (v ChannelTraceView) Owned() ChannelTrace {
	out := ChannelTrace{Channel: v.Channel()}
	if n := v.Len(); n > 0 {
		out.Voltage = make([]uint16, n)
		for j := 0; j < n; j++ {
			out.Voltage[j] = v.ct.Voltage(j)
		}
	}
	return out
}
