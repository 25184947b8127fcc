package digitizer

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/neutrondaq/streaming-types/schema"
)

// EventList is an owned, self-contained event-list message. Index i
// across the Time, Voltage and Channel slices describes one detected
// event; the three slices must agree in length.
type EventList struct {
	DigitizerID uint8
	Metadata    FrameMetadata
	// Time holds nanoseconds since the start of the frame, per event.
	Time    []uint32
	Voltage []uint16
	// Channel holds facility-assigned channel numbers, not indices.
	Channel []uint32
}

// EncodeEventList serializes an event-list message into a buffer
// carrying the "dev2" identifier. It fails with a LengthMismatchError
// before writing anything if the three event vectors disagree in
// length. The returned slice is owned by the caller.
func EncodeEventList(m *EventList) ([]byte, error) {
	b := flatbuffers.NewBuilder(eventListSizeHint(m))
	if err := encodeEventListInto(b, m); err != nil {
		return nil, err
	}
	return b.FinishedBytes(), nil
}

func eventListSizeHint(m *EventList) int {
	return 96 + 10*len(m.Time)
}

func encodeEventListInto(b *flatbuffers.Builder, m *EventList) error {
	if len(m.Time) != len(m.Voltage) || len(m.Time) != len(m.Channel) {
		return &LengthMismatchError{
			Times:    len(m.Time),
			Voltages: len(m.Voltage),
			Channels: len(m.Channel),
		}
	}

	metaOff := writeFrameMetadata(b, m.Metadata)

	schema.DigitizerEventListMessageStartTimeVector(b, len(m.Time))
	for i := len(m.Time) - 1; i >= 0; i-- {
		b.PrependUint32(m.Time[i])
	}
	timeOff := b.EndVector(len(m.Time))

	schema.DigitizerEventListMessageStartVoltageVector(b, len(m.Voltage))
	for i := len(m.Voltage) - 1; i >= 0; i-- {
		b.PrependUint16(m.Voltage[i])
	}
	voltageOff := b.EndVector(len(m.Voltage))

	schema.DigitizerEventListMessageStartChannelVector(b, len(m.Channel))
	for i := len(m.Channel) - 1; i >= 0; i-- {
		b.PrependUint32(m.Channel[i])
	}
	channelOff := b.EndVector(len(m.Channel))

	schema.DigitizerEventListMessageStart(b)
	schema.DigitizerEventListMessageAddDigitizerId(b, m.DigitizerID)
	schema.DigitizerEventListMessageAddMetadata(b, metaOff)
	schema.DigitizerEventListMessageAddTime(b, timeOff)
	schema.DigitizerEventListMessageAddVoltage(b, voltageOff)
	schema.DigitizerEventListMessageAddChannel(b, channelOff)
	schema.FinishDigitizerEventListMessageBuffer(b, schema.DigitizerEventListMessageEnd(b))
	return nil
}

// EventListView is a zero-copy decode result. It borrows the buffer
// passed to DecodeEventList and is valid only as long as that buffer
// is; callers that need the data to outlive the buffer should take an
// Owned copy.
type EventListView struct {
	msg  *schema.DigitizerEventListMessage
	meta FrameMetadata
	n    int
}

// DecodeEventList parses an event-list buffer into a borrowing view.
// It fails with a BadIdentifierError if the buffer does not carry the
// "dev2" identifier, a TruncatedBufferError if the buffer is too
// short, a MissingRequiredFieldError if the frame metadata or its
// timestamp is absent, and a LengthMismatchError if the three event
// vectors disagree (a corrupted or hand-crafted buffer can disagree
// even though the encoder never produces one).
func DecodeEventList(buf []byte) (*EventListView, error) {
	if err := checkIdentified(buf, EventListIdentifier); err != nil {
		return nil, err
	}
	msg := schema.GetRootAsDigitizerEventListMessage(buf, 0)

	mv := msg.Metadata(nil)
	if mv == nil {
		return nil, &MissingRequiredFieldError{Field: "metadata"}
	}
	meta, err := frameMetadataFromView(mv, "metadata.timestamp")
	if err != nil {
		return nil, err
	}

	nt, nv, nc := msg.TimeLength(), msg.VoltageLength(), msg.ChannelLength()
	if nt != nv || nt != nc {
		return nil, &LengthMismatchError{Times: nt, Voltages: nv, Channels: nc}
	}

	return &EventListView{msg: msg, meta: meta, n: nt}, nil
}

// DigitizerID returns the source digitizer's identifier.
func (v *EventListView) DigitizerID() uint8 { return v.msg.DigitizerId() }

// Metadata returns the frame metadata as an owned value.
func (v *EventListView) Metadata() FrameMetadata { return v.meta }

// Len returns the number of events in the message.
func (v *EventListView) Len() int { return v.n }

// TimeAt returns event i's arrival time in nanoseconds from frame start.
func (v *EventListView) TimeAt(i int) uint32 { return v.msg.Time(i) }

// VoltageAt returns event i's measured voltage.
func (v *EventListView) VoltageAt(i int) uint16 { return v.msg.Voltage(i) }

// ChannelAt returns event i's source channel number.
func (v *EventListView) ChannelAt(i int) uint32 { return v.msg.Channel(i) }

// Owned copies the view into a self-contained EventList that does not
// reference the decoded buffer.
func (v *EventListView) Owned() *EventList {
	m := &EventList{
		DigitizerID: v.DigitizerID(),
		Metadata:    v.meta,
	}
	if v.n > 0 {
		m.Time = make([]uint32, v.n)
		m.Voltage = make([]uint16, v.n)
		m.Channel = make([]uint32, v.n)
		for i := 0; i < v.n; i++ {
			m.Time[i] = v.msg.Time(i)
			m.Voltage[i] = v.msg.Voltage(i)
			m.Channel[i] = v.msg.Channel(i)
		}
	}
	return m
}

// checkIdentified gates a message buffer on size and format identifier
// before any table access.
func checkIdentified(buf []byte, identifier string) error {
	min := flatbuffers.SizeUOffsetT + identifierLen
	if len(buf) < min {
		return &TruncatedBufferError{Len: len(buf), Min: min}
	}
	got := string(buf[flatbuffers.SizeUOffsetT : flatbuffers.SizeUOffsetT+identifierLen])
	if got != identifier {
		return &BadIdentifierError{Got: got, Want: identifier}
	}
	return checkRootTable(buf, min)
}
