package digitizer

import (
	"errors"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/neutrondaq/streaming-types/schema"
)

func encodedEventList(t *testing.T) []byte {
	t.Helper()
	buf, err := EncodeEventList(&EventList{
		DigitizerID: 1,
		Metadata:    testMetadata(),
		Time:        []uint32{1, 2, 3},
		Voltage:     []uint16{10, 20, 30},
		Channel:     []uint32{5, 6, 7},
	})
	if err != nil {
		t.Fatalf("EncodeEventList failed: %v", err)
	}
	return buf
}

func encodedTrace(t *testing.T) []byte {
	t.Helper()
	buf, err := EncodeTrace(&AnalogTrace{
		DigitizerID: 1,
		Metadata:    testMetadata(),
		SampleRate:  1000,
		Channels:    []ChannelTrace{{Channel: 0, Voltage: []uint16{1, 2}}},
	})
	if err != nil {
		t.Fatalf("EncodeTrace failed: %v", err)
	}
	return buf
}

func TestEncodeEventListLengthMismatch(t *testing.T) {
	buf, err := EncodeEventList(&EventList{
		DigitizerID: 1,
		Metadata:    testMetadata(),
		Time:        []uint32{1, 2},
		Voltage:     []uint16{10},
		Channel:     []uint32{5, 6},
	})
	if buf != nil {
		t.Error("expected no buffer on length mismatch")
	}
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	var lm *LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("expected *LengthMismatchError, got %T", err)
	}
	if lm.Times != 2 || lm.Voltages != 1 || lm.Channels != 2 {
		t.Errorf("mismatch detail wrong: %+v", lm)
	}
}

func TestEncodeTraceZeroSampleRate(t *testing.T) {
	buf, err := EncodeTrace(&AnalogTrace{
		DigitizerID: 1,
		Metadata:    testMetadata(),
		SampleRate:  0,
		Channels:    []ChannelTrace{{Channel: 0, Voltage: []uint16{1}}},
	})
	if buf != nil {
		t.Error("expected no buffer on zero sample rate")
	}
	if !errors.Is(err, ErrZeroSampleRate) {
		t.Fatalf("expected ErrZeroSampleRate, got %v", err)
	}
}

func TestEncodeTraceDuplicateChannels(t *testing.T) {
	msg := &AnalogTrace{
		DigitizerID: 1,
		Metadata:    testMetadata(),
		SampleRate:  1000,
		Channels: []ChannelTrace{
			{Channel: 3, Voltage: []uint16{1}},
			{Channel: 3, Voltage: []uint16{2}},
		},
	}

	// Duplicates are kept (and logged) by default.
	buf, err := EncodeTrace(msg)
	if err != nil {
		t.Fatalf("non-strict encode rejected duplicates: %v", err)
	}
	view, err := DecodeTrace(buf)
	if err != nil {
		t.Fatalf("DecodeTrace failed: %v", err)
	}
	if view.Len() != 2 {
		t.Errorf("expected both duplicate entries kept, got %d", view.Len())
	}

	// Strict mode makes them fatal.
	buf, err = EncodeTrace(msg, Strict())
	if buf != nil {
		t.Error("expected no buffer from strict encode")
	}
	if !errors.Is(err, ErrDuplicateChannel) {
		t.Fatalf("expected ErrDuplicateChannel, got %v", err)
	}
	var dc *DuplicateChannelError
	if !errors.As(err, &dc) || dc.Channel != 3 {
		t.Errorf("expected duplicate channel 3, got %v", err)
	}
}

func TestDecodeWrongIdentifier(t *testing.T) {
	traceBuf := encodedTrace(t)

	_, err := DecodeEventList(traceBuf)
	if !errors.Is(err, ErrBadIdentifier) {
		t.Fatalf("expected ErrBadIdentifier, got %v", err)
	}
	var bad *BadIdentifierError
	if !errors.As(err, &bad) {
		t.Fatalf("expected *BadIdentifierError, got %T", err)
	}
	if bad.Got != AnalogTraceIdentifier || bad.Want != EventListIdentifier {
		t.Errorf("identifier detail wrong: %+v", bad)
	}

	eventBuf := encodedEventList(t)
	if _, err := DecodeTrace(eventBuf); !errors.Is(err, ErrBadIdentifier) {
		t.Fatalf("expected ErrBadIdentifier, got %v", err)
	}
}

func TestDecodeGarbageIdentifier(t *testing.T) {
	buf := encodedEventList(t)
	copy(buf[4:8], "zzz9")

	if _, err := DecodeEventList(buf); !errors.Is(err, ErrBadIdentifier) {
		t.Fatalf("expected ErrBadIdentifier, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	buf := encodedEventList(t)

	// Shorter than even the header.
	if _, err := DecodeEventList(buf[:6]); !errors.Is(err, ErrTruncatedBuffer) {
		t.Fatalf("expected ErrTruncatedBuffer for 6 bytes, got %v", err)
	}

	// Header intact but the root table is gone.
	if _, err := DecodeEventList(buf[:10]); !errors.Is(err, ErrTruncatedBuffer) {
		t.Fatalf("expected ErrTruncatedBuffer for 10 bytes, got %v", err)
	}
}

func TestDecodeGpsTimeTruncated(t *testing.T) {
	buf := EncodeGpsTime(GpsTime{Year: 24, DayOfYear: 100})

	_, err := DecodeGpsTime(buf[:GpsTimeWireSize-4])
	if !errors.Is(err, ErrTruncatedBuffer) {
		t.Fatalf("expected ErrTruncatedBuffer, got %v", err)
	}
	var tr *TruncatedBufferError
	if !errors.As(err, &tr) {
		t.Fatalf("expected *TruncatedBufferError, got %T", err)
	}
	if tr.Min != GpsTimeWireSize {
		t.Errorf("expected minimum %d, got %d", GpsTimeWireSize, tr.Min)
	}
}

func TestDecodeMissingMetadata(t *testing.T) {
	// Hand-craft a buffer with the right identifier but no metadata
	// table; the encoder can never produce this.
	b := flatbuffers.NewBuilder(64)
	schema.DigitizerEventListMessageStart(b)
	schema.DigitizerEventListMessageAddDigitizerId(b, 1)
	schema.FinishDigitizerEventListMessageBuffer(b, schema.DigitizerEventListMessageEnd(b))

	_, err := DecodeEventList(b.FinishedBytes())
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
	var mf *MissingRequiredFieldError
	if !errors.As(err, &mf) || mf.Field != "metadata" {
		t.Errorf("expected missing metadata, got %v", err)
	}
}

func TestDecodeMissingTimestamp(t *testing.T) {
	// Metadata present but without its required timestamp struct.
	b := flatbuffers.NewBuilder(64)
	schema.FrameMetadataStart(b)
	schema.FrameMetadataAddFrameNumber(b, 9)
	metaOff := schema.FrameMetadataEnd(b)
	schema.DigitizerAnalogTraceMessageStart(b)
	schema.DigitizerAnalogTraceMessageAddMetadata(b, metaOff)
	schema.FinishDigitizerAnalogTraceMessageBuffer(b, schema.DigitizerAnalogTraceMessageEnd(b))

	_, err := DecodeTrace(b.FinishedBytes())
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Fatalf("expected ErrMissingRequiredField, got %v", err)
	}
	var mf *MissingRequiredFieldError
	if !errors.As(err, &mf) || mf.Field != "metadata.timestamp" {
		t.Errorf("expected missing metadata.timestamp, got %v", err)
	}
}

func TestDecodeEventListLengthMismatch(t *testing.T) {
	// Hand-craft a buffer whose vectors disagree; decode must reject
	// it even though the encoder never produces one.
	b := flatbuffers.NewBuilder(128)

	schema.FrameMetadataStart(b)
	schema.FrameMetadataAddTimestamp(b, schema.CreateGpsTime(b, 24, 100, 0, 0, 0, 0, 0, 0))
	metaOff := schema.FrameMetadataEnd(b)

	schema.DigitizerEventListMessageStartTimeVector(b, 2)
	b.PrependUint32(2)
	b.PrependUint32(1)
	timeOff := b.EndVector(2)

	schema.DigitizerEventListMessageStartVoltageVector(b, 1)
	b.PrependUint16(10)
	voltageOff := b.EndVector(1)

	schema.DigitizerEventListMessageStartChannelVector(b, 2)
	b.PrependUint32(6)
	b.PrependUint32(5)
	channelOff := b.EndVector(2)

	schema.DigitizerEventListMessageStart(b)
	schema.DigitizerEventListMessageAddMetadata(b, metaOff)
	schema.DigitizerEventListMessageAddTime(b, timeOff)
	schema.DigitizerEventListMessageAddVoltage(b, voltageOff)
	schema.DigitizerEventListMessageAddChannel(b, channelOff)
	schema.FinishDigitizerEventListMessageBuffer(b, schema.DigitizerEventListMessageEnd(b))

	_, err := DecodeEventList(b.FinishedBytes())
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	var lm *LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("expected *LengthMismatchError, got %T", err)
	}
	if lm.Times != 2 || lm.Voltages != 1 || lm.Channels != 2 {
		t.Errorf("mismatch detail wrong: %+v", lm)
	}
}

func TestDecodeMetadataTruncated(t *testing.T) {
	if _, err := DecodeFrameMetadata([]byte{1, 2}); !errors.Is(err, ErrTruncatedBuffer) {
		t.Fatalf("expected ErrTruncatedBuffer, got %v", err)
	}
}

func TestIdentify(t *testing.T) {
	if kind := Identify(encodedEventList(t)); kind != KindEventList {
		t.Errorf("event-list buffer identified as %v", kind)
	}
	if kind := Identify(encodedTrace(t)); kind != KindAnalogTrace {
		t.Errorf("trace buffer identified as %v", kind)
	}
	if kind := Identify([]byte("short")); kind != KindUnknown {
		t.Errorf("short buffer identified as %v", kind)
	}

	buf := encodedTrace(t)
	copy(buf[4:8], "sp99")
	if kind := Identify(buf); kind != KindUnknown {
		t.Errorf("unrecognized identifier classified as %v", kind)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindEventList:   "event-list",
		KindAnalogTrace: "analog-trace",
		KindUnknown:     "unknown",
		Kind(42):        "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
