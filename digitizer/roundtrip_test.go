package digitizer

import (
	"reflect"
	"testing"
	"time"
)

func testMetadata() FrameMetadata {
	return FrameMetadata{
		Timestamp: GpsTime{
			Year:        24,
			DayOfYear:   156,
			Hour:        11,
			Minute:      30,
			Second:      15,
			Millisecond: 250,
			Microsecond: 500,
			Nanosecond:  750,
		},
		PeriodNumber:    12,
		ProtonsPerPulse: 8,
		Running:         true,
		FrameNumber:     1024,
		VetoFlags:       0x0003,
	}
}

func TestEventListRoundtrip(t *testing.T) {
	msg := &EventList{
		DigitizerID: 4,
		Metadata:    testMetadata(),
		Time:        []uint32{100, 250, 1100, 9000},
		Voltage:     []uint16{512, 768, 1023, 4},
		Channel:     []uint32{7, 7, 12, 3},
	}

	buf, err := EncodeEventList(msg)
	if err != nil {
		t.Fatalf("EncodeEventList failed: %v", err)
	}

	view, err := DecodeEventList(buf)
	if err != nil {
		t.Fatalf("DecodeEventList failed: %v", err)
	}

	if view.DigitizerID() != 4 {
		t.Errorf("DigitizerID mismatch: got %d, want 4", view.DigitizerID())
	}
	if view.Len() != 4 {
		t.Errorf("Len mismatch: got %d, want 4", view.Len())
	}
	if view.TimeAt(2) != 1100 {
		t.Errorf("TimeAt(2) mismatch: got %d, want 1100", view.TimeAt(2))
	}
	if view.VoltageAt(3) != 4 {
		t.Errorf("VoltageAt(3) mismatch: got %d, want 4", view.VoltageAt(3))
	}
	if view.ChannelAt(0) != 7 {
		t.Errorf("ChannelAt(0) mismatch: got %d, want 7", view.ChannelAt(0))
	}

	if !reflect.DeepEqual(view.Owned(), msg) {
		t.Errorf("Owned roundtrip mismatch:\ngot  %+v\nwant %+v", view.Owned(), msg)
	}
}

func TestTraceRoundtrip(t *testing.T) {
	msg := &AnalogTrace{
		DigitizerID: 2,
		Metadata:    testMetadata(),
		SampleRate:  1_000_000_000,
		Channels: []ChannelTrace{
			{Channel: 0, Voltage: []uint16{404, 404, 404, 404}},
			{Channel: 5, Voltage: []uint16{1, 2, 3}}, // lengths may differ per channel
			{Channel: 9, Voltage: nil},
		},
	}

	buf, err := EncodeTrace(msg)
	if err != nil {
		t.Fatalf("EncodeTrace failed: %v", err)
	}

	view, err := DecodeTrace(buf)
	if err != nil {
		t.Fatalf("DecodeTrace failed: %v", err)
	}

	if view.DigitizerID() != 2 {
		t.Errorf("DigitizerID mismatch: got %d, want 2", view.DigitizerID())
	}
	if view.SampleRate() != 1_000_000_000 {
		t.Errorf("SampleRate mismatch: got %d", view.SampleRate())
	}
	if view.Len() != 3 {
		t.Fatalf("Len mismatch: got %d, want 3", view.Len())
	}

	ch := view.Channel(1)
	if ch.Channel() != 5 {
		t.Errorf("Channel(1) number mismatch: got %d, want 5", ch.Channel())
	}
	if ch.Len() != 3 {
		t.Errorf("Channel(1) length mismatch: got %d, want 3", ch.Len())
	}
	if ch.At(2) != 3 {
		t.Errorf("Channel(1) sample 2 mismatch: got %d, want 3", ch.At(2))
	}

	if !reflect.DeepEqual(view.Owned(), msg) {
		t.Errorf("Owned roundtrip mismatch:\ngot  %+v\nwant %+v", view.Owned(), msg)
	}
}

func TestEventListRoundtripEmpty(t *testing.T) {
	// A quiet frame carries metadata and no events.
	msg := &EventList{DigitizerID: 1, Metadata: testMetadata()}

	buf, err := EncodeEventList(msg)
	if err != nil {
		t.Fatalf("EncodeEventList failed: %v", err)
	}

	view, err := DecodeEventList(buf)
	if err != nil {
		t.Fatalf("DecodeEventList failed: %v", err)
	}
	if view.Len() != 0 {
		t.Errorf("expected empty event list, got %d events", view.Len())
	}
	if !reflect.DeepEqual(view.Owned(), msg) {
		t.Errorf("Owned roundtrip mismatch: %+v", view.Owned())
	}
}

func TestTraceRoundtripNoChannels(t *testing.T) {
	msg := &AnalogTrace{DigitizerID: 1, Metadata: testMetadata(), SampleRate: 500}

	buf, err := EncodeTrace(msg)
	if err != nil {
		t.Fatalf("EncodeTrace failed: %v", err)
	}
	view, err := DecodeTrace(buf)
	if err != nil {
		t.Fatalf("DecodeTrace failed: %v", err)
	}
	if view.Len() != 0 {
		t.Errorf("expected no channels, got %d", view.Len())
	}
	if !reflect.DeepEqual(view.Owned(), msg) {
		t.Errorf("Owned roundtrip mismatch: %+v", view.Owned())
	}
}

func TestMetadataRoundtrip(t *testing.T) {
	meta := testMetadata()

	buf := EncodeFrameMetadata(meta)
	got, err := DecodeFrameMetadata(buf)
	if err != nil {
		t.Fatalf("DecodeFrameMetadata failed: %v", err)
	}
	if got != meta {
		t.Errorf("metadata mismatch:\ngot  %+v\nwant %+v", got, meta)
	}
}

func TestMetadataLargeValues(t *testing.T) {
	meta := FrameMetadata{
		Timestamp:       GpsTime{Year: 255, DayOfYear: 366, Hour: 23, Minute: 59, Second: 59, Millisecond: 999, Microsecond: 999, Nanosecond: 999},
		PeriodNumber:    18446744073709551615, // max uint64
		ProtonsPerPulse: 255,
		Running:         true,
		FrameNumber:     4294967295, // max uint32
		VetoFlags:       0xFFFF,
	}

	got, err := DecodeFrameMetadata(EncodeFrameMetadata(meta))
	if err != nil {
		t.Fatalf("DecodeFrameMetadata failed: %v", err)
	}
	if got != meta {
		t.Errorf("metadata mismatch:\ngot  %+v\nwant %+v", got, meta)
	}
}

func TestGpsTimeRoundtrip(t *testing.T) {
	g := GpsTime{Year: 26, DayOfYear: 235, Hour: 9, Minute: 41, Second: 3, Millisecond: 17, Microsecond: 230, Nanosecond: 999}

	buf := EncodeGpsTime(g)
	if len(buf) != GpsTimeWireSize {
		t.Fatalf("encoded GpsTime is %d bytes, want %d", len(buf), GpsTimeWireSize)
	}

	got, err := DecodeGpsTime(buf)
	if err != nil {
		t.Fatalf("DecodeGpsTime failed: %v", err)
	}
	if got != g {
		t.Errorf("GpsTime mismatch:\ngot  %+v\nwant %+v", got, g)
	}
}

func TestGpsTimeTimeConversion(t *testing.T) {
	when := time.Date(2024, time.June, 4, 11, 30, 15, 250_500_750, time.UTC)

	g := GpsTimeFromTime(when)
	want := GpsTime{Year: 24, DayOfYear: 156, Hour: 11, Minute: 30, Second: 15, Millisecond: 250, Microsecond: 500, Nanosecond: 750}
	if g != want {
		t.Errorf("GpsTimeFromTime mismatch:\ngot  %+v\nwant %+v", g, want)
	}

	if back := g.Time(); !back.Equal(when) {
		t.Errorf("Time roundtrip mismatch: got %v, want %v", back, when)
	}
}

func TestEventListBuilder(t *testing.T) {
	buf, err := NewEventListBuilder().
		WithDigitizerID(7).
		WithMetadata(testMetadata()).
		AddEvent(100, 512, 3).
		AddEvent(200, 256, 4).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	view, err := DecodeEventList(buf)
	if err != nil {
		t.Fatalf("DecodeEventList failed: %v", err)
	}
	if view.DigitizerID() != 7 {
		t.Errorf("DigitizerID mismatch: got %d, want 7", view.DigitizerID())
	}
	if view.Len() != 2 {
		t.Errorf("Len mismatch: got %d, want 2", view.Len())
	}
	if view.TimeAt(1) != 200 || view.VoltageAt(1) != 256 || view.ChannelAt(1) != 4 {
		t.Errorf("event 1 mismatch: got (%d, %d, %d)",
			view.TimeAt(1), view.VoltageAt(1), view.ChannelAt(1))
	}
}

func TestEventListBuilderDefaults(t *testing.T) {
	buf, err := NewEventListBuilder().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	view, err := DecodeEventList(buf)
	if err != nil {
		t.Fatalf("DecodeEventList failed: %v", err)
	}
	if view.Len() != 0 {
		t.Errorf("expected empty default event list, got %d events", view.Len())
	}
	if !view.Metadata().Running {
		t.Error("expected default metadata to mark the run active")
	}
}

func TestTraceBuilder(t *testing.T) {
	buf, err := NewTraceBuilder().
		WithDigitizerID(3).
		WithMetadata(testMetadata()).
		WithSampleRate(2_000_000).
		WithChannel(0, []uint16{10, 20, 30}).
		WithChannel(1, []uint16{40, 50}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	view, err := DecodeTrace(buf)
	if err != nil {
		t.Fatalf("DecodeTrace failed: %v", err)
	}
	if view.SampleRate() != 2_000_000 {
		t.Errorf("SampleRate mismatch: got %d", view.SampleRate())
	}
	if view.Len() != 2 {
		t.Fatalf("expected 2 channels, got %d", view.Len())
	}
	if view.Channel(1).At(1) != 50 {
		t.Errorf("channel 1 sample 1 mismatch: got %d, want 50", view.Channel(1).At(1))
	}
}

func TestBuilderMultipleBuilds(t *testing.T) {
	// One builder produces a stream of frames; earlier buffers must
	// not be clobbered by later Builds.
	builder := NewTraceBuilder().WithMetadata(testMetadata())

	buf1, err := builder.WithFrameNumber(1).WithChannel(0, []uint16{1, 1}).Build()
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	buf2, err := builder.Reset().WithFrameNumber(2).WithChannel(0, []uint16{2, 2}).Build()
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}

	view1, err := DecodeTrace(buf1)
	if err != nil {
		t.Fatalf("DecodeTrace(buf1) failed: %v", err)
	}
	view2, err := DecodeTrace(buf2)
	if err != nil {
		t.Fatalf("DecodeTrace(buf2) failed: %v", err)
	}

	if view1.Metadata().FrameNumber != 1 {
		t.Errorf("first build was modified: frame %d", view1.Metadata().FrameNumber)
	}
	if view2.Metadata().FrameNumber != 2 {
		t.Errorf("second build frame mismatch: %d", view2.Metadata().FrameNumber)
	}
	if view1.Channel(0).At(0) != 1 || view2.Channel(0).At(0) != 2 {
		t.Error("builds share sample data")
	}
}

func TestOwnedSurvivesBufferReuse(t *testing.T) {
	msg := &EventList{
		DigitizerID: 9,
		Metadata:    testMetadata(),
		Time:        []uint32{1, 2},
		Voltage:     []uint16{3, 4},
		Channel:     []uint32{5, 6},
	}
	buf, err := EncodeEventList(msg)
	if err != nil {
		t.Fatalf("EncodeEventList failed: %v", err)
	}

	view, err := DecodeEventList(buf)
	if err != nil {
		t.Fatalf("DecodeEventList failed: %v", err)
	}
	owned := view.Owned()

	// Clobber the transport buffer; the owned copy must be unaffected.
	for i := range buf {
		buf[i] = 0xFF
	}

	if !reflect.DeepEqual(owned, msg) {
		t.Errorf("owned copy changed with the buffer:\ngot  %+v\nwant %+v", owned, msg)
	}
}
