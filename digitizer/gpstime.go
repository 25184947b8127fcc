package digitizer

import (
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/neutrondaq/streaming-types/schema"
)

// GpsTimeWireSize is the packed size of a GpsTime on the wire. The
// eight declared fields occupy 12 bytes; FlatBuffers struct alignment
// adds one padding byte after year and one after second.
const GpsTimeWireSize = 14

// GpsTime is the fixed-layout timestamp embedded in every frame's
// metadata. The zero value is midnight on day 0 of year 2000, which no
// real digitizer emits; day-of-year is 1-based.
type GpsTime struct {
	Year        uint8 // years since 2000
	DayOfYear   uint16
	Hour        uint8
	Minute      uint8
	Second      uint8
	Millisecond uint16
	Microsecond uint16
	Nanosecond  uint16
}

// GpsTimeFromTime converts a time.Time into a GpsTime. Only years
// 2000-2255 are representable; t is interpreted in UTC.
func GpsTimeFromTime(t time.Time) GpsTime {
	t = t.UTC()
	ns := t.Nanosecond()
	return GpsTime{
		Year:        uint8(t.Year() - 2000),
		DayOfYear:   uint16(t.YearDay()),
		Hour:        uint8(t.Hour()),
		Minute:      uint8(t.Minute()),
		Second:      uint8(t.Second()),
		Millisecond: uint16(ns / 1_000_000),
		Microsecond: uint16(ns / 1_000 % 1_000),
		Nanosecond:  uint16(ns % 1_000),
	}
}

// Time converts the GpsTime back into a UTC time.Time.
func (g GpsTime) Time() time.Time {
	ns := int(g.Millisecond)*1_000_000 + int(g.Microsecond)*1_000 + int(g.Nanosecond)
	day := time.Date(2000+int(g.Year), time.January, 1,
		int(g.Hour), int(g.Minute), int(g.Second), ns, time.UTC)
	return day.AddDate(0, 0, int(g.DayOfYear)-1)
}

// EncodeGpsTime serializes a GpsTime into its packed wire layout. The
// returned slice is owned by the caller.
func EncodeGpsTime(g GpsTime) []byte {
	b := flatbuffers.NewBuilder(GpsTimeWireSize + flatbuffers.SizeUOffsetT)
	createGpsTime(b, g)
	out := make([]byte, GpsTimeWireSize)
	copy(out, b.Bytes[b.Head():])
	return out
}

// DecodeGpsTime reads a packed GpsTime from the front of buf. It fails
// with a TruncatedBufferError if fewer than GpsTimeWireSize bytes
// remain. The result is an owned value; buf may be reused afterwards.
func DecodeGpsTime(buf []byte) (GpsTime, error) {
	if len(buf) < GpsTimeWireSize {
		return GpsTime{}, &TruncatedBufferError{Len: len(buf), Min: GpsTimeWireSize}
	}
	var v schema.GpsTime
	v.Init(buf, 0)
	return gpsTimeFromView(&v), nil
}

func createGpsTime(b *flatbuffers.Builder, g GpsTime) flatbuffers.UOffsetT {
	return schema.CreateGpsTime(b, g.Year, g.DayOfYear, g.Hour, g.Minute, g.Second,
		g.Millisecond, g.Microsecond, g.Nanosecond)
}

func gpsTimeFromView(v *schema.GpsTime) GpsTime {
	return GpsTime{
		Year:        v.Year(),
		DayOfYear:   v.Day(),
		Hour:        v.Hour(),
		Minute:      v.Minute(),
		Second:      v.Second(),
		Millisecond: v.Millisecond(),
		Microsecond: v.Microsecond(),
		Nanosecond:  v.Nanosecond(),
	}
}
