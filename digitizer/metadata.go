package digitizer

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/neutrondaq/streaming-types/schema"
)

// FrameMetadata describes one acquisition frame. It is a required
// sub-object of every digitizer message; both message codecs reject
// buffers without it.
type FrameMetadata struct {
	Timestamp       GpsTime
	PeriodNumber    uint64
	ProtonsPerPulse uint8
	Running         bool
	// FrameNumber increases monotonically within one digitizer's
	// stream. It is not unique across digitizers.
	FrameNumber uint32
	// VetoFlags is a bitmask of veto reasons; zero means no veto.
	VetoFlags uint16
}

// EncodeFrameMetadata serializes a standalone frame-metadata buffer
// (a bare root table with no format identifier). The two message
// encoders embed metadata themselves; this form exists for callers
// that stage metadata separately from the event or trace payload.
func EncodeFrameMetadata(m FrameMetadata) []byte {
	b := flatbuffers.NewBuilder(64)
	b.Finish(writeFrameMetadata(b, m))
	return b.FinishedBytes()
}

// DecodeFrameMetadata parses a standalone frame-metadata buffer into
// an owned value. It fails with a TruncatedBufferError if the buffer
// cannot hold a root table, and with a MissingRequiredFieldError if
// the timestamp is absent.
func DecodeFrameMetadata(buf []byte) (FrameMetadata, error) {
	if err := checkRootTable(buf, flatbuffers.SizeUOffsetT); err != nil {
		return FrameMetadata{}, err
	}
	return frameMetadataFromView(schema.GetRootAsFrameMetadata(buf, 0), "timestamp")
}

func writeFrameMetadata(b *flatbuffers.Builder, m FrameMetadata) flatbuffers.UOffsetT {
	schema.FrameMetadataStart(b)
	schema.FrameMetadataAddTimestamp(b, createGpsTime(b, m.Timestamp))
	schema.FrameMetadataAddPeriodNumber(b, m.PeriodNumber)
	schema.FrameMetadataAddProtonsPerPulse(b, m.ProtonsPerPulse)
	schema.FrameMetadataAddRunning(b, m.Running)
	schema.FrameMetadataAddFrameNumber(b, m.FrameNumber)
	schema.FrameMetadataAddVetoFlags(b, m.VetoFlags)
	return schema.FrameMetadataEnd(b)
}

// frameMetadataFromView copies a decoded metadata table into an owned
// value. fieldPrefix names the timestamp field in errors, so message
// decoders can report "metadata.timestamp" while the standalone
// decoder reports "timestamp".
func frameMetadataFromView(v *schema.FrameMetadata, fieldPrefix string) (FrameMetadata, error) {
	ts := v.Timestamp(nil)
	if ts == nil {
		return FrameMetadata{}, &MissingRequiredFieldError{Field: fieldPrefix}
	}
	return FrameMetadata{
		Timestamp:       gpsTimeFromView(ts),
		PeriodNumber:    v.PeriodNumber(),
		ProtonsPerPulse: v.ProtonsPerPulse(),
		Running:         v.Running(),
		FrameNumber:     v.FrameNumber(),
		VetoFlags:       v.VetoFlags(),
	}, nil
}

// checkRootTable rejects buffers too short to hold a root offset plus
// min bytes, or whose root offset points past the end of the buffer.
// It is a cheap sanity gate, not a full FlatBuffers verifier; a buffer
// that passes may still be rejected by the field checks that follow.
func checkRootTable(buf []byte, min int) error {
	if len(buf) < min {
		return &TruncatedBufferError{Len: len(buf), Min: min}
	}
	root := int(flatbuffers.GetUOffsetT(buf))
	if root+flatbuffers.SizeSOffsetT > len(buf) {
		return &TruncatedBufferError{Len: len(buf), Min: root + flatbuffers.SizeSOffsetT}
	}
	return nil
}
