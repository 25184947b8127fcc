package digitizer

import (
	"errors"
	"fmt"
)

// Sentinel errors for the codec. Parameterized failures are reported
// through the wrapper types below, each of which unwraps to its
// sentinel, so callers can use errors.Is for classification and
// errors.As for details.
var (
	// ErrBadIdentifier means the buffer's format identifier does not
	// match the expected message kind. The buffer may be perfectly
	// valid for some other consumer; it is safe to reroute.
	ErrBadIdentifier = errors.New("format identifier mismatch")

	// ErrMissingRequiredField means a required sub-object (the frame
	// metadata, or its timestamp) is absent from a decoded buffer.
	ErrMissingRequiredField = errors.New("required field missing")

	// ErrLengthMismatch means the time, voltage and channel vectors of
	// an event-list message disagree in length.
	ErrLengthMismatch = errors.New("event vectors differ in length")

	// ErrTruncatedBuffer means the buffer is shorter than the minimum
	// size its declared shape implies.
	ErrTruncatedBuffer = errors.New("buffer truncated")

	// ErrZeroSampleRate means an analog-trace message declared a sample
	// rate of zero, leaving its traces without a timebase.
	ErrZeroSampleRate = errors.New("sample rate is zero")

	// ErrDuplicateChannel means an analog-trace message carries the
	// same channel number more than once.
	ErrDuplicateChannel = errors.New("duplicate channel number")
)

// BadIdentifierError reports the identifier actually found in a buffer.
type BadIdentifierError struct {
	Got  string
	Want string
}

func (e *BadIdentifierError) Error() string {
	return fmt.Sprintf("format identifier mismatch: got %q, want %q", e.Got, e.Want)
}

func (e *BadIdentifierError) Unwrap() error { return ErrBadIdentifier }

// MissingRequiredFieldError names the absent required field.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

func (e *MissingRequiredFieldError) Unwrap() error { return ErrMissingRequiredField }

// LengthMismatchError carries the three disagreeing vector lengths.
type LengthMismatchError struct {
	Times    int
	Voltages int
	Channels int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("event vectors differ in length: time=%d voltage=%d channel=%d",
		e.Times, e.Voltages, e.Channels)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// TruncatedBufferError carries the actual and minimum buffer sizes.
type TruncatedBufferError struct {
	Len int
	Min int
}

func (e *TruncatedBufferError) Error() string {
	return fmt.Sprintf("buffer truncated: %d bytes, need at least %d", e.Len, e.Min)
}

func (e *TruncatedBufferError) Unwrap() error { return ErrTruncatedBuffer }

// DuplicateChannelError names the repeated channel number.
type DuplicateChannelError struct {
	Channel uint32
}

func (e *DuplicateChannelError) Error() string {
	return fmt.Sprintf("duplicate channel number %d", e.Channel)
}

func (e *DuplicateChannelError) Unwrap() error { return ErrDuplicateChannel }
