// Package digitizer provides structural validation for digitizer messages.
package digitizer

// ValidateEventList checks an event-list message for structural
// violations without encoding it. It returns every violation found,
// not just the first, so producers that assemble messages
// incrementally can report all problems at once. A nil result means
// the message is valid.
func ValidateEventList(m *EventList) []error {
	var violations []error
	if len(m.Time) != len(m.Voltage) || len(m.Time) != len(m.Channel) {
		violations = append(violations, &LengthMismatchError{
			Times:    len(m.Time),
			Voltages: len(m.Voltage),
			Channels: len(m.Channel),
		})
	}
	return violations
}

// ValidateTrace checks an analog-trace message for structural
// violations without encoding it. A zero sample rate is always a
// violation; duplicate channel numbers are violations only in strict
// mode, matching the encode policy. A nil result means the message is
// valid.
func ValidateTrace(m *AnalogTrace, strict bool) []error {
	var violations []error
	if m.SampleRate == 0 {
		violations = append(violations, ErrZeroSampleRate)
	}
	if strict {
		seen := make(map[uint32]bool, len(m.Channels))
		for i := range m.Channels {
			ch := m.Channels[i].Channel
			if seen[ch] {
				violations = append(violations, &DuplicateChannelError{Channel: ch})
			}
			seen[ch] = true
		}
	}
	return violations
}
