package clock

import "time"

// Clock abstracts wall time so goal timestamps stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports UTC wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Stepping starts at a fixed instant and moves forward by Step on every call,
// so consecutive records get distinct, ordered timestamps.
type Stepping struct {
	At   time.Time
	Step time.Duration
}

func (s *Stepping) Now() time.Time {
	now := s.At
	s.At = s.At.Add(s.Step)
	return now
}
