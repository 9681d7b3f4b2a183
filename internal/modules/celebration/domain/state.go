package domain

import "time"

const (
	FallDuration = 3200 * time.Millisecond
	FadeDuration = 500 * time.Millisecond
)

// State is the overlay state machine.
type State int

const (
	Idle State = iota
	Celebrating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Celebrating:
		return "celebrating"
	}
	return "unknown"
}

// Phase tracks the particle animation within one celebration.
type Phase int

const (
	Falling Phase = iota
	Fading
	Done
)

func (p Phase) String() string {
	switch p {
	case Falling:
		return "falling"
	case Fading:
		return "fading"
	case Done:
		return "done"
	}
	return "unknown"
}

// ShouldCelebrate holds only for a non-empty list where every goal is done.
func ShouldCelebrate(completed []bool) bool {
	if len(completed) == 0 {
		return false
	}
	for _, done := range completed {
		if !done {
			return false
		}
	}
	return true
}

// FadeAlpha is the opacity elapsed into the fade, clamped to [0, 1].
func FadeAlpha(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(FadeDuration)
	if p > 1 {
		p = 1
	}
	return 1 - p
}
