package out

import (
	"time"

	celebrationout "goalcheer/internal/modules/celebration/port/out"
)

// VirtualScheduler is a deterministic animation clock. Frames land on a fixed
// grid (epoch + k*interval) like display refreshes; timers fire at their exact
// due time. Nothing runs until Advance is called.
type VirtualScheduler struct {
	epoch     time.Time
	now       time.Time
	lastFrame time.Time
	interval  time.Duration
	frames    []celebrationout.FrameFunc
	timers    []virtualTimer
	seq       uint64
}

type virtualTimer struct {
	at  time.Time
	seq uint64
	fn  func()
}

func NewVirtualScheduler(start time.Time, frameInterval time.Duration) *VirtualScheduler {
	if frameInterval <= 0 {
		frameInterval = time.Second / 60
	}
	return &VirtualScheduler{epoch: start, now: start, lastFrame: start, interval: frameInterval}
}

func (s *VirtualScheduler) Now() time.Time { return s.now }

func (s *VirtualScheduler) RequestFrame(fn celebrationout.FrameFunc) {
	s.frames = append(s.frames, fn)
}

func (s *VirtualScheduler) AfterFunc(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.timers = append(s.timers, virtualTimer{at: s.now.Add(d), seq: s.seq, fn: fn})
}

// Pending reports whether any frame or timer is waiting.
func (s *VirtualScheduler) Pending() bool {
	return len(s.frames) > 0 || len(s.timers) > 0
}

// Advance runs, in time order, every callback due up to now+d and leaves the
// clock at now+d. Timers due at the same instant as a frame run first.
func (s *VirtualScheduler) Advance(d time.Duration) {
	target := s.now.Add(d)
	for {
		timerIdx := s.earliestTimer()
		frameAt, hasFrame := s.nextFrameAt()

		switch {
		case timerIdx >= 0 && !s.timers[timerIdx].at.After(target) &&
			(!hasFrame || !s.timers[timerIdx].at.After(frameAt)):
			t := s.timers[timerIdx]
			s.timers = append(s.timers[:timerIdx], s.timers[timerIdx+1:]...)
			s.now = t.at
			t.fn()
		case hasFrame && !frameAt.After(target):
			s.now = frameAt
			s.lastFrame = frameAt
			frames := s.frames
			s.frames = nil
			for _, fn := range frames {
				fn(frameAt)
			}
		default:
			s.now = target
			return
		}
	}
}

// RunUntilIdle advances frame by frame until nothing is pending or limit
// has elapsed, and returns the time spent.
func (s *VirtualScheduler) RunUntilIdle(limit time.Duration) time.Duration {
	start := s.now
	for s.Pending() && s.now.Sub(start) < limit {
		s.Advance(s.interval)
	}
	return s.now.Sub(start)
}

func (s *VirtualScheduler) earliestTimer() int {
	idx := -1
	for i, t := range s.timers {
		if idx < 0 || t.at.Before(s.timers[idx].at) || (t.at.Equal(s.timers[idx].at) && t.seq < s.timers[idx].seq) {
			idx = i
		}
	}
	return idx
}

// nextFrameAt is the first grid instant at or after now that has not yet
// carried a frame. A timer firing on a grid instant leaves that frame due.
func (s *VirtualScheduler) nextFrameAt() (time.Time, bool) {
	if len(s.frames) == 0 {
		return time.Time{}, false
	}
	elapsed := s.now.Sub(s.epoch)
	ticks := elapsed / s.interval
	if elapsed%s.interval != 0 {
		ticks++
	}
	at := s.epoch.Add(ticks * s.interval)
	if !at.After(s.lastFrame) {
		at = s.lastFrame.Add(s.interval)
	}
	return at, true
}
