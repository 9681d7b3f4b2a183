package out

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	celebrationout "goalcheer/internal/modules/celebration/port/out"
)

// FrameMsg is one tick of the animation clock.
type FrameMsg struct{ At time.Time }

// TimerMsg fires a callback registered with AfterFunc.
type TimerMsg struct{ ID uint64 }

// TeaScheduler runs the animation clock on the Bubble Tea update loop:
// requests are collected during Update and turned into tick commands by Cmd,
// and the resulting messages are routed back through Handle. Callbacks
// therefore never run concurrently with the rest of the model.
type TeaScheduler struct {
	interval time.Duration
	frames   []celebrationout.FrameFunc
	ticking  bool
	timers   map[uint64]func()
	queued   []queuedTimer
	nextID   uint64
}

type queuedTimer struct {
	id    uint64
	delay time.Duration
}

func NewTeaScheduler(frameRate int) *TeaScheduler {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &TeaScheduler{
		interval: time.Second / time.Duration(frameRate),
		timers:   map[uint64]func(){},
	}
}

func (s *TeaScheduler) Now() time.Time { return time.Now() }

func (s *TeaScheduler) RequestFrame(fn celebrationout.FrameFunc) {
	s.frames = append(s.frames, fn)
}

func (s *TeaScheduler) AfterFunc(d time.Duration, fn func()) {
	s.nextID++
	s.timers[s.nextID] = fn
	s.queued = append(s.queued, queuedTimer{id: s.nextID, delay: d})
}

// Animating reports whether a frame is requested or in flight.
func (s *TeaScheduler) Animating() bool {
	return s.ticking || len(s.frames) > 0
}

// Cmd turns the requests made since the previous call into commands. At most
// one frame tick is in flight at a time.
func (s *TeaScheduler) Cmd() tea.Cmd {
	var cmds []tea.Cmd
	if len(s.frames) > 0 && !s.ticking {
		s.ticking = true
		cmds = append(cmds, tea.Tick(s.interval, func(t time.Time) tea.Msg {
			return FrameMsg{At: t}
		}))
	}
	for _, q := range s.queued {
		id := q.id
		cmds = append(cmds, tea.Tick(q.delay, func(time.Time) tea.Msg {
			return TimerMsg{ID: id}
		}))
	}
	s.queued = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Handle runs the callbacks for a scheduler message and reports whether msg
// belonged to the scheduler.
func (s *TeaScheduler) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case FrameMsg:
		s.ticking = false
		frames := s.frames
		s.frames = nil
		for _, fn := range frames {
			fn(msg.At)
		}
		return true
	case TimerMsg:
		if fn, ok := s.timers[msg.ID]; ok {
			delete(s.timers, msg.ID)
			fn()
		}
		return true
	}
	return false
}
