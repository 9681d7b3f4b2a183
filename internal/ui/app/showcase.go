package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	celebrationadapter "goalcheer/internal/modules/celebration/adapter/out"
)

// Showcase plays the celebration once, full screen, and quits when it is
// over or dismissed.
type Showcase struct {
	celebration celebrationPort
	stage       Stage
	started     bool
	width       int
	height      int
}

func NewShowcase(celebration celebrationPort, stage Stage) Showcase {
	return Showcase{celebration: celebration, stage: stage}
}

func (s Showcase) Init() tea.Cmd { return nil }

func (s Showcase) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case celebrationadapter.FrameMsg, celebrationadapter.TimerMsg:
		s.stage.Scheduler.Handle(msg)
		at := time.Now()
		if f, ok := msg.(celebrationadapter.FrameMsg); ok {
			at = f.At
		}
		_, h := s.stage.Viewport.Size()
		s.stage.Hearts.Advance(at, h)
		if s.started && !s.stage.Overlay.Visible() {
			return s, tea.Quit
		}

	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		s.stage.Viewport.SetCells(msg.Width, max(msg.Height-1, 1))
		if !s.started {
			s.started = true
			if _, err := s.celebration.GoalsChanged(context.Background(), []bool{true}); err != nil {
				return s, tea.Quit
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "esc", "enter":
			_, _ = s.celebration.Dismiss(context.Background())
			return s, tea.Quit
		}
	}
	return s, s.stage.Scheduler.Cmd()
}

func (s Showcase) View() string {
	if s.stage.Overlay.Hidden() {
		return ""
	}
	return renderOverlay(s.stage, s.width, s.height)
}
