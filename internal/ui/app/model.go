package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	celebrationadapter "goalcheer/internal/modules/celebration/adapter/out"
	celebrationdto "goalcheer/internal/modules/celebration/dto"
	goalsdto "goalcheer/internal/modules/goals/dto"
	apperrors "goalcheer/internal/platform/errors"
	"goalcheer/internal/ui/components"
	"goalcheer/internal/ui/theme"
	celebrationview "goalcheer/internal/ui/views/celebration"
	goalsview "goalcheer/internal/ui/views/goals"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type goalsPort interface {
	Add(ctx context.Context, text string) (goalsdto.MutationOutput, error)
	Toggle(ctx context.Context, id string) (goalsdto.MutationOutput, error)
	Remove(ctx context.Context, id string) (goalsdto.ListOutput, error)
	ClearAll(ctx context.Context) (goalsdto.ListOutput, error)
	List(ctx context.Context) (goalsdto.ListOutput, error)
	Export(ctx context.Context, title string) (goalsdto.ExportOutput, error)
}

type celebrationPort interface {
	GoalsChanged(ctx context.Context, completed []bool) (celebrationdto.TriggerOutput, error)
	Dismiss(ctx context.Context) (celebrationdto.StatusOutput, error)
	Status(ctx context.Context) (celebrationdto.StatusOutput, error)
}

// Stage is the set of celebration adapters the model drives directly: the
// animation clock, the heart layer it advances each frame, and what it draws.
type Stage struct {
	Scheduler *celebrationadapter.TeaScheduler
	Hearts    *celebrationadapter.HeartLayer
	Surface   *celebrationadapter.CanvasSurface
	Viewport  *celebrationadapter.Viewport
	Overlay   *celebrationadapter.Overlay
}

// ─── async messages ───────────────────────────────────────────────────────────

type goalsChangedMsg struct {
	list   goalsdto.ListOutput
	status string
	err    error
}

type exportedMsg struct {
	out goalsdto.ExportOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Remove  key.Binding
	Clear   key.Binding
	Export  key.Binding
	Dismiss key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add goal")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
		Remove:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Clear:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Dismiss: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "dismiss celebration")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Toggle, k.Remove, k.Clear},
		{k.Export, k.Dismiss},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdding
	modeConfirmClear
)

// Model is the root Bubble Tea model. It owns the goal list view, the add
// prompt, the command palette and the celebration overlay. Every goal
// mutation is followed by a completion check on the celebration port, and
// every update hands pending animation requests back to the runtime.
type Model struct {
	goals       goalsPort
	celebration celebrationPort
	stage       Stage

	goalsView goalsview.Model
	input     textinput.Model
	mode      inputMode

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(goals goalsPort, celebration celebrationPort, stage Stage) Model {
	ti := textinput.New()
	ti.Placeholder = "what do you want to get done?"
	ti.CharLimit = 200
	ti.Prompt = "+ "

	return Model{
		goals:       goals,
		celebration: celebration,
		stage:       stage,
		goalsView:   goalsview.New(goals),
		input:       ti,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.goalsView.Init()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, next.stage.Scheduler.Cmd())
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case celebrationadapter.FrameMsg, celebrationadapter.TimerMsg:
		m.stage.Scheduler.Handle(msg)
		at := time.Now()
		if f, ok := msg.(celebrationadapter.FrameMsg); ok {
			at = f.At
		}
		_, h := m.stage.Viewport.Size()
		m.stage.Hearts.Advance(at, h)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.input.Width = max(m.width-8, 10)
		m.stage.Viewport.SetCells(m.width, max(m.contentHeight()-1, 1))
		var cmd tea.Cmd
		m.goalsView, cmd = m.goalsView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()})
		return m, cmd
	}

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case goalsChangedMsg:
		if msg.err != nil {
			m.status = describeErr(msg.err)
			return m, nil
		}
		m.status = msg.status
		var cmd tea.Cmd
		m.goalsView, cmd = m.goalsView.Update(goalsview.LoadedMsg{List: msg.list})
		m.checkCompletion(msg.list)
		return m, cmd

	case goalsview.LoadedMsg:
		var cmd tea.Cmd
		m.goalsView, cmd = m.goalsView.Update(msg)
		if msg.Err != nil {
			m.status = describeErr(msg.Err)
			return m, cmd
		}
		m.checkCompletion(msg.List)
		return m, cmd

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("exported %d goals to %s", msg.out.Total, msg.out.Path)
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.stage.Overlay.Visible() {
			return m.updateOverlay(msg)
		}
		switch m.mode {
		case modeAdding:
			return m.updateAdding(msg)
		case modeConfirmClear:
			return m.updateConfirmClear(msg)
		}
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.goalsView.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open(m.goalsView.SelectedGoalText())
		case key.Matches(msg, m.keys.Add):
			m.mode = modeAdding
			m.input.SetValue("")
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.Toggle):
			if id, ok := m.goalsView.SelectedGoalID(); ok {
				return m, m.toggleCmd(id)
			}
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			if id, ok := m.goalsView.SelectedGoalID(); ok {
				return m, m.removeCmd(id, m.goalsView.SelectedGoalText())
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			if m.goalsView.Data().Total > 0 {
				m.mode = modeConfirmClear
				m.status = "clear every goal? y/n"
			}
			return m, nil
		case key.Matches(msg, m.keys.Export):
			return m, m.exportCmd("")
		}
	}

	var cmd tea.Cmd
	m.goalsView, cmd = m.goalsView.Update(msg)
	return m, cmd
}

func (m Model) updateOverlay(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		if _, err := m.celebration.Dismiss(context.Background()); err != nil {
			m.status = describeErr(err)
		} else {
			m.status = "celebration dismissed"
		}
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.mode = modeBrowse
		m.input.Blur()
		if text == "" {
			m.status = "goal text is empty"
			return m, nil
		}
		return m, m.addCmd(text)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.mode = modeBrowse
	if msg.String() == "y" || msg.String() == "Y" {
		return m, m.clearCmd()
	}
	m.status = "clear cancelled"
	return m, nil
}

// checkCompletion hands the done flags to the celebration, which starts
// only for a non-empty list with every goal done.
func (m *Model) checkCompletion(list goalsdto.ListOutput) {
	out, err := m.celebration.GoalsChanged(context.Background(), list.Completed)
	if err != nil {
		m.status = describeErr(err)
		return
	}
	if out.Started {
		m.status = "all goals complete!"
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.contentHeight()

	var content string
	switch {
	case m.stage.Overlay.Visible():
		content = renderOverlay(m.stage, m.width, contentH)
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.mode == modeAdding:
		prompt := theme.PaneActive.Width(max(m.width-4, 10)).Render(m.input.View())
		body := m.goalsView.View()
		content = lipgloss.JoinVertical(lipgloss.Left, prompt, body)
		content = lipgloss.NewStyle().MaxHeight(contentH).Render(content)
	default:
		content = m.goalsView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func renderOverlay(stage Stage, width, height int) string {
	banner := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Banner.Render("🎉 All goals complete! 🎉  esc to dismiss"))
	cols, rows := stage.Viewport.Cells()
	rows = min(rows, max(height-1, 0))
	art := celebrationview.Render(stage.Surface.Image(), stage.Hearts.Sprites(time.Now()), cols, rows)
	return lipgloss.JoinVertical(lipgloss.Left, banner, art)
}

func (m Model) renderHeader() string {
	data := m.goalsView.Data()
	title := theme.Title.Render("goalcheer")
	count := theme.Muted.Render(fmt.Sprintf("  %d/%d done", data.Done, data.Total))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(title+count) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.mode == modeConfirmClear {
		left = theme.Hot.Render(left)
	}
	right := theme.Muted.Render("?:help  a:add  space:toggle  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) contentHeight() int {
	return max(m.height-4, 1)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(msg components.PaletteSubmitMsg) (Model, tea.Cmd) {
	if msg.Command == "" {
		return m, nil
	}
	rest := msg.Arg
	selected, hasSelection := m.goalsView.SelectedGoalID()

	switch msg.Command {
	case "add":
		if rest == "" {
			m.status = "usage: add <text>"
			return m, nil
		}
		return m, m.addCmd(rest)

	case "toggle":
		if !hasSelection {
			m.status = "no goal selected"
			return m, nil
		}
		return m, m.toggleCmd(selected)

	case "remove":
		if !hasSelection {
			m.status = "no goal selected"
			return m, nil
		}
		return m, m.removeCmd(selected, m.goalsView.SelectedGoalText())

	case "clear":
		return m, m.clearCmd()

	case "export":
		return m, m.exportCmd(rest)

	case "dismiss":
		if _, err := m.celebration.Dismiss(context.Background()); err != nil {
			m.status = describeErr(err)
		}
		return m, nil

	case "status":
		st, err := m.celebration.Status(context.Background())
		if err != nil {
			m.status = describeErr(err)
			return m, nil
		}
		m.status = fmt.Sprintf("celebration %s/%s, %d particles, %d hearts", st.State, st.Phase, st.Particles, st.Hearts)
		return m, nil

	default:
		m.status = "unknown command: " + msg.Command
	}
	return m, nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) addCmd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.goals.Add(context.Background(), text)
		return goalsChangedMsg{list: out.List, status: "added: " + out.Goal.Text, err: err}
	}
}

func (m Model) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.goals.Toggle(context.Background(), id)
		status := "reopened: " + out.Goal.Text
		if out.Goal.Done {
			status = "done: " + out.Goal.Text
		}
		return goalsChangedMsg{list: out.List, status: status, err: err}
	}
}

func (m Model) removeCmd(id, text string) tea.Cmd {
	return func() tea.Msg {
		list, err := m.goals.Remove(context.Background(), id)
		return goalsChangedMsg{list: list, status: "removed: " + text, err: err}
	}
}

func (m Model) clearCmd() tea.Cmd {
	return func() tea.Msg {
		list, err := m.goals.ClearAll(context.Background())
		return goalsChangedMsg{list: list, status: "cleared all goals", err: err}
	}
}

func (m Model) exportCmd(title string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.goals.Export(context.Background(), title)
		return exportedMsg{out: out, err: err}
	}
}

func describeErr(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		return "invalid input: " + err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return "not found: " + err.Error()
	default:
		return "error: " + err.Error()
	}
}
