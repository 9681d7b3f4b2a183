package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goalsdto "goalcheer/internal/modules/goals/dto"
	"goalcheer/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GoalsPort interface {
	List(ctx context.Context) (goalsdto.ListOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries a fresh goal list, either from the initial load or from
// a mutation made by the app model.
type LoadedMsg struct {
	List goalsdto.ListOutput
	Err  error
}

// ─── list item ───────────────────────────────────────────────────────────────

type goalItem struct {
	goal goalsdto.GoalOutput
}

func (i goalItem) Title() string {
	if i.goal.Done {
		return "✔ " + i.goal.Text
	}
	return "○ " + i.goal.Text
}

func (i goalItem) Description() string {
	return "added " + i.goal.CreatedAt.Local().Format("Jan 2 15:04")
}

func (i goalItem) FilterValue() string { return i.goal.Text }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    GoalsPort
	list    list.Model
	summary viewport.Model
	bar     progress.Model
	spinner spinner.Model
	data    goalsdto.ListOutput
	errText string
	loading bool
	width   int
	height  int
}

func New(port GoalsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Rose).BorderForeground(theme.Rose)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Blush).BorderForeground(theme.Rose)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Goals"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.SetStatusBarItemName("goal", "goals")

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Rose)

	return Model{
		port:    port,
		list:    l,
		summary: vp,
		bar:     progress.New(progress.WithGradient(string(theme.Rose), string(theme.Mint))),
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			m.summary.SetContent(m.renderSummary())
			return m, nil
		}
		m.errText = ""
		m.data = msg.List
		items := make([]list.Item, len(msg.List.Goals))
		for i, g := range msg.List.Goals {
			items[i] = goalItem{goal: g}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.summary.SetContent(m.renderSummary())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.summary.SetContent(m.renderSummary())
		}

		var vCmd tea.Cmd
		m.summary, vCmd = m.summary.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading goals…")
	}

	listW := m.width * 6 / 10
	summaryW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	summaryPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(max(summaryW-2, 1)).
		Height(max(m.height-2, 1)).
		Render(m.summary.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, summaryPane)
}

// SelectedGoalID returns the highlighted goal's id, if any.
func (m Model) SelectedGoalID() (string, bool) {
	if item, ok := m.list.SelectedItem().(goalItem); ok {
		return item.goal.ID, true
	}
	return "", false
}

// SelectedGoalText returns the highlighted goal's text.
func (m Model) SelectedGoalText() string {
	if item, ok := m.list.SelectedItem().(goalItem); ok {
		return item.goal.Text
	}
	return ""
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Data is the last goal list shown.
func (m Model) Data() goalsdto.ListOutput { return m.data }

func (m *Model) resize() {
	listW := m.width * 6 / 10
	m.list.SetSize(listW, m.height)
	summaryW := m.width - listW
	m.summary.Width = max(summaryW-4, 1)
	m.summary.Height = max(m.height-4, 1)
	m.bar.Width = max(summaryW-8, 10)
	m.summary.SetContent(m.renderSummary())
}

func (m Model) renderSummary() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progress") + "\n\n")
	if m.errText != "" {
		sb.WriteString(theme.Hot.Render("error: "+m.errText) + "\n")
		return sb.String()
	}
	sb.WriteString(m.bar.ViewAs(float64(m.data.Progress)/100) + "\n\n")
	sb.WriteString(fmt.Sprintf("%d of %d done (%d%%)\n", m.data.Done, m.data.Total, m.data.Progress))
	switch {
	case m.data.Total == 0:
		sb.WriteString("\n" + theme.Muted.Render("No goals yet. Press a to add one.") + "\n")
	case m.data.AllDone:
		sb.WriteString("\n" + theme.Done.UnsetStrikethrough().Render("Everything is done!") + "\n")
	}
	if item, ok := m.list.SelectedItem().(goalItem); ok {
		sb.WriteString("\n" + theme.Muted.Render("selected") + "\n")
		text := item.goal.Text
		if item.goal.Done {
			text = theme.Done.Render(text)
		}
		sb.WriteString(text + "\n")
		sb.WriteString(theme.Muted.Render("id "+item.goal.ID) + "\n")
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		out, err := m.port.List(context.Background())
		return LoadedMsg{List: out, Err: err}
	}
}
