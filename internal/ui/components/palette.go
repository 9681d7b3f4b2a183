package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"goalcheer/internal/ui/theme"
)

// PaletteSubmitMsg carries a confirmed command split into its verb and the
// trimmed remainder of the line.
type PaletteSubmitMsg struct {
	Command string
	Arg     string
}

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Rose).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	targetStyle   = lipgloss.NewStyle().Foreground(theme.Honey)
	hintStyle     = lipgloss.NewStyle().Foreground(theme.Subtext0)
	disabledStyle = lipgloss.NewStyle().Foreground(theme.Surface1)
)

type paletteCommand struct {
	name   string
	usage  string
	target bool // acts on the highlighted goal
}

// Verbs must stay in sync with app.Model.executePalette.
var paletteCommands = []paletteCommand{
	{name: "add", usage: "<text>"},
	{name: "toggle", target: true},
	{name: "remove", target: true},
	{name: "clear"},
	{name: "export", usage: "[title]"},
	{name: "dismiss"},
	{name: "status"},
}

func (c paletteCommand) hint() string {
	if c.usage == "" {
		return c.name
	}
	return c.name + " " + c.usage
}

// Palette is the ":" command line. It remembers which goal was highlighted
// when it opened so goal verbs show what they will act on.
type Palette struct {
	input  textinput.Model
	open   bool
	width  int
	target string
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "add, toggle, export…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

func (p Palette) Visible() bool  { return p.open }
func (p Palette) Target() string { return p.target }

// Open shows the palette aimed at target, the highlighted goal's text or ""
// when the list is empty, and returns the focus command.
func (p *Palette) Open(target string) tea.Cmd {
	p.open = true
	p.target = target
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.open {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			command, arg := splitCommand(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Command: command, Arg: arg} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) close() {
	p.open = false
	p.input.Blur()
}

func (p Palette) View() string {
	if !p.open {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Goals") + "\n")
	if p.target != "" {
		sb.WriteString(hintStyle.Render("on ") + targetStyle.Render("▸ "+p.target) + "\n")
	} else {
		sb.WriteString(hintStyle.Render("no goal selected") + "\n")
	}
	sb.WriteString(": " + p.input.View() + "\n")

	matching := matchCommands(p.input.Value(), 5)
	if len(matching) > 0 {
		sb.WriteString("\n")
		for _, c := range matching {
			style := hintStyle
			if c.target && p.target == "" {
				style = disabledStyle
			}
			sb.WriteString(style.Render("  "+c.hint()) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}

// splitCommand lowercases the first word and trims what follows it.
func splitCommand(input string) (string, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ""
	}
	verb, rest, _ := strings.Cut(input, " ")
	return strings.ToLower(verb), strings.TrimSpace(rest)
}

// matchCommands returns up to limit commands whose verb starts with what
// has been typed, or the typed verb once arguments follow it.
func matchCommands(input string, limit int) []paletteCommand {
	verb, _ := splitCommand(input)
	typingArgs := strings.Contains(strings.TrimSpace(input), " ")
	var matching []paletteCommand
	for _, c := range paletteCommands {
		ok := strings.HasPrefix(c.name, verb)
		if typingArgs {
			ok = c.name == verb
		}
		if ok {
			matching = append(matching, c)
			if len(matching) == limit {
				break
			}
		}
	}
	return matching
}
