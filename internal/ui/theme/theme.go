package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Rose     = lipgloss.Color("#ff6b83")
	Blush    = lipgloss.Color("#ffb6d9")
	Mint     = lipgloss.Color("#8de0a6")
	Honey    = lipgloss.Color("#ffd166")

	// BaseRGB is Base as components, used when blending the overlay raster.
	BaseRGB = [3]uint8{0x1e, 0x1e, 0x2e}

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Rose)

	Title  = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext0)
	Hot    = lipgloss.NewStyle().Foreground(Honey).Bold(true)
	Done   = lipgloss.NewStyle().Foreground(Mint).Strikethrough(true)
	Banner = lipgloss.NewStyle().Foreground(Base).Background(Blush).Bold(true).Padding(0, 2)
)
