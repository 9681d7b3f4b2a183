package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(p Palette, text string) Palette {
	for _, r := range text {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestMatchCommandsByVerb(t *testing.T) {
	t.Parallel()
	got := matchCommands("ex", 5)
	if len(got) != 1 || got[0].hint() != "export [title]" {
		t.Fatalf("expected export hint, got %v", got)
	}
	if got := matchCommands("add buy milk", 5); len(got) != 1 || got[0].hint() != "add <text>" {
		t.Fatalf("expected add hint while typing arguments, got %v", got)
	}
	if got := matchCommands("", 3); len(got) != 3 {
		t.Fatalf("expected limit of 3 hints, got %d", len(got))
	}
	if got := matchCommands("stat now", 5); len(got) != 0 {
		t.Fatalf("expected no hints for a partial verb with arguments, got %v", got)
	}
}

func TestPaletteSubmitSplitsCommand(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open("")
	p = typeInto(p, "  Add  buy milk ")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("expected palette to close on enter")
	}
	raw := cmd()
	msg, ok := raw.(PaletteSubmitMsg)
	if !ok {
		t.Fatalf("expected submit message, got %T", raw)
	}
	if msg.Command != "add" || msg.Arg != "buy milk" {
		t.Fatalf("expected add/%q, got %q/%q", "buy milk", msg.Command, msg.Arg)
	}
}

func TestPaletteShowsHighlightedGoal(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open("stretch")
	if p.Target() != "stretch" {
		t.Fatalf("expected target stretch, got %q", p.Target())
	}
	if view := p.View(); !strings.Contains(view, "▸ stretch") {
		t.Fatalf("expected highlighted goal in view, got:\n%s", view)
	}

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() || p.View() != "" {
		t.Fatalf("expected esc to close the palette")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel message")
	}

	p.Open("")
	if view := p.View(); !strings.Contains(view, "no goal selected") {
		t.Fatalf("expected empty-selection note, got:\n%s", view)
	}
}
