package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

func TestHintsFor(t *testing.T) {
	enter := key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Submit"))
	off := key.NewBinding(key.WithKeys("n"), key.WithHelp("N", "Next"), key.WithDisabled())

	hints := HintsFor(enter, off)
	if len(hints) != 1 {
		t.Fatalf("expected 1 hint, got %d", len(hints))
	}
	if hints[0] != (KeyHint{Key: "Enter", Description: "Submit"}) {
		t.Errorf("hint = %+v", hints[0])
	}
}

func TestFrame_Render(t *testing.T) {
	f := Frame{
		Title:  "Warm-up",
		Status: "✓ 2  ✗ 1",
		Hints:  []KeyHint{{Key: "q", Description: "Quit"}},
	}

	var bodyW, bodyH int
	out := f.Render(80, 24, func(w, h int) string {
		bodyW, bodyH = w, h
		return "body"
	})

	if lipgloss.Height(out) != 24 {
		t.Errorf("frame height = %d, want 24", lipgloss.Height(out))
	}
	for _, want := range []string{"Quizzy", "Warm-up", "✓ 2  ✗ 1", "body", "Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	chrome := lipgloss.Height(f.header(80)) + lipgloss.Height(f.footer(80))
	if bodyW != 80 || bodyH != 24-chrome {
		t.Errorf("body got %dx%d, want 80x%d", bodyW, bodyH, 24-chrome)
	}
}

func TestFrame_TooSmall(t *testing.T) {
	called := false
	out := Frame{}.Render(79, 30, func(int, int) string {
		called = true
		return ""
	})
	if called {
		t.Error("body should not be drawn in a small terminal")
	}
	if !strings.Contains(out, "Terminal too small!") || !strings.Contains(out, "Current: 79 x 30") {
		t.Errorf("unexpected notice: %q", out)
	}
	if strings.Contains(Frame{}.Render(80, 24, func(int, int) string { return "" }), "too small") {
		t.Error("80x24 is large enough")
	}
}
