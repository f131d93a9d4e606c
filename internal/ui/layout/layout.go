package layout

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HintsFor builds footer hints from the enabled key bindings.
func HintsFor(bindings ...key.Binding) []KeyHint {
	hints := make([]KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// Frame is the chrome drawn around the active screen: a header bar with
// the product name, screen title and status, and a footer of key hints.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
}

var bar = lipgloss.NewStyle().
	Background(theme.Surface).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Outline)

// Render draws the frame at width x height. body is called with the space
// left between header and footer. Below MinWidth x MinHeight a resize
// notice is drawn instead.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	if width < MinWidth || height < MinHeight {
		return tooSmall(width, height)
	}

	header := f.header(width)
	footer := f.footer(width)
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().Width(width).Height(h).Render(body(width, h))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (f Frame) header(width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Brand).Bold(true).Render("  Quizzy")
	title := lipgloss.NewStyle().Foreground(theme.Fg).Render(f.Title)
	status := lipgloss.NewStyle().Foreground(theme.Highlight).Render(f.Status)

	// Equal side columns keep the title centred whatever the status width.
	inner := max(width-4, 0)
	side := max(lipgloss.Width(brand), lipgloss.Width(status)+1)
	line := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand) +
		lipgloss.PlaceHorizontal(max(inner-2*side, 0), lipgloss.Center, title) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, status)

	return bar.Width(width).Render(line)
}

func (f Frame) footer(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Fg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Muted)

	parts := make([]string, len(f.Hints))
	for i, h := range f.Hints {
		parts[i] = keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

func tooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Fg).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}
