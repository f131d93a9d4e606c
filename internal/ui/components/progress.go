package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Current int
	Total   int
	Width   int
}

// NewProgressBar creates a progress bar for current of total steps.
func NewProgressBar(label string, current, total, width int) ProgressBar {
	return ProgressBar{Label: label, Current: current, Total: total, Width: width}
}

// Percent returns the filled fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Current)/float64(p.Total), 0), 1)
}

// View renders the progress bar followed by "current/total".
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Fg).Render(p.Label) + "  "
	}

	counter := fmt.Sprintf("  %d/%d", p.Current, p.Total)
	barWidth := p.Width - lipgloss.Width(result) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.Muted).Render(counter)
}
