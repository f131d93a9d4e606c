package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/router"
	"github.com/abhisek/quizzy/internal/screen"
	"github.com/abhisek/quizzy/internal/ui/layout"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	summary quiz.Summary
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. restart builds the screen for a new
// attempt; when nil, Enter quits like Esc.
func New(summary quiz.Summary, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.restart == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.restart == nil {
				return s, tea.Quit
			}
			next := s.restart()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		case "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Brand).Bold(true).Render("Quiz complete!"))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Incorrect: %d",
		sum.TotalQuestions, sum.Correct, sum.Incorrect)
	b.WriteString(center.Foreground(theme.Fg).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Outline).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(accuracyColor(sum.Accuracy)).Bold(true).
		Render("Accuracy: " + accuracy))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Muted).Render(verdict(sum)))
	b.WriteString("\n")

	return b.String()
}

// accuracyColor grades the score: full marks green, at least half peach,
// anything lower orange-red.
func accuracyColor(acc float64) color.Color {
	switch {
	case acc >= 1:
		return theme.Good
	case acc >= 0.5:
		return theme.Highlight
	default:
		return theme.Bad
	}
}

func verdict(sum quiz.Summary) string {
	switch {
	case sum.TotalQuestions == 0:
		return "No questions were asked."
	case sum.Correct == sum.TotalQuestions:
		return "A perfect round."
	case sum.Correct == 0:
		return "Better luck next time."
	default:
		return fmt.Sprintf("%d to go for a perfect round.", sum.Incorrect)
	}
}
