package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	machine "github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/ui/components"
	"github.com/abhisek/quizzy/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	state := s.snap.State
	qctx := s.snap.Context

	var b strings.Builder

	// Progress counts answered questions, so it fills on the last result.
	answered := qctx.CorrectCount + qctx.IncorrectCount
	bar := components.NewProgressBar("Progress", answered, max(qctx.QuestionCount(), s.provider.Len()), min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.Feedback(state)).Bold(true).Render(moodLine(state)))
	b.WriteString("\n\n")

	switch {
	case state == machine.Uninitialized:
		b.WriteString(center.Foreground(theme.Fg).Render(s.Title()))
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.Muted).
			Render(pluralize(s.provider.Len(), "question", "questions")))
		b.WriteString("\n\n")

	case state.IsFinal():
		sum := s.snap.Summary()
		b.WriteString(center.Foreground(theme.Fg).
			Render(pluralize(sum.Correct, "correct answer", "correct answers")))
		b.WriteString("\n\n")

	default:
		s.renderQuestion(&b, width)
	}

	if s.loadErr != "" {
		b.WriteString(theme.Warning.Width(width).Align(lipgloss.Center).Render(s.loadErr))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderButtons()))
	return b.String()
}

func (s *QuizScreen) renderQuestion(b *strings.Builder, width int) {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	q, err := s.provider.At(s.snap.Context.CurrentQuestionIndex)
	if err != nil {
		return
	}

	b.WriteString(center.Foreground(theme.Muted).Render(
		questionLabel(s.snap.Context.CurrentQuestionIndex, s.snap.Context.QuestionCount())))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Fg).Bold(true).Render(q.Text))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n\n")

	if msg := s.snap.Context.ErrorMessage; msg != "" {
		b.WriteString(theme.Warning.Width(width).Align(lipgloss.Center).Render(msg))
		b.WriteString("\n\n")
	}

	if s.snap.State.IsResult() && q.Explanation != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(q.Explanation))
		b.WriteString("\n\n")
	}
}

func (s *QuizScreen) renderButtons() string {
	active := actionLabel(s.snap.State)
	labels := []string{"START", "ANSWER", "NEXT"}
	buttons := make([]components.Button, 0, len(labels))
	for _, l := range labels {
		buttons = append(buttons, components.NewButton(l, l == active))
	}
	return components.ButtonRow(buttons...)
}

func moodLine(s machine.State) string {
	switch {
	case s == machine.Uninitialized:
		return "Ready when you are"
	case s == machine.Correct:
		return "Correct!"
	case s == machine.Incorrect:
		return "Not quite"
	case s.IsFinal():
		return "All done"
	default:
		return "Thinking…"
	}
}

func questionLabel(i, n int) string {
	return fmt.Sprintf("Question %d of %d", i+1, n)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
