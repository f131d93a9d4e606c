package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write true/false quiz statements.

Rules:
- Every statement is a single declarative sentence that is unambiguously true or unambiguously false.
- Avoid trick wording, double negatives and opinions.
- Mix true and false statements; do not follow a predictable pattern.
- Keep statements under 200 characters and explanations to one or two sentences.
- Produce exactly the requested number of statements.
- Do not repeat any statement from the "already used" list.`

// buildUserMessage constructs the user message for one request. feedback
// is the rejection reason of the previous attempt, if any.
func buildUserMessage(input Input, cfg Config, feedback string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Number of statements: %d\n", input.Count)
	if input.Audience != "" {
		fmt.Fprintf(&b, "Audience: %s\n", input.Audience)
	}

	b.WriteString("\nAlready used:\n")
	b.WriteString(buildAvoid(input.Avoid, cfg.MaxAvoid))

	if feedback != "" {
		b.WriteString("\n\nYour previous answer was rejected: ")
		b.WriteString(feedback)
	}

	return b.String()
}
