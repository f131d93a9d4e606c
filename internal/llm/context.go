package llm

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// requestTags is what callers attach to a context for request logging.
type requestTags struct {
	purpose string
	fields  []zap.Field
}

func tagsFrom(ctx context.Context) requestTags {
	t, _ := ctx.Value(contextKey{}).(requestTags)
	return t
}

// WithPurpose labels requests made with ctx, e.g. "question-set".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	t := tagsFrom(ctx)
	t.purpose = purpose
	return context.WithValue(ctx, contextKey{}, t)
}

// WithLogFields attaches extra fields to the log entry of every request
// made with ctx.
func WithLogFields(ctx context.Context, fields ...zap.Field) context.Context {
	t := tagsFrom(ctx)
	t.fields = append(t.fields[:len(t.fields):len(t.fields)], fields...)
	return context.WithValue(ctx, contextKey{}, t)
}

// PurposeFrom returns the purpose label of ctx, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p := tagsFrom(ctx).purpose; p != "" {
		return p
	}
	return "unknown"
}
