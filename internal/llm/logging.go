package llm

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider is a decorator that records every LLM request as a
// structured log entry.
type LoggingProvider struct {
	inner    Provider
	provider string
	log      *zap.Logger
}

// WithLogging wraps a Provider with request logging. provider is the
// configured provider name and is attached to every entry.
func WithLogging(p Provider, provider string, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, provider: provider, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("provider", l.provider),
		zap.String("model", l.inner.ModelID()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Duration("latency", time.Since(start)),
		zap.Int("messages", len(req.Messages)),
	}
	fields = append(fields, tagsFrom(ctx).fields...)
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}

	if resp != nil {
		fields = append(fields,
			zap.String("served_model", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
			zap.String("stop_reason", resp.StopReason),
		)
		if c := LookupCost(resp.Model); c != nil {
			fields = append(fields, zap.Float64("cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			fields = append(fields, zap.Stringer("error_kind", e.Kind))
		}
		l.log.Warn("llm request failed", append(fields, zap.Error(err))...)
		return resp, err
	}
	l.log.Info("llm request", fields...)
	if ce := l.log.Check(zap.DebugLevel, "llm response body"); ce != nil {
		ce.Write(zap.ByteString("content", resp.Content))
	}
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
