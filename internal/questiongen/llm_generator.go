package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/quizzy/internal/llm"
	"github.com/abhisek/quizzy/internal/logger"
	"github.com/abhisek/quizzy/internal/questions"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// Option configures an LLMGenerator.
type Option func(*LLMGenerator)

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(g *LLMGenerator) {
		if l != nil {
			g.log = l.Named(logger.ComponentGenerator)
		}
	}
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, opts ...Option) *LLMGenerator {
	g := &LLMGenerator{provider: provider, config: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// setOutput is the raw LLM response before validation.
type setOutput struct {
	Title     string `json:"title"`
	Questions []struct {
		Statement   string `json:"statement"`
		Answer      bool   `json:"answer"`
		Explanation string `json:"explanation"`
	} `json:"questions"`
}

// Generate produces a validated set for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*questions.Set, error) {
	if strings.TrimSpace(input.Topic) == "" {
		return nil, fmt.Errorf("%w: topic is empty", ErrInvalidInput)
	}
	if input.Count < 1 || input.Count > MaxCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d, got %d", ErrInvalidInput, MaxCount, input.Count)
	}

	ctx = llm.WithPurpose(ctx, "question-set")
	ctx = llm.WithLogFields(ctx, zap.String("topic", input.Topic), zap.Int("count", input.Count))

	attempts := max(g.config.MaxAttempts, 1)
	feedback := ""
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		set, err := g.generateOnce(ctx, input, feedback)
		if err == nil {
			return set, nil
		}
		lastErr = err

		var valErr *ValidationError
		if !errors.As(err, &valErr) || !valErr.Retryable {
			return nil, err
		}
		g.log.Info("generated set rejected",
			zap.Int("attempt", attempt),
			zap.String("validator", valErr.Validator),
			zap.String("reason", valErr.Message),
		)
		feedback = valErr.Message
	}

	return nil, lastErr
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input Input, feedback string) (*questions.Set, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config, feedback)},
		},
		Schema:      SetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	set := &questions.Set{Title: strings.TrimSpace(raw.Title)}
	if set.Title == "" {
		set.Title = input.Topic
	}
	for _, q := range raw.Questions {
		set.Questions = append(set.Questions, questions.Question{
			Text:        strings.TrimSpace(q.Statement),
			Answer:      q.Answer,
			Explanation: strings.TrimSpace(q.Explanation),
		})
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(set, input); verr != nil {
			return nil, verr
		}
	}

	return set, nil
}
