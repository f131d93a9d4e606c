package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestMockProvider_ServesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockJSON(map[string]int{"b": 2}),
	)

	first, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"a":1}` {
		t.Fatalf("content = %s", first.Content)
	}
	if first.Usage.TotalTokens != 15 {
		t.Errorf("TotalTokens = %d, want 15 (filled from parts)", first.Usage.TotalTokens)
	}
	if first.StopReason != StopEnd {
		t.Errorf("StopReason = %q, want %q", first.StopReason, StopEnd)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"b":2}` {
		t.Fatalf("content = %s", second.Content)
	}
}

func TestMockProvider_Exhausted(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	if !IsKind(err, KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if !errors.Is(err, errMockExhausted) {
		t.Error("expected the exhausted sentinel in the chain")
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockJSON(struct{}{}))
	mock.AddResponse(MockJSON(struct{}{}))

	for _, sys := range []string{"one", "two"} {
		if _, err := mock.Generate(context.Background(), Request{System: sys}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if mock.CallCount() != 2 {
		t.Fatalf("CallCount = %d, want 2", mock.CallCount())
	}
	if mock.Calls[1].System != "two" {
		t.Errorf("second call system = %q", mock.Calls[1].System)
	}
}

func TestMockProvider_ChecksSchema(t *testing.T) {
	schema := &Schema{Name: "mock-check", Definition: map[string]any{
		"type":     "object",
		"required": []any{"n"},
	}}
	mock := NewMockProvider(MockJSON(map[string]int{"m": 1}))

	_, err := mock.Generate(context.Background(), Request{Schema: schema})
	if !IsKind(err, KindInvalidResponse) {
		t.Fatalf("expected invalid response, got %v", err)
	}
}

func TestMockProvider_TruncatedStructuredOutput(t *testing.T) {
	schema := &Schema{Name: "mock-trunc", Definition: map[string]any{"type": "object"}}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":`), Stop: StopMaxTokens},
		MockResponse{Content: json.RawMessage(`plain text`), Stop: StopMaxTokens},
	)

	_, err := mock.Generate(context.Background(), Request{Schema: schema})
	if !IsKind(err, KindTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}

	// Unstructured output is returned as-is even when cut off.
	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != StopMaxTokens {
		t.Errorf("StopReason = %q", resp.StopReason)
	}
}

func TestRequestTags(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("PurposeFrom = %q, want unknown", p)
	}

	ctx = WithPurpose(ctx, "question-set")
	base := WithLogFields(ctx, zap.String("topic", "oceans"))
	a := WithLogFields(base, zap.Int("count", 5))
	b := WithLogFields(base, zap.Int("count", 9))

	if PurposeFrom(a) != "question-set" {
		t.Errorf("purpose lost after WithLogFields")
	}
	if n := len(tagsFrom(base).fields); n != 1 {
		t.Errorf("base fields = %d, want 1", n)
	}
	if got := tagsFrom(a).fields[1].Integer; got != 5 {
		t.Errorf("sibling contexts share fields: a.count = %d", got)
	}
	if got := tagsFrom(b).fields[1].Integer; got != 9 {
		t.Errorf("b.count = %d, want 9", got)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name   string
		models map[string]string
		want   string
	}{
		{"claude-haiku", anthropicModels, "claude-haiku-4-5-20251001"},
		{"gemini-flash", geminiModels, "gemini-2.0-flash"},
		{"gpt-4o-mini", openaiModels, "gpt-4o-mini"},
		{"some-direct-id", geminiModels, "some-direct-id"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.name, tt.models); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
