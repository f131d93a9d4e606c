// Package llm talks to hosted language models. Every backend implements
// Provider; retry, logging and timeouts are layered on as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one request to a model. When the request carries a
// Schema the returned Content has already been checked against it.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

type Request struct {
	System   string
	Messages []Message

	// Schema asks for structured output. Nil means free text.
	Schema *Schema

	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Schema is a named JSON Schema. Name is kebab-case and doubles as the
// cache key for the compiled validator.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that served the request, may differ from ModelID
	StopReason string // StopEnd or StopMaxTokens
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish turns a provider's raw output into a Response. Structured
// requests cut off at MaxTokens fail as KindTruncated since the JSON is
// incomplete.
func finish(provider string, req Request, raw []byte, usage Usage, model, stop string) (*Response, error) {
	if stop == StopMaxTokens && req.Schema != nil {
		return nil, &Error{Kind: KindTruncated, Provider: provider, Content: raw}
	}
	content, err := checkContent(provider, req.Schema, raw)
	if err != nil {
		return nil, err
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so direct IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
