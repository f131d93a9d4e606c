package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := map[string]string{
		"gemini-flash":     "gemini-2.0-flash",
		"gemini-pro":       "gemini-2.5-pro",
		"gemini-2.0-flash": "gemini-2.0-flash",
	}
	for in, want := range tests {
		if got := resolveModel(in, geminiModels); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title": map[string]any{"type": "string", "description": "Set title"},
			"questions": map[string]any{
				"type":     "array",
				"minItems": float64(1),
				"maxItems": 20,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"statement": map[string]any{"type": "string"},
						"answer":    map[string]any{"type": "boolean"},
						"level":     map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
					},
					"required": []string{"statement", "answer"},
				},
			},
		},
		"required": []any{"title", "questions"},
	}

	s := geminiSchema(def)
	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s", s.Type)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
	if s.Properties["title"].Description != "Set title" {
		t.Errorf("description = %q", s.Properties["title"].Description)
	}

	qs := s.Properties["questions"]
	if qs.Type != genai.TypeArray {
		t.Fatalf("questions type = %s", qs.Type)
	}
	if qs.MinItems == nil || *qs.MinItems != 1 || qs.MaxItems == nil || *qs.MaxItems != 20 {
		t.Errorf("item bounds = %v..%v", qs.MinItems, qs.MaxItems)
	}

	item := qs.Items
	if item.Properties["answer"].Type != genai.TypeBoolean {
		t.Errorf("answer type = %s", item.Properties["answer"].Type)
	}
	if len(item.Properties["level"].Enum) != 2 {
		t.Errorf("enum = %v", item.Properties["level"].Enum)
	}
	if len(item.Required) != 2 {
		t.Errorf("item required = %v", item.Required)
	}
}

func TestGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	if s := geminiSchema(map[string]any{"type": "null"}); s.Type != genai.TypeString {
		t.Fatalf("type = %s", s.Type)
	}
}

func TestGeminiContents(t *testing.T) {
	out := geminiContents([]Message{
		{Role: RoleUser, Content: "ask"},
		{Role: RoleAssistant, Content: "answer"},
	})
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].Role != string(genai.RoleUser) || out[1].Role != string(genai.RoleModel) {
		t.Errorf("roles = %s, %s", out[0].Role, out[1].Role)
	}
}

func TestGeminiConfig(t *testing.T) {
	cfg := geminiConfig(Request{System: "sys", MaxTokens: 64, Temperature: 0.5, Schema: pairSchema})
	if cfg.MaxOutputTokens != 64 {
		t.Errorf("MaxOutputTokens = %d", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.5 {
		t.Errorf("Temperature = %v", cfg.Temperature)
	}
	if cfg.SystemInstruction == nil {
		t.Error("system instruction missing")
	}
	if cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema == nil {
		t.Error("structured output not requested")
	}

	plain := geminiConfig(Request{})
	if plain.Temperature != nil || plain.ResponseSchema != nil || plain.SystemInstruction != nil {
		t.Error("empty request should leave optional fields unset")
	}
}
