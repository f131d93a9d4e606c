package questiongen

import "github.com/abhisek/quizzy/internal/llm"

// SetSchema defines the JSON schema for generated question sets.
var SetSchema = &llm.Schema{
	Name:        "true-false-set",
	Description: "A titled list of true/false statements with the correct answer for each",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short title for the set, at most 60 characters",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"statement": map[string]any{
							"type":        "string",
							"description": "A single declarative sentence that is either true or false",
						},
						"answer": map[string]any{
							"type":        "boolean",
							"description": "true when the statement is correct",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining why, shown after answering",
						},
					},
					"required":             []any{"statement", "answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}
