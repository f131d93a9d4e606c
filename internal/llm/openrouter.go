package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openrouterName           = "openrouter"
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// Attribution headers shown on the OpenRouter dashboard.
	openRouterReferer = "https://github.com/abhisek/quizzy"
	openRouterTitle   = "Quizzy"
)

// NewOpenRouterProvider creates a provider targeting the OpenRouter API,
// which is OpenAI-compatible. Model IDs ("vendor/model") pass through
// unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = defaultOpenRouterBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = &http.Client{Transport: &headerTransport{headers: map[string]string{
		"HTTP-Referer": openRouterReferer,
		"X-Title":      openRouterTitle,
	}}}

	return newOpenAICompatible(openrouterName, config, cfg.Model), nil
}
