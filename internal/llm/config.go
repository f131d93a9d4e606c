package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is prepended to every variable ConfigFromEnv reads.
const EnvPrefix = "QUIZZY_"

// Config selects a provider and carries the settings of every provider
// so switching only needs Provider changed.
type Config struct {
	Provider string // anthropic, openai, gemini, openrouter or mock

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenAI-compatible servers
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // vendor/model
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig uses the cheap model of each vendor.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: time.Minute,
	}
}

// discoveryOrder is the order DiscoverConfig probes vendor key variables.
var discoveryOrder = []string{"gemini", "openai", "anthropic", "openrouter"}

// apiKey returns the key field of the named provider. ok is false for
// providers without a key, including unknown ones.
func (c *Config) apiKey(provider string) (key *string, ok bool) {
	switch provider {
	case "anthropic":
		return &c.Anthropic.APIKey, true
	case "openai":
		return &c.OpenAI.APIKey, true
	case "gemini":
		return &c.Gemini.APIKey, true
	case "openrouter":
		return &c.OpenRouter.APIKey, true
	}
	return nil, false
}

// stringVars maps variable names, without EnvPrefix, to the fields they set.
func (c *Config) stringVars() map[string]*string {
	return map[string]*string{
		"LLM_PROVIDER":        &c.Provider,
		"ANTHROPIC_API_KEY":   &c.Anthropic.APIKey,
		"ANTHROPIC_MODEL":     &c.Anthropic.Model,
		"OPENAI_API_KEY":      &c.OpenAI.APIKey,
		"OPENAI_MODEL":        &c.OpenAI.Model,
		"OPENAI_BASE_URL":     &c.OpenAI.BaseURL,
		"GEMINI_API_KEY":      &c.Gemini.APIKey,
		"GEMINI_MODEL":        &c.Gemini.Model,
		"OPENROUTER_API_KEY":  &c.OpenRouter.APIKey,
		"OPENROUTER_MODEL":    &c.OpenRouter.Model,
		"OPENROUTER_BASE_URL": &c.OpenRouter.BaseURL,
	}
}

// ConfigFromEnv overlays QUIZZY_* variables on DefaultConfig. Malformed
// numeric values are ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for name, dst := range cfg.stringVars() {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}
	if d, err := time.ParseDuration(os.Getenv(EnvPrefix + "LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv(EnvPrefix + "LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	return cfg
}

// DiscoverConfig looks for the vendors' own <VENDOR>_API_KEY variables
// and selects the first provider found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, name := range discoveryOrder {
		v := os.Getenv(strings.ToUpper(name) + "_API_KEY")
		if v == "" {
			continue
		}
		key, _ := cfg.apiKey(name)
		*key = v
		cfg.Provider = name
		return cfg, true
	}
	return Config{}, false
}

// Resolve prefers an explicit QUIZZY_* configuration. Without
// QUIZZY_LLM_PROVIDER it falls back to DiscoverConfig; with it, a missing
// key is an error rather than a silent switch of vendor.
func Resolve() (Config, error) {
	cfg := ConfigFromEnv()
	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	if os.Getenv(EnvPrefix+"LLM_PROVIDER") != "" {
		return Config{}, err
	}
	found, ok := DiscoverConfig()
	if !ok {
		return Config{}, fmt.Errorf("no LLM provider configured: set %sLLM_PROVIDER and its API key", EnvPrefix)
	}
	found.Timeout = cfg.Timeout
	found.Retry = cfg.Retry
	return found, nil
}

// Validate checks that the selected provider exists and has a key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	key, ok := c.apiKey(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			EnvPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
