package ai

import (
	"fmt"
	"net/http"
	"time"

	drepo "SentientToken/internal/domain/repository"
)

// systemMessage is the fixed analyst persona for every generation call.
const systemMessage = "You are an expert cryptocurrency market analyst. " +
	"Provide clear, concise insights about market movements, trends, and predictions. " +
	"Focus on actionable information and explain complex concepts in simple terms. " +
	"Always include confidence levels for predictions."

// Config selects the text-generation backend. Provider, model, and persona
// are fixed at process start.
type Config struct {
	Provider string // "openai" or "claude"
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// New creates a TextGenerator bound to one provider/model pair.
func New(cfg Config) (drepo.TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("text generation not configured: missing API key")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	switch cfg.Provider {
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o"
		}
		return &openaiProvider{apiKey: cfg.APIKey, model: model, client: client}, nil
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeProvider{apiKey: cfg.APIKey, model: model, client: client}, nil
	default:
		return nil, fmt.Errorf("unknown text-generation provider: %q (valid: openai, claude)", cfg.Provider)
	}
}
