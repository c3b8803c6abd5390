package llm

import (
	"context"
)

// Message is a provider-agnostic chat message.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Option configures optional generation parameters.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // overrides the provider default
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider is the contract for any text-generation backend. One
// round-trip, no streaming; errors surface as-is so callers can classify
// them as upstream failures.
type LLMProvider interface {
	// Chat sends an ordered, role-tagged message list and returns the
	// generated text.
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate is a single-prompt convenience wrapper over Chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
