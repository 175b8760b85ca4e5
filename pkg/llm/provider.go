package llm

import (
	"context"
)

// Message is a single turn of a conversation, provider-agnostic.
// Role is one of "system", "user" or "assistant"; providers translate
// these to their own wire roles.
type Message struct {
	Role    string
	Content string
}

// LLMProvider is the contract the chat service programs against. A
// backend only has to turn a history into one reply.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate is the single-prompt shorthand for Chat.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // overrides the provider's default model
}

type Option func(*Options)

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
