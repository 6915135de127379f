package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Chunk is one unit of streamed model output.
type Chunk struct {
	Content string
}

// FallbackMessage is the terminal chunk a provider emits when its stream
// fails mid-generation. The turn still completes with this text instead of
// surfacing a transport error to the caller.
const FallbackMessage = "I apologize, but I encountered an error while processing your request. Please try again later."

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
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

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the full response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// ChatStream sends a chat history to the model and streams the response
	// as chunks. The returned channel is finite and closed by the producer.
	// A failure after the stream has opened is converted into one terminal
	// FallbackMessage chunk rather than surfaced; an error return means the
	// stream never opened. Cancelling ctx stops chunk production.
	ChatStream(ctx context.Context, history []Message, options ...Option) (<-chan Chunk, error)
}

// BuildOptions applies functional options over provider defaults.
func BuildOptions(opts []Option) *Options {
	options := &Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
