package model

import (
	"context"
	"time"
)

// Request is a single generation request.
type Request struct {
	// Instructions is the system-level framing for the call. Optional.
	Instructions string

	// Prompt is the user-facing input.
	Prompt string

	// MaxTokens caps the reply length. Zero means provider default.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64
}

// TokenUsage reports token consumption for a single call.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the reply to a single generation request.
type Response struct {
	// Text is the generated reply.
	Text string

	// Usage reports token consumption, when the provider exposes it.
	Usage TokenUsage

	// Latency is the wall time of the call.
	Latency time.Duration

	// FinishReason indicates why generation stopped (provider specific).
	FinishReason string
}

// Info describes a model implementation.
type Info struct {
	// Name of the model, e.g. "gpt-4o" or "claude-sonnet-4-20250514".
	Name string

	// Provider identifies the backing service, e.g. "openai".
	Provider string
}

// Model is the generation client every strategy and topology depends on.
type Model interface {
	// Generate produces a reply for the given request. Errors returned by
	// implementations should be classified; see Classify.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns metadata about the model.
	Info() Info
}
