package llm

import (
	"context"
	"errors"
)

// ErrGenerationFailure marks transport errors and non-success responses
// from the generation model.
var ErrGenerationFailure = errors.New("failed to generate text")

// ErrDescriptionFailure marks failures of the vision-to-text call.
var ErrDescriptionFailure = errors.New("failed to describe image")

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
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

// LLMProvider defines the contract for the generation model backend.
type LLMProvider interface {
	// Generate sends a single prompt to the model and returns its text output.
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)

	// DescribeImage asks the vision model for a textual description of an image.
	DescribeImage(ctx context.Context, imageBytes []byte, mimeType string, prompt string) (string, error)
}
