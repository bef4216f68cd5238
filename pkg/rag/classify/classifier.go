package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"campusflow-be/pkg/llm"
	"campusflow-be/pkg/rag/prompt"
)

// ErrMalformedOutput marks a model reply that could not be parsed as the
// expected JSON shape. Distinct from transport failures, which surface
// as llm.ErrGenerationFailure.
var ErrMalformedOutput = errors.New("malformed classification output")

// Result is the structured verdict on an attendee message.
type Result struct {
	ShouldFlag bool    `json:"should_flag"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
	Raw        string  `json:"-"`
}

// Classifier decides whether a message needs organizer attention using a
// single generation-model call.
type Classifier struct {
	llmProvider llm.LLMProvider
}

func NewClassifier(llmProvider llm.LLMProvider) *Classifier {
	return &Classifier{llmProvider: llmProvider}
}

func (c *Classifier) Classify(ctx context.Context, message string) (*Result, error) {
	raw, err := c.llmProvider.Generate(ctx, prompt.BuildClassification(message))
	if err != nil {
		return nil, err
	}

	result, err := parseResult(raw)
	if err != nil {
		return nil, err
	}
	result.Raw = raw
	return result, nil
}

// parseResult cleans markdown code fences the model tends to wrap JSON in,
// then decodes and range-checks the payload.
func parseResult(raw string) (*Result, error) {
	cleaned := []byte(raw)
	cleaned = bytes.TrimSpace(cleaned)
	cleaned = bytes.TrimPrefix(cleaned, []byte("```json"))
	cleaned = bytes.TrimPrefix(cleaned, []byte("```"))
	cleaned = bytes.TrimSuffix(cleaned, []byte("```"))
	cleaned = bytes.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal(cleaned, &result); err != nil {
		return nil, fmt.Errorf("%w: %v | raw: %s", ErrMalformedOutput, err, raw)
	}

	if result.Confidence < 0 || result.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %f out of range", ErrMalformedOutput, result.Confidence)
	}

	return &result, nil
}
