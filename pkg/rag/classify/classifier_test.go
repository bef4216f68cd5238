package classify

import (
	"context"
	"errors"
	"testing"

	"campusflow-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeLLM) DescribeImage(_ context.Context, _ []byte, _ string, _ string) (string, error) {
	return "", errors.New("not used")
}

func TestClassifyFlagsCrashReport(t *testing.T) {
	c := NewClassifier(&fakeLLM{
		reply: `{"should_flag": true, "confidence": 0.95, "reason": "payment failure needs human follow-up"}`,
	})

	result, err := c.Classify(context.Background(), "The app crashed when I tried to pay")
	require.NoError(t, err)
	assert.True(t, result.ShouldFlag)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.NotEmpty(t, result.Reason)
}

func TestClassifyDoesNotFlagThanks(t *testing.T) {
	c := NewClassifier(&fakeLLM{
		reply: `{"should_flag": false, "confidence": 0.9, "reason": "positive feedback"}`,
	})

	result, err := c.Classify(context.Background(), "Thanks, that answered my question!")
	require.NoError(t, err)
	assert.False(t, result.ShouldFlag)
}

func TestClassifyStripsMarkdownFence(t *testing.T) {
	c := NewClassifier(&fakeLLM{
		reply: "```json\n{\"should_flag\": true, \"confidence\": 0.7, \"reason\": \"complaint\"}\n```",
	})

	result, err := c.Classify(context.Background(), "This is terrible")
	require.NoError(t, err)
	assert.True(t, result.ShouldFlag)
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
}

func TestClassifyMalformedOutput(t *testing.T) {
	c := NewClassifier(&fakeLLM{reply: "I think you should flag this one."})

	_, err := c.Classify(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedOutput)
	assert.NotErrorIs(t, err, llm.ErrGenerationFailure)
}

func TestClassifyConfidenceOutOfRange(t *testing.T) {
	c := NewClassifier(&fakeLLM{
		reply: `{"should_flag": true, "confidence": 1.5, "reason": "overconfident"}`,
	})

	_, err := c.Classify(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestClassifyTransportFailureIsDistinct(t *testing.T) {
	c := NewClassifier(&fakeLLM{err: llm.ErrGenerationFailure})

	_, err := c.Classify(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrGenerationFailure)
	assert.NotErrorIs(t, err, ErrMalformedOutput)
}
