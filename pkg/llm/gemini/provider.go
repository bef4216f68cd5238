package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campusflow-be/pkg/llm"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-flash-latest"
)

type GeminiProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

type Option func(*GeminiProvider)

// WithBaseURL overrides the API endpoint (used by tests and proxies).
func WithBaseURL(baseURL string) Option {
	return func(p *GeminiProvider) {
		p.baseURL = baseURL
	}
}

func WithModel(model string) Option {
	return func(p *GeminiProvider) {
		p.model = model
	}
}

func NewGeminiProvider(apiKey string, opts ...Option) *GeminiProvider {
	p := &GeminiProvider{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// --- Request/Response structs (Internal to this package) ---

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// --- Interface Implementation ---

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	applyOptions(&payload, opts)

	text, err := p.generateContent(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrGenerationFailure, err)
	}
	return text, nil
}

func (p *GeminiProvider) DescribeImage(ctx context.Context, imageBytes []byte, mimeType string, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: prompt},
					{
						InlineData: &geminiInlineData{
							MimeType: mimeType,
							Data:     base64.StdEncoding.EncodeToString(imageBytes),
						},
					},
				},
			},
		},
	}

	text, err := p.generateContent(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrDescriptionFailure, err)
	}
	return text, nil
}

func applyOptions(payload *geminiRequest, opts []llm.Option) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Temperature > 0 || options.MaxTokens > 0 {
		payload.GenerationConfig = &geminiGenerationConfig{
			Temperature:     options.Temperature,
			MaxOutputTokens: options.MaxTokens,
		}
	}
}

func (p *GeminiProvider) generateContent(ctx context.Context, payload geminiRequest) (string, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %v", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", fmt.Errorf("create request: %v", err)
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %v", err)
	}

	if res.StatusCode != http.StatusOK {
		// Surface the upstream error message when the body carries one.
		var errRes geminiResponse
		if json.Unmarshal(resBody, &errRes) == nil && errRes.Error != nil {
			return "", fmt.Errorf("status %d: %s", res.StatusCode, errRes.Error.Message)
		}
		return "", fmt.Errorf("status %d, body %s", res.StatusCode, string(resBody))
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", fmt.Errorf("decode response: %v", err)
	}

	if len(geminiRes.Candidates) == 0 || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty candidates in response")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}
