package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiEmbeddingModel = "text-embedding-004"

	// Dimensions returned by text-embedding-004. Must match the vector
	// column width in the chunk store.
	GeminiDimensions = 768
)

type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type GeminiOption func(*GeminiProvider)

// WithBaseURL overrides the API endpoint (used by tests and proxies).
func WithBaseURL(baseURL string) GeminiOption {
	return func(p *GeminiProvider) {
		p.baseURL = baseURL
	}
}

func NewGeminiProvider(apiKey string, opts ...GeminiOption) EmbeddingProvider {
	p := &GeminiProvider{
		apiKey:  apiKey,
		baseURL: defaultGeminiBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GeminiProvider) Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error) {
	geminiReq := EmbeddingRequest{
		Model: "models/" + geminiEmbeddingModel,
		Content: EmbeddingRequestContent{
			Parts: []EmbeddingRequestContentPart{
				{Text: text},
			},
		},
		TaskType: taskType,
	}
	geminiReqJson, err := json.Marshal(geminiReq)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrEmbeddingFailure, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:embedContent", p.baseURL, geminiEmbeddingModel)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(geminiReqJson))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrEmbeddingFailure, err)
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailure, err)
	}
	defer res.Body.Close()

	resByte, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrEmbeddingFailure, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d, body %s", ErrEmbeddingFailure, res.StatusCode, string(resByte))
	}

	var resEmbedding EmbeddingResponse
	if err := json.Unmarshal(resByte, &resEmbedding); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrEmbeddingFailure, err)
	}

	if len(resEmbedding.Embedding.Values) == 0 {
		return nil, fmt.Errorf("%w: empty embedding in response", ErrEmbeddingFailure)
	}

	return &resEmbedding, nil
}
