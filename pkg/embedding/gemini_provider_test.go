package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiProviderGenerate(t *testing.T) {
	var gotReq EmbeddingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/text-embedding-004:embedContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(EmbeddingResponse{
			Embedding: EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
		})
	}))
	defer server.Close()

	provider := NewGeminiProvider("test-key", WithBaseURL(server.URL))

	res, err := provider.Generate(context.Background(), "where is the main hall", TaskRetrievalQuery)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, res.Embedding.Values)

	require.Len(t, gotReq.Content.Parts, 1)
	assert.Equal(t, "where is the main hall", gotReq.Content.Parts[0].Text)
	assert.Equal(t, TaskRetrievalQuery, gotReq.TaskType)
}

func TestGeminiProviderGenerateUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider("test-key", WithBaseURL(server.URL))

	_, err := provider.Generate(context.Background(), "question", TaskRetrievalQuery)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmbeddingFailure)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGeminiProviderGenerateEmptyEmbedding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"embedding":{"values":[]}}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider("test-key", WithBaseURL(server.URL))

	_, err := provider.Generate(context.Background(), "question", TaskRetrievalDocument)
	assert.ErrorIs(t, err, ErrEmbeddingFailure)
}
