package embedding

import "context"

// Task types passed to the embedding model so it can optimize the vector
// for its role in retrieval.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider defines the interface for generating text embeddings.
// Every call is a billed, rate-limited network operation; callers own
// retry and throttling decisions.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error)
}
