package contract

import (
	"context"

	"campusflow-be/internal/entity"
	"campusflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredChunk wraps a Chunk with its cosine similarity score
type ScoredChunk struct {
	Chunk      *entity.Chunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type ChunkRepository interface {
	Create(ctx context.Context, chunk *entity.Chunk) error
	CreateBulk(ctx context.Context, chunks []*entity.Chunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	DeleteByEventId(ctx context.Context, eventId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chunk, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the top chunks for an event ranked by
	// cosine similarity, filtered by threshold.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, eventId uuid.UUID, threshold float64) ([]*ScoredChunk, error)
}
