package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChunkKindIndoorMap tags chunks that came from an indoor-map description
// rather than an uploaded document.
const ChunkKindIndoorMap = "indoor_map"

// Chunk is the atomic retrievable unit: a bounded span of source text with
// its embedding vector. Immutable once written; re-ingesting the source
// replaces its chunks wholesale inside one transaction.
type Chunk struct {
	Id         uuid.UUID
	EventId    uuid.UUID
	DocumentId uuid.UUID // source document, or map file id for indoor maps
	Kind       string    // "" for documents, ChunkKindIndoorMap for maps
	Text       string
	Embedding  []float32
	Position   int // zero-based, gap-free per source document
	CreatedAt  time.Time
}
