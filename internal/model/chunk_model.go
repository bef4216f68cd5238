package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type Chunk struct {
	Id         uuid.UUID       `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	EventId    uuid.UUID       `gorm:"column:event_id;type:uuid;not null;index"`
	DocumentId uuid.UUID       `gorm:"column:document_id;type:uuid;not null;index"`
	Kind       string          `gorm:"column:kind;type:varchar(32);not null;default:''"`
	Text       string          `gorm:"column:text;type:text;not null"`
	Embedding  pgvector.Vector `gorm:"column:embedding;type:vector(768)"`
	Position   int             `gorm:"column:position;not null"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Chunk) TableName() string {
	return "chunks"
}

// ChunkWithScore carries a similarity score alongside the row, populated by
// the pgvector cosine-distance query.
type ChunkWithScore struct {
	Chunk
	Similarity float64 `gorm:"column:similarity"`
}
