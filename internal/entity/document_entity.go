package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is one uploaded source file for an event. ProcessedAt and
// ChunkCount are set exactly once by the ingestion orchestrator when the
// file has been chunked and embedded.
type Document struct {
	Id          uuid.UUID
	EventId     uuid.UUID
	Filename    string
	ContentType string
	FileId      uuid.UUID // blob store reference
	UploadedAt  time.Time
	ProcessedAt *time.Time
	ChunkCount  int
}

// Processed reports whether this document has been ingested.
func (d *Document) Processed() bool {
	return d.ProcessedAt != nil
}
