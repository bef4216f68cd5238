package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadDocumentResponse struct {
	Id       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	// Processing happens async; poll the document until processed_at is set.
	Processed bool `json:"processed"`
}

type DocumentResponse struct {
	Id          uuid.UUID  `json:"id"`
	EventId     uuid.UUID  `json:"event_id"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	UploadedAt  time.Time  `json:"uploaded_at"`
	ProcessedAt *time.Time `json:"processed_at"`
	ChunkCount  int        `json:"chunk_count"`
}
