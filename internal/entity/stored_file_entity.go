package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoredFile is a blob-store record: original file bytes plus the metadata
// the ingestion pipeline needs to re-read them later.
type StoredFile struct {
	Id          uuid.UUID
	EventId     uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
	UploadedAt  time.Time
}
