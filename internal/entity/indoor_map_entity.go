package entity

import (
	"time"

	"github.com/google/uuid"
)

// IndoorMap is the single map image tracked per event. Uploading a new map
// overwrites the record and triggers re-ingestion (last-write-wins).
type IndoorMap struct {
	Id          uuid.UUID
	EventId     uuid.UUID
	FileId      uuid.UUID // blob store reference
	ContentType string
	UploadedAt  time.Time
	IndexedAt   *time.Time
}
