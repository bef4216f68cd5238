package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadIndoorMapResponse struct {
	Id        uuid.UUID  `json:"id"`
	EventId   uuid.UUID  `json:"event_id"`
	IndexedAt *time.Time `json:"indexed_at"`
}
