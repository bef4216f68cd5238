package dto

import "github.com/google/uuid"

const (
	IngestKindDocument  = "document"
	IngestKindIndoorMap = "indoor_map"
)

// PublishIngestMessage is the queue payload that triggers ingestion of a
// document or an indoor map.
type PublishIngestMessage struct {
	Kind string    `json:"kind"`
	Id   uuid.UUID `json:"id"`
}
