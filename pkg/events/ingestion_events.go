package events

import "time"

const (
	TypeDocumentIngested = "DOCUMENT_INGESTED"
	TypeMapIndexed       = "MAP_INDEXED"
	TypeMessageFlagged   = "MESSAGE_FLAGGED"
)

// NewDocumentIngested is emitted after a document's chunks are committed.
func NewDocumentIngested(eventId, documentId string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeDocumentIngested,
		Data: map[string]interface{}{
			"event_id":    eventId,
			"document_id": documentId,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewMapIndexed is emitted after an indoor map's description is indexed.
func NewMapIndexed(eventId, mapId string) Event {
	return BaseEvent{
		Type: TypeMapIndexed,
		Data: map[string]interface{}{
			"event_id": eventId,
			"map_id":   mapId,
		},
		OccurredAt: time.Now(),
	}
}

// NewMessageFlagged is emitted when the classifier flags an attendee message.
func NewMessageFlagged(eventId, messageId, reason string, confidence float64) Event {
	return BaseEvent{
		Type: TypeMessageFlagged,
		Data: map[string]interface{}{
			"event_id":   eventId,
			"message_id": messageId,
			"reason":     reason,
			"confidence": confidence,
		},
		OccurredAt: time.Now(),
	}
}
