package dto

import (
	"time"

	"github.com/google/uuid"
)

type MessageResponse struct {
	Id         uuid.UUID `json:"id"`
	EventId    uuid.UUID `json:"event_id"`
	Body       string    `json:"body"`
	Answer     string    `json:"answer"`
	Flagged    bool      `json:"flagged"`
	Confidence float64   `json:"confidence"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
