package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message records an attendee question together with the generated answer
// and the classification verdict, so organizers can review flagged traffic.
type Message struct {
	Id         uuid.UUID
	EventId    uuid.UUID
	Body       string
	Answer     string
	Flagged    bool
	Confidence float64
	Reason     string
	RawVerdict []byte // raw model output, kept for auditing
	CreatedAt  time.Time
}
