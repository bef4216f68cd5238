package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateEventResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowEventResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
