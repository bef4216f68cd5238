package dto

import "github.com/google/uuid"

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// SourceReference identifies one retrieved chunk that grounded the answer.
type SourceReference struct {
	DocumentId uuid.UUID `json:"document_id"`
	Position   int       `json:"position"`
	Similarity float64   `json:"similarity"`
}

type AskResponse struct {
	Answer  string            `json:"answer"`
	Sources []SourceReference `json:"sources"`
}

type ClassifyMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ClassifyMessageResponse struct {
	ShouldFlag bool    `json:"should_flag"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}
