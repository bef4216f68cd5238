package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEventID struct {
	EventID uuid.UUID
}

func (s ByEventID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_id = ?", s.EventID)
}

type ByDocumentID struct {
	DocumentID uuid.UUID
}

func (s ByDocumentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentID)
}

type ByKind struct {
	Kind string
}

func (s ByKind) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("kind = ?", s.Kind)
}

// Unprocessed selects documents that have not been ingested yet.
type Unprocessed struct{}

func (s Unprocessed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("processed_at IS NULL")
}

// FlaggedOnly selects messages the classifier flagged for review.
type FlaggedOnly struct{}

func (s FlaggedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("flagged = ?", true)
}
