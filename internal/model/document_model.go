package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id          uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	EventId     uuid.UUID  `gorm:"column:event_id;type:uuid;not null;index"`
	Filename    string     `gorm:"column:filename;type:varchar(512);not null"`
	ContentType string     `gorm:"column:content_type;type:varchar(128);not null"`
	FileId      uuid.UUID  `gorm:"column:file_id;type:uuid;not null"`
	UploadedAt  time.Time  `gorm:"column:uploaded_at;autoCreateTime"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
	ChunkCount  int        `gorm:"column:chunk_count;not null;default:0"`
}

func (Document) TableName() string {
	return "documents"
}
