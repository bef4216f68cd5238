package model

import (
	"time"

	"github.com/google/uuid"
)

type IndoorMap struct {
	Id          uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	EventId     uuid.UUID  `gorm:"column:event_id;type:uuid;not null;uniqueIndex"`
	FileId      uuid.UUID  `gorm:"column:file_id;type:uuid;not null"`
	ContentType string     `gorm:"column:content_type;type:varchar(128);not null"`
	UploadedAt  time.Time  `gorm:"column:uploaded_at;autoCreateTime"`
	IndexedAt   *time.Time `gorm:"column:indexed_at"`
}

func (IndoorMap) TableName() string {
	return "indoor_maps"
}
