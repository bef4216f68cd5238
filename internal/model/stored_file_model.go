package model

import (
	"time"

	"github.com/google/uuid"
)

type StoredFile struct {
	Id          uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	EventId     uuid.UUID `gorm:"column:event_id;type:uuid;not null;index"`
	Filename    string    `gorm:"column:filename;type:varchar(512);not null"`
	ContentType string    `gorm:"column:content_type;type:varchar(128);not null"`
	Size        int64     `gorm:"column:size;not null"`
	Data        []byte    `gorm:"column:data;type:bytea;not null"`
	UploadedAt  time.Time `gorm:"column:uploaded_at;autoCreateTime"`
}

func (StoredFile) TableName() string {
	return "stored_files"
}
