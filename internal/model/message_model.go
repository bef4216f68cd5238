package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id         uuid.UUID      `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	EventId    uuid.UUID      `gorm:"column:event_id;type:uuid;not null;index"`
	Body       string         `gorm:"column:body;type:text;not null"`
	Answer     string         `gorm:"column:answer;type:text;not null;default:''"`
	Flagged    bool           `gorm:"column:flagged;not null;default:false;index"`
	Confidence float64        `gorm:"column:confidence;not null;default:0"`
	Reason     string         `gorm:"column:reason;type:text;not null;default:''"`
	RawVerdict datatypes.JSON `gorm:"column:raw_verdict;type:jsonb"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
