package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Id        uuid.UUID  `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string     `gorm:"column:name;type:varchar(255);not null"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}
