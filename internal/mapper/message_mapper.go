package mapper

import (
	"campusflow-be/internal/entity"
	"campusflow-be/internal/model"

	"gorm.io/datatypes"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(record *model.Message) *entity.Message {
	if record == nil {
		return nil
	}
	return &entity.Message{
		Id:         record.Id,
		EventId:    record.EventId,
		Body:       record.Body,
		Answer:     record.Answer,
		Flagged:    record.Flagged,
		Confidence: record.Confidence,
		Reason:     record.Reason,
		RawVerdict: []byte(record.RawVerdict),
		CreatedAt:  record.CreatedAt,
	}
}

func (m *MessageMapper) ToModel(e *entity.Message) *model.Message {
	if e == nil {
		return nil
	}
	return &model.Message{
		Id:         e.Id,
		EventId:    e.EventId,
		Body:       e.Body,
		Answer:     e.Answer,
		Flagged:    e.Flagged,
		Confidence: e.Confidence,
		Reason:     e.Reason,
		RawVerdict: datatypes.JSON(e.RawVerdict),
		CreatedAt:  e.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(records []model.Message) []entity.Message {
	entities := make([]entity.Message, 0, len(records))
	for i := range records {
		entities = append(entities, *m.ToEntity(&records[i]))
	}
	return entities
}
