package mapper

import (
	"campusflow-be/internal/entity"
	"campusflow-be/internal/model"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(record *model.Event) *entity.Event {
	if record == nil {
		return nil
	}
	return &entity.Event{
		Id:        record.Id,
		Name:      record.Name,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func (m *EventMapper) ToModel(e *entity.Event) *model.Event {
	if e == nil {
		return nil
	}
	return &model.Event{
		Id:        e.Id,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (m *EventMapper) ToEntities(records []model.Event) []entity.Event {
	entities := make([]entity.Event, 0, len(records))
	for i := range records {
		entities = append(entities, *m.ToEntity(&records[i]))
	}
	return entities
}
