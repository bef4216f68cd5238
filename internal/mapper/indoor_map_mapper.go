package mapper

import (
	"campusflow-be/internal/entity"
	"campusflow-be/internal/model"
)

type IndoorMapMapper struct{}

func NewIndoorMapMapper() *IndoorMapMapper {
	return &IndoorMapMapper{}
}

func (m *IndoorMapMapper) ToEntity(record *model.IndoorMap) *entity.IndoorMap {
	if record == nil {
		return nil
	}
	return &entity.IndoorMap{
		Id:          record.Id,
		EventId:     record.EventId,
		FileId:      record.FileId,
		ContentType: record.ContentType,
		UploadedAt:  record.UploadedAt,
		IndexedAt:   record.IndexedAt,
	}
}

func (m *IndoorMapMapper) ToModel(e *entity.IndoorMap) *model.IndoorMap {
	if e == nil {
		return nil
	}
	return &model.IndoorMap{
		Id:          e.Id,
		EventId:     e.EventId,
		FileId:      e.FileId,
		ContentType: e.ContentType,
		UploadedAt:  e.UploadedAt,
		IndexedAt:   e.IndexedAt,
	}
}
