package mapper

import (
	"campusflow-be/internal/entity"
	"campusflow-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(record *model.Document) *entity.Document {
	if record == nil {
		return nil
	}
	return &entity.Document{
		Id:          record.Id,
		EventId:     record.EventId,
		Filename:    record.Filename,
		ContentType: record.ContentType,
		FileId:      record.FileId,
		UploadedAt:  record.UploadedAt,
		ProcessedAt: record.ProcessedAt,
		ChunkCount:  record.ChunkCount,
	}
}

func (m *DocumentMapper) ToModel(e *entity.Document) *model.Document {
	if e == nil {
		return nil
	}
	return &model.Document{
		Id:          e.Id,
		EventId:     e.EventId,
		Filename:    e.Filename,
		ContentType: e.ContentType,
		FileId:      e.FileId,
		UploadedAt:  e.UploadedAt,
		ProcessedAt: e.ProcessedAt,
		ChunkCount:  e.ChunkCount,
	}
}

func (m *DocumentMapper) ToEntities(records []model.Document) []entity.Document {
	entities := make([]entity.Document, 0, len(records))
	for i := range records {
		entities = append(entities, *m.ToEntity(&records[i]))
	}
	return entities
}
