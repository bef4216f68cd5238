package mapper

import (
	"campusflow-be/internal/entity"
	"campusflow-be/internal/model"
)

type StoredFileMapper struct{}

func NewStoredFileMapper() *StoredFileMapper {
	return &StoredFileMapper{}
}

func (m *StoredFileMapper) ToEntity(record *model.StoredFile) *entity.StoredFile {
	if record == nil {
		return nil
	}
	return &entity.StoredFile{
		Id:          record.Id,
		EventId:     record.EventId,
		Filename:    record.Filename,
		ContentType: record.ContentType,
		Size:        record.Size,
		Data:        record.Data,
		UploadedAt:  record.UploadedAt,
	}
}

func (m *StoredFileMapper) ToModel(e *entity.StoredFile) *model.StoredFile {
	if e == nil {
		return nil
	}
	return &model.StoredFile{
		Id:          e.Id,
		EventId:     e.EventId,
		Filename:    e.Filename,
		ContentType: e.ContentType,
		Size:        e.Size,
		Data:        e.Data,
		UploadedAt:  e.UploadedAt,
	}
}
