package mapper

import (
	"campusflow-be/internal/entity"
	"campusflow-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func (m *ChunkMapper) ToEntity(record *model.Chunk) *entity.Chunk {
	if record == nil {
		return nil
	}
	return &entity.Chunk{
		Id:         record.Id,
		EventId:    record.EventId,
		DocumentId: record.DocumentId,
		Kind:       record.Kind,
		Text:       record.Text,
		Embedding:  record.Embedding.Slice(),
		Position:   record.Position,
		CreatedAt:  record.CreatedAt,
	}
}

func (m *ChunkMapper) ToModel(e *entity.Chunk) *model.Chunk {
	if e == nil {
		return nil
	}
	return &model.Chunk{
		Id:         e.Id,
		EventId:    e.EventId,
		DocumentId: e.DocumentId,
		Kind:       e.Kind,
		Text:       e.Text,
		Embedding:  pgvector.NewVector(e.Embedding),
		Position:   e.Position,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *ChunkMapper) ToModels(entities []entity.Chunk) []model.Chunk {
	records := make([]model.Chunk, 0, len(entities))
	for i := range entities {
		records = append(records, *m.ToModel(&entities[i]))
	}
	return records
}

func (m *ChunkMapper) ToEntities(records []model.Chunk) []entity.Chunk {
	entities := make([]entity.Chunk, 0, len(records))
	for i := range records {
		entities = append(entities, *m.ToEntity(&records[i]))
	}
	return entities
}
