package unitofwork

import (
	"context"

	"campusflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	EventRepository() contract.EventRepository
	DocumentRepository() contract.DocumentRepository
	ChunkRepository() contract.ChunkRepository
	IndoorMapRepository() contract.IndoorMapRepository
	StoredFileRepository() contract.StoredFileRepository
	MessageRepository() contract.MessageRepository
}
