package contract

import (
	"context"

	"campusflow-be/internal/entity"
	"campusflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StoredFileRepository interface {
	Create(ctx context.Context, file *entity.StoredFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StoredFile, error)
}
