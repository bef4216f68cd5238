package contract

import (
	"context"

	"campusflow-be/internal/entity"
	"campusflow-be/internal/repository/specification"

	"github.com/google/uuid"
)

type IndoorMapRepository interface {
	// Upsert inserts the map for its event, or replaces an existing one
	// (one map per event, last write wins).
	Upsert(ctx context.Context, indoorMap *entity.IndoorMap) error
	Update(ctx context.Context, indoorMap *entity.IndoorMap) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IndoorMap, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IndoorMap, error)
}
