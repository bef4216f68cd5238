package implementation

import (
	"context"
	"errors"

	"campusflow-be/internal/entity"
	"campusflow-be/internal/mapper"
	"campusflow-be/internal/model"
	"campusflow-be/internal/repository/contract"
	"campusflow-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IndoorMapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IndoorMapMapper
}

func NewIndoorMapRepository(db *gorm.DB) contract.IndoorMapRepository {
	return &IndoorMapRepositoryImpl{
		db:     db,
		mapper: mapper.NewIndoorMapMapper(),
	}
}

func (r *IndoorMapRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert keeps a single map row per event: a conflict on event_id replaces
// the file reference and resets the indexed marker.
func (r *IndoorMapRepositoryImpl) Upsert(ctx context.Context, indoorMap *entity.IndoorMap) error {
	m := r.mapper.ToModel(indoorMap)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"file_id", "content_type", "uploaded_at", "indexed_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*indoorMap = *r.mapper.ToEntity(m)
	return nil
}

func (r *IndoorMapRepositoryImpl) Update(ctx context.Context, indoorMap *entity.IndoorMap) error {
	m := r.mapper.ToModel(indoorMap)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*indoorMap = *r.mapper.ToEntity(m)
	return nil
}

func (r *IndoorMapRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IndoorMap{}, id).Error
}

func (r *IndoorMapRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.IndoorMap, error) {
	var m model.IndoorMap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *IndoorMapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IndoorMap, error) {
	var models []*model.IndoorMap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.IndoorMap, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
