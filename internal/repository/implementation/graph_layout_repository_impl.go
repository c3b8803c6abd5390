package implementation

import (
	"context"
	"errors"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/mapper"
	"plot-editor-be/internal/model"
	"plot-editor-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GraphLayoutRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GraphLayoutMapper
}

func NewGraphLayoutRepository(db *gorm.DB) contract.GraphLayoutRepository {
	return &GraphLayoutRepositoryImpl{
		db:     db,
		mapper: mapper.NewGraphLayoutMapper(),
	}
}

func (r *GraphLayoutRepositoryImpl) Upsert(ctx context.Context, layout *entity.GraphLayout) error {
	m := r.mapper.ToModel(layout)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "work_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"positions", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*layout = *r.mapper.ToEntity(m)
	return nil
}

func (r *GraphLayoutRepositoryImpl) FindByWorkId(ctx context.Context, workId uuid.UUID, userId uuid.UUID) (*entity.GraphLayout, error) {
	var m model.GraphLayout
	err := r.db.WithContext(ctx).
		Where("work_id = ? AND user_id = ?", workId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
