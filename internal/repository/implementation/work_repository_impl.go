package implementation

import (
	"context"
	"errors"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/mapper"
	"plot-editor-be/internal/model"
	"plot-editor-be/internal/repository/contract"
	"plot-editor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkMapper
}

func NewWorkRepository(db *gorm.DB) contract.WorkRepository {
	return &WorkRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkMapper(),
	}
}

func (r *WorkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WorkRepositoryImpl) Create(ctx context.Context, work *entity.Work) error {
	m := r.mapper.ToModel(work)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*work = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkRepositoryImpl) Update(ctx context.Context, work *entity.Work) error {
	m := r.mapper.ToModel(work)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*work = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Work{}, id).Error
}

func (r *WorkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Work, error) {
	var m model.Work
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WorkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Work, error) {
	var models []*model.Work
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WorkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Work{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
