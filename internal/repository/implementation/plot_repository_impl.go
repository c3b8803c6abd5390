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

type PlotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlotMapper
}

func NewPlotRepository(db *gorm.DB) contract.PlotRepository {
	return &PlotRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlotMapper(),
	}
}

func (r *PlotRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlotRepositoryImpl) Create(ctx context.Context, plot *entity.Plot) error {
	m := r.mapper.ToModel(plot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plot = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlotRepositoryImpl) Update(ctx context.Context, plot *entity.Plot) error {
	m := r.mapper.ToModel(plot)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plot = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Plot{}, id).Error
}

func (r *PlotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plot, error) {
	var m model.Plot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plot, error) {
	var models []*model.Plot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PlotRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Plot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
