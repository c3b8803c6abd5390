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

type EpisodeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EpisodeMapper
}

func NewEpisodeRepository(db *gorm.DB) contract.EpisodeRepository {
	return &EpisodeRepositoryImpl{
		db:     db,
		mapper: mapper.NewEpisodeMapper(),
	}
}

func (r *EpisodeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EpisodeRepositoryImpl) Create(ctx context.Context, episode *entity.Episode) error {
	m := r.mapper.ToModel(episode)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*episode = *r.mapper.ToEntity(m)
	return nil
}

func (r *EpisodeRepositoryImpl) Update(ctx context.Context, episode *entity.Episode) error {
	m := r.mapper.ToModel(episode)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*episode = *r.mapper.ToEntity(m)
	return nil
}

func (r *EpisodeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Episode{}, id).Error
}

func (r *EpisodeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Episode, error) {
	var m model.Episode
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EpisodeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Episode, error) {
	var models []*model.Episode
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EpisodeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Episode{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
