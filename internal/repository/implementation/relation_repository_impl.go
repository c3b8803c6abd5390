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

type RelationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RelationMapper
}

func NewRelationRepository(db *gorm.DB) contract.RelationRepository {
	return &RelationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRelationMapper(),
	}
}

func (r *RelationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RelationRepositoryImpl) Create(ctx context.Context, relation *entity.Relation) error {
	m := r.mapper.ToModel(relation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*relation = *r.mapper.ToEntity(m)
	return nil
}

func (r *RelationRepositoryImpl) Update(ctx context.Context, relation *entity.Relation) error {
	m := r.mapper.ToModel(relation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*relation = *r.mapper.ToEntity(m)
	return nil
}

func (r *RelationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Relation{}, id).Error
}

func (r *RelationRepositoryImpl) DeleteAllByCharacterId(ctx context.Context, characterId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("from_character_id = ? OR to_character_id = ?", characterId, characterId).
		Delete(&model.Relation{}).Error
}

func (r *RelationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Relation, error) {
	var m model.Relation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RelationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Relation, error) {
	var models []*model.Relation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
