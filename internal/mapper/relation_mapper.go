package mapper

import (
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/model"
)

type RelationMapper struct{}

func NewRelationMapper() *RelationMapper {
	return &RelationMapper{}
}

func (m *RelationMapper) ToEntity(r *model.Relation) *entity.Relation {
	if r == nil {
		return nil
	}
	return &entity.Relation{
		Id:              r.Id,
		WorkId:          r.WorkId,
		UserId:          r.UserId,
		FromCharacterId: r.FromCharacterId,
		ToCharacterId:   r.ToCharacterId,
		RelationName:    r.RelationName,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *RelationMapper) ToModel(r *entity.Relation) *model.Relation {
	if r == nil {
		return nil
	}
	return &model.Relation{
		Id:              r.Id,
		WorkId:          r.WorkId,
		UserId:          r.UserId,
		FromCharacterId: r.FromCharacterId,
		ToCharacterId:   r.ToCharacterId,
		RelationName:    r.RelationName,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *RelationMapper) ToEntities(relations []*model.Relation) []*entity.Relation {
	entities := make([]*entity.Relation, len(relations))
	for i, r := range relations {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
