package mapper

import (
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/model"
)

type CharacterMapper struct{}

func NewCharacterMapper() *CharacterMapper {
	return &CharacterMapper{}
}

func (m *CharacterMapper) ToEntity(c *model.Character) *entity.Character {
	if c == nil {
		return nil
	}
	return &entity.Character{
		Id:         c.Id,
		WorkId:     c.WorkId,
		UserId:     c.UserId,
		Name:       c.Name,
		Color:      c.Color,
		Properties: c.Properties,
		Memo:       c.Memo,
		AiSummary:  c.AiSummary,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *CharacterMapper) ToModel(c *entity.Character) *model.Character {
	if c == nil {
		return nil
	}
	return &model.Character{
		Id:         c.Id,
		WorkId:     c.WorkId,
		UserId:     c.UserId,
		Name:       c.Name,
		Color:      c.Color,
		Properties: c.Properties,
		Memo:       c.Memo,
		AiSummary:  c.AiSummary,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *CharacterMapper) ToEntities(characters []*model.Character) []*entity.Character {
	entities := make([]*entity.Character, len(characters))
	for i, c := range characters {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
