package mapper

import (
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/model"

	"gorm.io/datatypes"
)

type GraphLayoutMapper struct{}

func NewGraphLayoutMapper() *GraphLayoutMapper {
	return &GraphLayoutMapper{}
}

func (m *GraphLayoutMapper) ToEntity(g *model.GraphLayout) *entity.GraphLayout {
	if g == nil {
		return nil
	}
	return &entity.GraphLayout{
		WorkId:    g.WorkId,
		UserId:    g.UserId,
		Positions: []byte(g.Positions),
		UpdatedAt: g.UpdatedAt,
	}
}

func (m *GraphLayoutMapper) ToModel(g *entity.GraphLayout) *model.GraphLayout {
	if g == nil {
		return nil
	}
	return &model.GraphLayout{
		WorkId:    g.WorkId,
		UserId:    g.UserId,
		Positions: datatypes.JSON(g.Positions),
		UpdatedAt: g.UpdatedAt,
	}
}
