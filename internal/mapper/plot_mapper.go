package mapper

import (
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/model"
)

type PlotMapper struct{}

func NewPlotMapper() *PlotMapper {
	return &PlotMapper{}
}

func (m *PlotMapper) ToEntity(p *model.Plot) *entity.Plot {
	if p == nil {
		return nil
	}
	return &entity.Plot{
		Id:          p.Id,
		EpisodeId:   p.EpisodeId,
		UserId:      p.UserId,
		Title:       p.Title,
		OrderIndex:  p.OrderIndex,
		PlotSummary: p.PlotSummary,
		ContentKey:  p.ContentKey,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PlotMapper) ToModel(p *entity.Plot) *model.Plot {
	if p == nil {
		return nil
	}
	return &model.Plot{
		Id:          p.Id,
		EpisodeId:   p.EpisodeId,
		UserId:      p.UserId,
		Title:       p.Title,
		OrderIndex:  p.OrderIndex,
		PlotSummary: p.PlotSummary,
		ContentKey:  p.ContentKey,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *PlotMapper) ToEntities(plots []*model.Plot) []*entity.Plot {
	entities := make([]*entity.Plot, len(plots))
	for i, p := range plots {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
