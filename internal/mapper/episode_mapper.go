package mapper

import (
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/model"
)

type EpisodeMapper struct{}

func NewEpisodeMapper() *EpisodeMapper {
	return &EpisodeMapper{}
}

func (m *EpisodeMapper) ToEntity(e *model.Episode) *entity.Episode {
	if e == nil {
		return nil
	}
	return &entity.Episode{
		Id:             e.Id,
		WorkId:         e.WorkId,
		UserId:         e.UserId,
		Title:          e.Title,
		OrderIndex:     e.OrderIndex,
		ChapterSummary: e.ChapterSummary,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EpisodeMapper) ToModel(e *entity.Episode) *model.Episode {
	if e == nil {
		return nil
	}
	return &model.Episode{
		Id:             e.Id,
		WorkId:         e.WorkId,
		UserId:         e.UserId,
		Title:          e.Title,
		OrderIndex:     e.OrderIndex,
		ChapterSummary: e.ChapterSummary,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *EpisodeMapper) ToEntities(episodes []*model.Episode) []*entity.Episode {
	entities := make([]*entity.Episode, len(episodes))
	for i, e := range episodes {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
