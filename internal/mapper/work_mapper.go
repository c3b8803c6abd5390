package mapper

import (
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/model"
)

type WorkMapper struct{}

func NewWorkMapper() *WorkMapper {
	return &WorkMapper{}
}

func (m *WorkMapper) ToEntity(w *model.Work) *entity.Work {
	if w == nil {
		return nil
	}
	return &entity.Work{
		Id:          w.Id,
		UserId:      w.UserId,
		Title:       w.Title,
		Type:        w.Type,
		PlanningDoc: w.PlanningDoc,
		WorkSummary: w.WorkSummary,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WorkMapper) ToModel(w *entity.Work) *model.Work {
	if w == nil {
		return nil
	}
	return &model.Work{
		Id:          w.Id,
		UserId:      w.UserId,
		Title:       w.Title,
		Type:        w.Type,
		PlanningDoc: w.PlanningDoc,
		WorkSummary: w.WorkSummary,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WorkMapper) ToEntities(works []*model.Work) []*entity.Work {
	entities := make([]*entity.Work, len(works))
	for i, w := range works {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
