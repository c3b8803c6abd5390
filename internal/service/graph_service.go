package service

import (
	"context"
	"encoding/json"
	"time"

	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IGraphService interface {
	Show(ctx context.Context, userId uuid.UUID, workId uuid.UUID) (*dto.ShowGraphLayoutResponse, error)
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveGraphLayoutRequest) error
}

type graphService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGraphService(uowFactory unitofwork.RepositoryFactory) IGraphService {
	return &graphService{
		uowFactory: uowFactory,
	}
}

// Show returns the stored layout, or an empty object when none has been
// saved yet.
func (s *graphService) Show(ctx context.Context, userId uuid.UUID, workId uuid.UUID) (*dto.ShowGraphLayoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	layout, err := uow.GraphLayoutRepository().FindByWorkId(ctx, workId, userId)
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return &dto.ShowGraphLayoutResponse{
			WorkId:    workId,
			Positions: json.RawMessage("{}"),
		}, nil
	}
	return &dto.ShowGraphLayoutResponse{
		WorkId:    layout.WorkId,
		Positions: json.RawMessage(layout.Positions),
		UpdatedAt: layout.UpdatedAt,
	}, nil
}

func (s *graphService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveGraphLayoutRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	layout := entity.GraphLayout{
		WorkId:    req.WorkId,
		UserId:    userId,
		Positions: []byte(req.Positions),
		UpdatedAt: time.Now(),
	}
	return uow.GraphLayoutRepository().Upsert(ctx, &layout)
}
