package service

import (
	"context"
	"time"

	"plot-editor-be/internal/constant"
	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IWorkService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowWorkResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkRequest) (*dto.CreateWorkResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowWorkResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateWorkRequest) (*dto.UpdateWorkResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type workService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWorkService(uowFactory unitofwork.RepositoryFactory) IWorkService {
	return &workService{
		uowFactory: uowFactory,
	}
}

func toShowWorkResponse(work *entity.Work) *dto.ShowWorkResponse {
	return &dto.ShowWorkResponse{
		Id:          work.Id,
		Title:       work.Title,
		Type:        work.Type,
		PlanningDoc: work.PlanningDoc,
		WorkSummary: work.WorkSummary,
		CreatedAt:   work.CreatedAt,
		UpdatedAt:   work.UpdatedAt,
	}
}

func (s *workService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowWorkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	works, err := uow.WorkRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowWorkResponse, len(works))
	for i, work := range works {
		result[i] = toShowWorkResponse(work)
	}
	return result, nil
}

func (s *workService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateWorkRequest) (*dto.CreateWorkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	workType := req.Type
	if workType == "" {
		workType = constant.WorkTypePlot
	}

	work := entity.Work{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     req.Title,
		Type:      workType,
		CreatedAt: time.Now(),
	}
	if err := uow.WorkRepository().Create(ctx, &work); err != nil {
		return nil, err
	}

	return &dto.CreateWorkResponse{Id: work.Id}, nil
}

func (s *workService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowWorkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	work, err := uow.WorkRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, serverutils.NewNotFoundError("work not found")
	}
	return toShowWorkResponse(work), nil
}

func (s *workService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateWorkRequest) (*dto.UpdateWorkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	work, err := uow.WorkRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, serverutils.NewNotFoundError("work not found")
	}

	now := time.Now()
	work.Title = req.Title
	work.PlanningDoc = req.PlanningDoc
	work.WorkSummary = req.WorkSummary
	work.UpdatedAt = &now

	if err := uow.WorkRepository().Update(ctx, work); err != nil {
		return nil, err
	}
	return &dto.UpdateWorkResponse{Id: work.Id}, nil
}

func (s *workService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	work, err := uow.WorkRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if work == nil {
		return serverutils.NewNotFoundError("work not found")
	}

	// Children are left in place; the client deletes them explicitly.
	return uow.WorkRepository().Delete(ctx, id)
}
