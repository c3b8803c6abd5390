package service

import (
	"context"
	"time"

	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IEpisodeService interface {
	GetAllByWork(ctx context.Context, userId uuid.UUID, workId uuid.UUID) ([]*dto.ShowEpisodeResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEpisodeRequest) (*dto.CreateEpisodeResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowEpisodeResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEpisodeRequest) (*dto.UpdateEpisodeResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type episodeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEpisodeService(uowFactory unitofwork.RepositoryFactory) IEpisodeService {
	return &episodeService{
		uowFactory: uowFactory,
	}
}

func toShowEpisodeResponse(ep *entity.Episode) *dto.ShowEpisodeResponse {
	return &dto.ShowEpisodeResponse{
		Id:             ep.Id,
		WorkId:         ep.WorkId,
		Title:          ep.Title,
		OrderIndex:     ep.OrderIndex,
		ChapterSummary: ep.ChapterSummary,
		CreatedAt:      ep.CreatedAt,
		UpdatedAt:      ep.UpdatedAt,
	}
}

func (s *episodeService) GetAllByWork(ctx context.Context, userId uuid.UUID, workId uuid.UUID) ([]*dto.ShowEpisodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	episodes, err := uow.EpisodeRepository().FindAll(ctx,
		specification.ByWorkID{WorkID: workId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "order_index"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowEpisodeResponse, len(episodes))
	for i, ep := range episodes {
		result[i] = toShowEpisodeResponse(ep)
	}
	return result, nil
}

func (s *episodeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEpisodeRequest) (*dto.CreateEpisodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	work, err := uow.WorkRepository().FindOne(ctx,
		specification.ByID{ID: req.WorkId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, serverutils.NewNotFoundError("work not found")
	}

	episode := entity.Episode{
		Id:         uuid.New(),
		WorkId:     req.WorkId,
		UserId:     userId,
		Title:      req.Title,
		OrderIndex: req.OrderIndex,
		CreatedAt:  time.Now(),
	}
	if err := uow.EpisodeRepository().Create(ctx, &episode); err != nil {
		return nil, err
	}

	return &dto.CreateEpisodeResponse{Id: episode.Id}, nil
}

func (s *episodeService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowEpisodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	episode, err := uow.EpisodeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, serverutils.NewNotFoundError("episode not found")
	}
	return toShowEpisodeResponse(episode), nil
}

func (s *episodeService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEpisodeRequest) (*dto.UpdateEpisodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	episode, err := uow.EpisodeRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, serverutils.NewNotFoundError("episode not found")
	}

	now := time.Now()
	episode.Title = req.Title
	episode.OrderIndex = req.OrderIndex
	episode.ChapterSummary = req.ChapterSummary
	episode.UpdatedAt = &now

	if err := uow.EpisodeRepository().Update(ctx, episode); err != nil {
		return nil, err
	}
	return &dto.UpdateEpisodeResponse{Id: episode.Id}, nil
}

func (s *episodeService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	episode, err := uow.EpisodeRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if episode == nil {
		return serverutils.NewNotFoundError("episode not found")
	}
	return uow.EpisodeRepository().Delete(ctx, id)
}
