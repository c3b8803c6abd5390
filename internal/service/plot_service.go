package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"plot-editor-be/internal/dto"
	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/internal/pkg/serverutils"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"
	"plot-editor-be/pkg/blob"

	"github.com/google/uuid"
)

type IPlotService interface {
	GetAllByEpisode(ctx context.Context, userId uuid.UUID, episodeId uuid.UUID) ([]*dto.ShowPlotResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePlotRequest) (*dto.CreatePlotResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowPlotResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePlotRequest) (*dto.UpdatePlotResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	SaveContent(ctx context.Context, userId uuid.UUID, req *dto.SavePlotContentRequest) error
	GetContent(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]byte, error)
}

type plotService struct {
	uowFactory       unitofwork.RepositoryFactory
	blobStore        blob.Store
	publisherService IPublisherService
	log              logger.ILogger
}

func NewPlotService(
	uowFactory unitofwork.RepositoryFactory,
	blobStore blob.Store,
	publisherService IPublisherService,
	log logger.ILogger,
) IPlotService {
	return &plotService{
		uowFactory:       uowFactory,
		blobStore:        blobStore,
		publisherService: publisherService,
		log:              log,
	}
}

// ContentKey derives the blob key for a plot's document.
func ContentKey(userId, plotId uuid.UUID) string {
	return fmt.Sprintf("plots/%s/%s.json", userId, plotId)
}

func toShowPlotResponse(plot *entity.Plot) *dto.ShowPlotResponse {
	return &dto.ShowPlotResponse{
		Id:          plot.Id,
		EpisodeId:   plot.EpisodeId,
		Title:       plot.Title,
		OrderIndex:  plot.OrderIndex,
		PlotSummary: plot.PlotSummary,
		CreatedAt:   plot.CreatedAt,
		UpdatedAt:   plot.UpdatedAt,
	}
}

func (s *plotService) GetAllByEpisode(ctx context.Context, userId uuid.UUID, episodeId uuid.UUID) ([]*dto.ShowPlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plots, err := uow.PlotRepository().FindAll(ctx,
		specification.ByEpisodeID{EpisodeID: episodeId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "order_index"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowPlotResponse, len(plots))
	for i, plot := range plots {
		result[i] = toShowPlotResponse(plot)
	}
	return result, nil
}

func (s *plotService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreatePlotRequest) (*dto.CreatePlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	episode, err := uow.EpisodeRepository().FindOne(ctx,
		specification.ByID{ID: req.EpisodeId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if episode == nil {
		return nil, serverutils.NewNotFoundError("episode not found")
	}

	plot := entity.Plot{
		Id:         uuid.New(),
		EpisodeId:  req.EpisodeId,
		UserId:     userId,
		Title:      req.Title,
		OrderIndex: req.OrderIndex,
		CreatedAt:  time.Now(),
	}
	if err := uow.PlotRepository().Create(ctx, &plot); err != nil {
		return nil, err
	}

	return &dto.CreatePlotResponse{Id: plot.Id}, nil
}

func (s *plotService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowPlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plot, err := uow.PlotRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if plot == nil {
		return nil, serverutils.NewNotFoundError("plot not found")
	}
	return toShowPlotResponse(plot), nil
}

func (s *plotService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdatePlotRequest) (*dto.UpdatePlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plot, err := uow.PlotRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if plot == nil {
		return nil, serverutils.NewNotFoundError("plot not found")
	}

	now := time.Now()
	plot.Title = req.Title
	plot.OrderIndex = req.OrderIndex
	plot.PlotSummary = req.PlotSummary
	plot.UpdatedAt = &now

	if err := uow.PlotRepository().Update(ctx, plot); err != nil {
		return nil, err
	}
	return &dto.UpdatePlotResponse{Id: plot.Id}, nil
}

func (s *plotService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plot, err := uow.PlotRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if plot == nil {
		return serverutils.NewNotFoundError("plot not found")
	}

	if err := uow.PlotRepository().Delete(ctx, id); err != nil {
		return err
	}

	// Best effort; an orphaned blob is harmless.
	if plot.ContentKey != "" {
		if err := s.blobStore.Delete(ctx, plot.ContentKey); err != nil {
			s.log.Warn("PlotService", "content blob delete failed", map[string]interface{}{
				"plot_id": id,
				"key":     plot.ContentKey,
				"error":   err.Error(),
			})
		}
	}
	return nil
}

func (s *plotService) SaveContent(ctx context.Context, userId uuid.UUID, req *dto.SavePlotContentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plot, err := uow.PlotRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if plot == nil {
		return serverutils.NewNotFoundError("plot not found")
	}

	key := ContentKey(userId, plot.Id)
	if err := s.blobStore.Put(ctx, key, req.Content, "application/json"); err != nil {
		return err
	}

	if plot.ContentKey != key {
		now := time.Now()
		plot.ContentKey = key
		plot.UpdatedAt = &now
		if err := uow.PlotRepository().Update(ctx, plot); err != nil {
			return err
		}
	}

	s.publisherService.PublishPlotContentSaved(ctx, dto.PlotContentSavedMessage{
		UserId: userId,
		PlotId: plot.Id,
	})
	return nil
}

func (s *plotService) GetContent(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]byte, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plot, err := uow.PlotRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if plot == nil {
		return nil, serverutils.NewNotFoundError("plot not found")
	}

	if plot.ContentKey == "" {
		return []byte("{}"), nil
	}
	data, err := s.blobStore.Get(ctx, plot.ContentKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return []byte("{}"), nil
		}
		return nil, err
	}
	return data, nil
}
