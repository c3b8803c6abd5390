package service

import (
	"context"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/repository/specification"
	"plot-editor-be/internal/repository/unitofwork"
	"plot-editor-be/pkg/blob"
	"plot-editor-be/pkg/summary"
	"plot-editor-be/pkg/tiptap"

	"github.com/google/uuid"
)

// summaryStore adapts the repositories and the blob store to the narrow
// summary.Store surface the aggregator reads from.
type summaryStore struct {
	uowFactory unitofwork.RepositoryFactory
	blobStore  blob.Store
}

func NewSummaryStore(uowFactory unitofwork.RepositoryFactory, blobStore blob.Store) summary.Store {
	return &summaryStore{
		uowFactory: uowFactory,
		blobStore:  blobStore,
	}
}

func (s *summaryStore) Work(ctx context.Context, userId, workId uuid.UUID) (*entity.Work, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.WorkRepository().FindOne(ctx,
		specification.ByID{ID: workId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Episode(ctx context.Context, userId, episodeId uuid.UUID) (*entity.Episode, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EpisodeRepository().FindOne(ctx,
		specification.ByID{ID: episodeId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Plot(ctx context.Context, userId, plotId uuid.UUID) (*entity.Plot, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PlotRepository().FindOne(ctx,
		specification.ByID{ID: plotId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Character(ctx context.Context, userId, characterId uuid.UUID) (*entity.Character, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CharacterRepository().FindOne(ctx,
		specification.ByID{ID: characterId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Episodes(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Episode, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EpisodeRepository().FindAll(ctx,
		specification.ByWorkID{WorkID: workId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Plots(ctx context.Context, userId, episodeId uuid.UUID) ([]*entity.Plot, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PlotRepository().FindAll(ctx,
		specification.ByEpisodeID{EpisodeID: episodeId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Characters(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Character, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CharacterRepository().FindAll(ctx,
		specification.ByWorkID{WorkID: workId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Relations(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Relation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.RelationRepository().FindAll(ctx,
		specification.ByWorkID{WorkID: workId},
		specification.UserOwnedBy{UserID: userId},
	)
}

func (s *summaryStore) Document(ctx context.Context, key string) ([]tiptap.Node, error) {
	data, err := s.blobStore.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	doc, err := tiptap.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return doc.Content, nil
}
