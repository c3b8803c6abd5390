package unitofwork

import (
	"context"

	"plot-editor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WorkRepository() contract.WorkRepository
	EpisodeRepository() contract.EpisodeRepository
	PlotRepository() contract.PlotRepository
	CharacterRepository() contract.CharacterRepository
	RelationRepository() contract.RelationRepository
	GraphLayoutRepository() contract.GraphLayoutRepository
}
