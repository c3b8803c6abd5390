// Package summary implements the summarization core: hierarchy aggregation
// of extraction signal and context assembly for the text-generation backend.
package summary

import (
	"context"

	"github.com/google/uuid"

	"plot-editor-be/internal/entity"
	"plot-editor-be/pkg/tiptap"
)

// Store is the narrow persistence surface the aggregator needs. It is
// implemented over the repositories and the blob store in production and
// with in-memory fakes in tests. All lookups are scoped to the owning user.
type Store interface {
	Work(ctx context.Context, userId, workId uuid.UUID) (*entity.Work, error)
	Episode(ctx context.Context, userId, episodeId uuid.UUID) (*entity.Episode, error)
	Plot(ctx context.Context, userId, plotId uuid.UUID) (*entity.Plot, error)
	Character(ctx context.Context, userId, characterId uuid.UUID) (*entity.Character, error)

	Episodes(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Episode, error)
	Plots(ctx context.Context, userId, episodeId uuid.UUID) ([]*entity.Plot, error)
	Characters(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Character, error)
	Relations(ctx context.Context, userId, workId uuid.UUID) ([]*entity.Relation, error)

	// Document fetches and decodes a plot's document body by blob key.
	Document(ctx context.Context, key string) ([]tiptap.Node, error)
}
