package contract

import (
	"context"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EpisodeRepository interface {
	Create(ctx context.Context, episode *entity.Episode) error
	Update(ctx context.Context, episode *entity.Episode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Episode, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Episode, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
