package contract

import (
	"context"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlotRepository interface {
	Create(ctx context.Context, plot *entity.Plot) error
	Update(ctx context.Context, plot *entity.Plot) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plot, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
