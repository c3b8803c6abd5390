package contract

import (
	"context"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WorkRepository interface {
	Create(ctx context.Context, work *entity.Work) error
	Update(ctx context.Context, work *entity.Work) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Work, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Work, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
