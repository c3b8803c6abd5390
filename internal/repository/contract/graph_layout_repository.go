package contract

import (
	"context"

	"plot-editor-be/internal/entity"

	"github.com/google/uuid"
)

type GraphLayoutRepository interface {
	Upsert(ctx context.Context, layout *entity.GraphLayout) error
	FindByWorkId(ctx context.Context, workId uuid.UUID, userId uuid.UUID) (*entity.GraphLayout, error)
}
