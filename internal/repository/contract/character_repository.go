package contract

import (
	"context"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CharacterRepository interface {
	Create(ctx context.Context, character *entity.Character) error
	Update(ctx context.Context, character *entity.Character) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Character, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Character, error)
}
