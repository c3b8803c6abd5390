package contract

import (
	"context"

	"plot-editor-be/internal/entity"
	"plot-editor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RelationRepository interface {
	Create(ctx context.Context, relation *entity.Relation) error
	Update(ctx context.Context, relation *entity.Relation) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByCharacterId(ctx context.Context, characterId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Relation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Relation, error)
}
