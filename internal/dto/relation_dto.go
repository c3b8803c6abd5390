package dto

import (
	"github.com/google/uuid"
)

type CreateRelationRequest struct {
	WorkId          uuid.UUID `json:"work_id" validate:"required"`
	FromCharacterId uuid.UUID `json:"from_character_id" validate:"required"`
	ToCharacterId   uuid.UUID `json:"to_character_id" validate:"required"`
	RelationName    string    `json:"relation_name" validate:"required"`
}

type CreateRelationResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateRelationRequest struct {
	Id           uuid.UUID
	RelationName string `json:"relation_name" validate:"required"`
}

type UpdateRelationResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowRelationResponse struct {
	Id              uuid.UUID `json:"id"`
	WorkId          uuid.UUID `json:"work_id"`
	FromCharacterId uuid.UUID `json:"from_character_id"`
	ToCharacterId   uuid.UUID `json:"to_character_id"`
	RelationName    string    `json:"relation_name"`
}
