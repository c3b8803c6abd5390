package entity

import (
	"time"

	"github.com/google/uuid"
)

type Character struct {
	Id         uuid.UUID
	WorkId     uuid.UUID
	UserId     uuid.UUID
	Name       string
	Color      string
	Properties string // free-form JSON object serialized by the editor
	Memo       string
	AiSummary  string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
