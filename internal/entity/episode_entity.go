package entity

import (
	"time"

	"github.com/google/uuid"
)

type Episode struct {
	Id             uuid.UUID
	WorkId         uuid.UUID
	UserId         uuid.UUID
	Title          string
	OrderIndex     int
	ChapterSummary string // cache, cleared when underlying content changes
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
