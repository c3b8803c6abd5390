package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEpisodeRequest struct {
	WorkId     uuid.UUID `json:"work_id" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	OrderIndex int       `json:"order_index"`
}

type CreateEpisodeResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateEpisodeRequest struct {
	Id             uuid.UUID
	Title          string `json:"title" validate:"required"`
	OrderIndex     int    `json:"order_index"`
	ChapterSummary string `json:"chapter_summary"`
}

type UpdateEpisodeResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowEpisodeResponse struct {
	Id             uuid.UUID  `json:"id"`
	WorkId         uuid.UUID  `json:"work_id"`
	Title          string     `json:"title"`
	OrderIndex     int        `json:"order_index"`
	ChapterSummary string     `json:"chapter_summary"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}
