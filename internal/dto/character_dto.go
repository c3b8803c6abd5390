package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCharacterRequest struct {
	WorkId     uuid.UUID `json:"work_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Color      string    `json:"color"`
	Properties string    `json:"properties"`
	Memo       string    `json:"memo"`
}

type CreateCharacterResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCharacterRequest struct {
	Id         uuid.UUID
	Name       string `json:"name" validate:"required"`
	Color      string `json:"color"`
	Properties string `json:"properties"`
	Memo       string `json:"memo"`
	AiSummary  string `json:"ai_summary"`
}

type UpdateCharacterResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowCharacterResponse struct {
	Id         uuid.UUID  `json:"id"`
	WorkId     uuid.UUID  `json:"work_id"`
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	Properties string     `json:"properties"`
	Memo       string     `json:"memo"`
	AiSummary  string     `json:"ai_summary"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type CharacterDialogueLine struct {
	EpisodeTitle string    `json:"episode_title"`
	PlotTitle    string    `json:"plot_title"`
	PlotId       uuid.UUID `json:"plot_id"`
	Text         string    `json:"text"`
}
