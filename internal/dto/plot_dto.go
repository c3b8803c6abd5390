package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePlotRequest struct {
	EpisodeId  uuid.UUID `json:"episode_id" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	OrderIndex int       `json:"order_index"`
}

type CreatePlotResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePlotRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required"`
	OrderIndex  int    `json:"order_index"`
	PlotSummary string `json:"plot_summary"`
}

type UpdatePlotResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowPlotResponse struct {
	Id          uuid.UUID  `json:"id"`
	EpisodeId   uuid.UUID  `json:"episode_id"`
	Title       string     `json:"title"`
	OrderIndex  int        `json:"order_index"`
	PlotSummary string     `json:"plot_summary"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// SavePlotContentRequest carries a raw editor document. It is stored
// verbatim, so no shape validation happens here.
type SavePlotContentRequest struct {
	Id      uuid.UUID
	Content []byte
}
