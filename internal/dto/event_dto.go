package dto

import "github.com/google/uuid"

// PlotContentSavedMessage is published when a plot's document is saved so
// cached summaries up the hierarchy can be invalidated.
type PlotContentSavedMessage struct {
	UserId uuid.UUID `json:"user_id"`
	PlotId uuid.UUID `json:"plot_id"`
}
