package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plot is an ordered subdivision of an episode holding one editor document.
// ContentKey points at the document body in the blob store; it is empty
// until the first save.
type Plot struct {
	Id          uuid.UUID
	EpisodeId   uuid.UUID
	UserId      uuid.UUID
	Title       string
	OrderIndex  int
	PlotSummary string
	ContentKey  string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
