package entity

import (
	"time"

	"github.com/google/uuid"
)

// Work is a top-level creative project. Type decides how summarization
// signal is gathered: dialogue extraction for "plot" works, full chapter
// text for "novel" works.
type Work struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Type        string // constant.WorkTypePlot | constant.WorkTypeNovel
	PlanningDoc string
	WorkSummary string // rolling cache, refined incrementally
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
