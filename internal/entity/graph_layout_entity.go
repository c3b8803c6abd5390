package entity

import (
	"time"

	"github.com/google/uuid"
)

// GraphLayout stores the client's node positions for a work's relation
// graph. Positions is opaque JSON owned by the frontend.
type GraphLayout struct {
	WorkId    uuid.UUID
	UserId    uuid.UUID
	Positions []byte
	UpdatedAt time.Time
}
