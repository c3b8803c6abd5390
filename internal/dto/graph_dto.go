package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SaveGraphLayoutRequest struct {
	WorkId    uuid.UUID
	Positions json.RawMessage `json:"positions" validate:"required"`
}

type ShowGraphLayoutResponse struct {
	WorkId    uuid.UUID       `json:"work_id"`
	Positions json.RawMessage `json:"positions"`
	UpdatedAt time.Time       `json:"updated_at"`
}
