package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkRequest struct {
	Title string `json:"title" validate:"required"`
	Type  string `json:"type" validate:"required,oneof=plot novel"`
}

type CreateWorkResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateWorkRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required"`
	PlanningDoc string `json:"planning_doc"`
	WorkSummary string `json:"work_summary"`
}

type UpdateWorkResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowWorkResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Type        string     `json:"type"`
	PlanningDoc string     `json:"planning_doc"`
	WorkSummary string     `json:"work_summary"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
