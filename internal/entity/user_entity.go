package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	Email     string
	Name      string
	Subject   string // identity-provider subject claim
	CreatedAt time.Time
	UpdatedAt *time.Time
}
