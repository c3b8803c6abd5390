package model

import (
	"time"

	"github.com/google/uuid"
)

type Work struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(50);not null;default:'plot'"`
	PlanningDoc string    `gorm:"type:text"`
	WorkSummary string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time
}

func (Work) TableName() string {
	return "works"
}
