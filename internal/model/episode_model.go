package model

import (
	"time"

	"github.com/google/uuid"
)

type Episode struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkId         uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	OrderIndex     int       `gorm:"not null;default:0"`
	ChapterSummary string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      *time.Time
}

func (Episode) TableName() string {
	return "episodes"
}
