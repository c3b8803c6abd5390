package model

import (
	"time"

	"github.com/google/uuid"
)

type Character struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkId     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Color      string    `gorm:"type:varchar(50)"`
	Properties string    `gorm:"type:text"`
	Memo       string    `gorm:"type:text"`
	AiSummary  string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  *time.Time
}

func (Character) TableName() string {
	return "characters"
}
