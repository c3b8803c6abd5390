package model

import (
	"time"

	"github.com/google/uuid"
)

type Plot struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EpisodeId   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	OrderIndex  int       `gorm:"not null;default:0"`
	PlotSummary string    `gorm:"type:text"`
	ContentKey  string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   *time.Time
}

func (Plot) TableName() string {
	return "plots"
}
