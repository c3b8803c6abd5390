package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GraphLayout struct {
	WorkId    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Positions datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (GraphLayout) TableName() string {
	return "graph_layouts"
}
