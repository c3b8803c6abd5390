package model

import (
	"time"

	"github.com/google/uuid"
)

type Relation struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkId          uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	FromCharacterId uuid.UUID `gorm:"type:uuid;not null;index"`
	ToCharacterId   uuid.UUID `gorm:"type:uuid;not null;index"`
	RelationName    string    `gorm:"type:varchar(255);not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Relation) TableName() string {
	return "relations"
}
