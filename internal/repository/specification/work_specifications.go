package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByWorkID struct {
	WorkID uuid.UUID
}

func (s ByWorkID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("work_id = ?", s.WorkID)
}

type ByEpisodeID struct {
	EpisodeID uuid.UUID
}

func (s ByEpisodeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("episode_id = ?", s.EpisodeID)
}

type BySubject struct {
	Subject string
}

func (s BySubject) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subject = ?", s.Subject)
}
