package blob

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentBlob is the backing row for one stored blob.
type DocumentBlob struct {
	Key         string    `gorm:"type:varchar(512);primaryKey"`
	Data        []byte    `gorm:"type:bytea;not null"`
	ContentType string    `gorm:"type:varchar(128)"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (DocumentBlob) TableName() string {
	return "document_blobs"
}

// GormStore persists blobs in Postgres. Documents are overwritten wholesale
// on every save; there is no versioning.
type GormStore struct {
	db *gorm.DB
}

var _ Store = &GormStore{}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row DocumentBlob
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.Data, nil
}

func (s *GormStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	row := DocumentBlob{
		Key:         key,
		Data:        data,
		ContentType: contentType,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "content_type", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&DocumentBlob{}, "key = ?", key).Error
}
