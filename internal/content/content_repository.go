// internal/content/content_repository.go
package content

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	AllSettings() ([]Setting, error)
	UpsertSetting(key, value string) (*Setting, error)

	SaveMessage(msg *ContactMessage) (*ContactMessage, error)
	AllMessages() ([]ContactMessage, error)
	DeleteMessage(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AllSettings() ([]Setting, error) {
	var settings []Setting
	if err := r.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpsertSetting membuat atau menimpa satu key konten secara atomik.
func (r *repository) UpsertSetting(key, value string) (*Setting, error) {
	setting := Setting{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}

	var saved Setting
	if err := r.db.First(&saved, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *repository) SaveMessage(msg *ContactMessage) (*ContactMessage, error) {
	if err := r.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *repository) AllMessages() ([]ContactMessage, error) {
	var messages []ContactMessage
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *repository) DeleteMessage(id uint) error {
	res := r.db.Delete(&ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if errors.Is(res.Error, gorm.ErrRecordNotFound) || res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
