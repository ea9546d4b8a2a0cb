package repositories

import (
	"errors"

	"patitas_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContactMessageNotFound = errors.New("contact message not found")

type ContactRepository interface {
	Create(message *models.ContactMessage) error
	Delete(id uint) error
	List(limit, offset int) ([]models.ContactMessage, error)
	Count() (int64, error)
	MarkRead(id uint) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *ContactRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}

// List returns messages newest first. The empty list is a list, never
// nil; it serializes as an empty JSON array.
func (r *ContactRepositoryImpl) List(limit, offset int) ([]models.ContactMessage, error) {
	messages := make([]models.ContactMessage, 0)
	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, err
}

func (r *ContactRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}

func (r *ContactRepositoryImpl) MarkRead(id uint) error {
	result := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}
