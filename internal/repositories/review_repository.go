package repositories

import (
	"errors"

	"patitas_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

// AdminReviewRow is a review joined with both party names for the admin
// listing.
type AdminReviewRow struct {
	ID            uint   `json:"id"`
	CaregiverID   uint   `json:"cuidador_id"`
	ClientID      uint   `json:"cliente_id"`
	Text          string `json:"texto"`
	Rating        int    `json:"calificacion"`
	CaregiverName string `json:"cuidador_nombre"`
	ClientName    string `json:"cliente_nombre"`
}

// ClientReview is the public shape of a review: the text, the rating and
// the authoring client's name.
type ClientReview struct {
	Text       string `gorm:"column:texto" json:"texto"`
	Rating     int    `gorm:"column:calificacion" json:"calificacion"`
	ClientName string `gorm:"column:cliente_nombre" json:"cliente_nombre"`
}

type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id uint) error

	ListWithNames(limit, offset int) ([]AdminReviewRow, error)
	Count() (int64, error)
	ListByCaregiver(caregiverID uint) ([]ClientReview, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	result := r.db.Model(&models.Review{}).
		Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"caregiver_id": review.CaregiverID,
			"client_id":    review.ClientID,
			"text":         review.Text,
			"rating":       review.Rating,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepositoryImpl) ListWithNames(limit, offset int) ([]AdminReviewRow, error) {
	rows := make([]AdminReviewRow, 0)
	err := r.db.Model(&models.Review{}).
		Select(`reviews.id, reviews.caregiver_id, reviews.client_id, reviews.text,
			reviews.rating, cu.name AS caregiver_name, cl.name AS client_name`).
		Joins("JOIN users cu ON cu.id = reviews.caregiver_id").
		Joins("JOIN users cl ON cl.id = reviews.client_id").
		Order("reviews.id ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func (r *ReviewRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Count(&count).Error
	return count, err
}

// ListByCaregiver returns all reviews for one caregiver, newest first,
// joined with the authoring client's name.
func (r *ReviewRepositoryImpl) ListByCaregiver(caregiverID uint) ([]ClientReview, error) {
	rows := make([]ClientReview, 0)
	err := r.db.Model(&models.Review{}).
		Select("reviews.text AS texto, reviews.rating AS calificacion, u.name AS cliente_nombre").
		Joins("JOIN users u ON u.id = reviews.client_id").
		Where("reviews.caregiver_id = ?", caregiverID).
		Order("reviews.id DESC").
		Scan(&rows).Error
	return rows, err
}
