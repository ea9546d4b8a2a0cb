package repositories

import (
	"errors"

	"patitas_backend/internal/models"
	"patitas_backend/internal/storage"

	"gorm.io/gorm"
)

var ErrCaregiverNotFound = errors.New("caregiver not found")

// CaregiverUpdate carries the fields an edit touches. A nil Photo means
// "leave the stored photo untouched". Services is the full replacement
// set; an empty slice clears all tags.
type CaregiverUpdate struct {
	Name        string
	Email       string
	Description string
	Location    string
	Lat         *float64
	Lng         *float64
	Rating      float64
	Photo       *storage.PhotoRef
	Services    []string
}

type CaregiverRepository interface {
	// CreateWithProfile inserts the user, its profile and its service tags
	// as one transaction. Any failure leaves no partial state.
	CreateWithProfile(user *models.User, profile *models.CaregiverProfile, services []string) error

	// UpdateWithProfile applies the edit as one transaction: user
	// name/email, profile upsert, photo only when supplied, and the full
	// service-tag replacement.
	UpdateWithProfile(userID uint, upd CaregiverUpdate) error

	// ReplaceServices swaps the whole tag set inside one transaction so no
	// reader observes the transiently empty set.
	ReplaceServices(userID uint, services []string) error

	// UpdatePhoto stores a new photo reference, leaving every other
	// profile field untouched.
	UpdatePhoto(userID uint, photo storage.PhotoRef) error

	FindProfileByUserID(userID uint) (*models.CaregiverProfile, error)
	ListWithProfiles(limit, offset int) ([]models.User, error)
	ListAll() ([]models.User, error)
}

type CaregiverRepositoryImpl struct {
	db *gorm.DB
}

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &CaregiverRepositoryImpl{db: db}
}

func (r *CaregiverRepositoryImpl) CreateWithProfile(user *models.User, profile *models.CaregiverProfile, services []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		return insertServices(tx, user.ID, services)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *CaregiverRepositoryImpl) UpdateWithProfile(userID uint, upd CaregiverUpdate) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND role = ?", userID, models.UserRoleCaregiver).
			Updates(map[string]interface{}{"name": upd.Name, "email": upd.Email})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCaregiverNotFound
		}

		columns := map[string]interface{}{
			"description": upd.Description,
			"location":    upd.Location,
			"lat":         upd.Lat,
			"lng":         upd.Lng,
			"rating":      upd.Rating,
		}
		if upd.Photo != nil {
			applyPhotoColumns(columns, *upd.Photo)
		}

		result = tx.Model(&models.CaregiverProfile{}).
			Where("user_id = ?", userID).
			Updates(columns)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Profile missing for an existing caregiver user: create it.
			profile := &models.CaregiverProfile{
				UserID:      userID,
				Description: upd.Description,
				Location:    upd.Location,
				Lat:         upd.Lat,
				Lng:         upd.Lng,
				Rating:      upd.Rating,
			}
			if upd.Photo != nil {
				applyPhotoFields(profile, *upd.Photo)
			}
			if err := tx.Create(profile).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("caregiver_id = ?", userID).
			Delete(&models.CaregiverService{}).Error; err != nil {
			return err
		}
		return insertServices(tx, userID, upd.Services)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *CaregiverRepositoryImpl) ReplaceServices(userID uint, services []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("caregiver_id = ?", userID).
			Delete(&models.CaregiverService{}).Error; err != nil {
			return err
		}
		return insertServices(tx, userID, services)
	})
}

func (r *CaregiverRepositoryImpl) UpdatePhoto(userID uint, photo storage.PhotoRef) error {
	columns := map[string]interface{}{}
	applyPhotoColumns(columns, photo)
	if len(columns) == 0 {
		return nil
	}

	result := r.db.Model(&models.CaregiverProfile{}).
		Where("user_id = ?", userID).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaregiverNotFound
	}
	return nil
}

func (r *CaregiverRepositoryImpl) FindProfileByUserID(userID uint) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaregiverNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *CaregiverRepositoryImpl) ListWithProfiles(limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("CaregiverProfile").Preload("Services").
		Where("role = ?", models.UserRoleCaregiver).
		Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *CaregiverRepositoryImpl) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("CaregiverProfile").Preload("Services").
		Where("role = ?", models.UserRoleCaregiver).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

func insertServices(tx *gorm.DB, userID uint, services []string) error {
	for _, service := range services {
		if service == "" {
			continue
		}
		row := models.CaregiverService{CaregiverID: userID, Service: service}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func applyPhotoColumns(columns map[string]interface{}, photo storage.PhotoRef) {
	switch photo.Kind {
	case storage.PhotoExternal:
		columns["photo_url"] = photo.URL
		columns["photo_data"] = nil
		columns["photo_content_type"] = ""
	case storage.PhotoInline:
		columns["photo_url"] = nil
		columns["photo_data"] = photo.Data
		columns["photo_content_type"] = photo.ContentType
	}
}

func applyPhotoFields(profile *models.CaregiverProfile, photo storage.PhotoRef) {
	switch photo.Kind {
	case storage.PhotoExternal:
		url := photo.URL
		profile.PhotoURL = &url
	case storage.PhotoInline:
		profile.PhotoData = photo.Data
		profile.PhotoContentType = photo.ContentType
	}
}
