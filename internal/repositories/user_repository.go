package repositories

import (
	"errors"

	"patitas_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateNameEmail(id uint, name, email string) error
	UpdatePassword(id uint, passwordHash string) error
	Delete(id uint) error

	FindByRole(role models.UserRole, limit, offset int) ([]models.User, error)
	CountByRole(role models.UserRole) (int64, error)
	ListNamesByRole(role models.UserRole) ([]UserName, error)
}

// UserName is the id+name pair the admin view feeds its selectors with.
type UserName struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("CaregiverProfile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("CaregiverProfile").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts the user. The unique index on email is the authoritative
// uniqueness check; its violation comes back as ErrEmailTaken.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateNameEmail(id uint, name, email string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "email": email})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(id uint, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user row. Profile, service tags and reviews fall with
// it through the ON DELETE CASCADE constraints.
func (r *UserRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindByRole(role models.UserRole, limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).
		Order("id ASC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) ListNamesByRole(role models.UserRole) ([]UserName, error) {
	var names []UserName
	err := r.db.Model(&models.User{}).
		Select("id, name").
		Where("role = ?", role).
		Order("name ASC").
		Scan(&names).Error
	return names, err
}
