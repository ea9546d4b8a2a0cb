package services

import (
	"fmt"

	"patitas_backend/internal/models"
	"patitas_backend/internal/repositories"
	"patitas_backend/internal/services/dto"
	"patitas_backend/internal/storage"
	"patitas_backend/pkg/apperrors"
)

type DirectoryService interface {
	// ListCaregivers returns every caregiver card for the dashboard.
	ListCaregivers() ([]dto.CaregiverItem, error)

	// CaregiverPhoto resolves the photo for one caregiver. A missing
	// profile or missing photo yields the None variant, never an error.
	CaregiverPhoto(userID uint) (storage.PhotoRef, error)
}

type DirectoryServiceImpl struct {
	caregiverRepo repositories.CaregiverRepository
}

func NewDirectoryService(caregiverRepo repositories.CaregiverRepository) DirectoryService {
	return &DirectoryServiceImpl{caregiverRepo: caregiverRepo}
}

func (s *DirectoryServiceImpl) ListCaregivers() ([]dto.CaregiverItem, error) {
	users, err := s.caregiverRepo.ListAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CaregiverItem, 0, len(users))
	for _, user := range users {
		items = append(items, caregiverItem(user))
	}
	return items, nil
}

func (s *DirectoryServiceImpl) CaregiverPhoto(userID uint) (storage.PhotoRef, error) {
	profile, err := s.caregiverRepo.FindProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCaregiverNotFound) {
			return storage.NoPhoto(), nil
		}
		return storage.NoPhoto(), apperrors.InternalError(err)
	}

	return storage.PhotoFromRow(profile.PhotoURL, profile.PhotoData, profile.PhotoContentType), nil
}

// caregiverItem flattens a caregiver user with its profile and tags into a
// directory card. Caregivers without a profile get an empty card rather
// than being dropped.
func caregiverItem(user models.User) dto.CaregiverItem {
	item := dto.CaregiverItem{
		ID:       user.ID,
		Name:     user.Name,
		Photo:    fmt.Sprintf("/api/foto/%d", user.ID),
		Services: serviceNames(user.Services),
	}
	if p := user.CaregiverProfile; p != nil {
		item.Description = p.Description
		item.Location = p.Location
		item.Lat = p.Lat
		item.Lng = p.Lng
		item.Rating = p.Rating
	}
	return item
}

func serviceNames(services []models.CaregiverService) []string {
	// Empty list, never nil: callers serialize this straight to JSON.
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Service)
	}
	return names
}
