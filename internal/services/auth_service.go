package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"patitas_backend/internal/auth"
	"patitas_backend/internal/logger"
	"patitas_backend/internal/models"
	"patitas_backend/internal/repositories"
	"patitas_backend/internal/services/dto"
	"patitas_backend/internal/storage"
	"patitas_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, photo *dto.PhotoUpload) error
	Login(email, password string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
	photoStore    storage.PhotoStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	photoStore storage.PhotoStore,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		caregiverRepo: caregiverRepo,
		photoStore:    photoStore,
	}
}

// Register creates the user and, for caregivers, the profile and service
// tags in the same transaction. The unique index on email is the
// authoritative duplicate check.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, photo *dto.PhotoUpload) error {
	role := models.UserRole(req.Role)
	if role != models.UserRoleClient && role != models.UserRoleCaregiver {
		return apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if role != models.UserRoleCaregiver {
		if err := s.userRepo.Create(user); err != nil {
			return translateUserError(err)
		}
		return nil
	}

	profile := &models.CaregiverProfile{
		Description: strings.TrimSpace(req.Description),
		Location:    joinLocation(req.Locality, req.District),
		Lat:         parseCoordinate(req.Lat),
		Lng:         parseCoordinate(req.Lng),
	}

	if err := s.caregiverRepo.CreateWithProfile(user, profile, req.Services); err != nil {
		return translateUserError(err)
	}

	// Photo upload happens after the transaction: the object key carries
	// the user id. A failed upload leaves a photo-less profile, not a
	// failed registration.
	if photo != nil && len(photo.Data) > 0 {
		s.attachPhoto(ctx, user.ID, photo)
	}

	return nil
}

// Login verifies credentials. Every failure maps to the same
// invalid-credentials error so the response never discloses which field
// was wrong.
func (s *AuthServiceImpl) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthServiceImpl) attachPhoto(ctx context.Context, userID uint, photo *dto.PhotoUpload) {
	key := fmt.Sprintf("cuidadores/%d_%s", userID, photo.Filename)
	ref, err := s.photoStore.Save(ctx, key, photo.Data, photo.ContentType)
	if err != nil {
		logger.CtxWarn(ctx, "failed to store caregiver photo", "user_id", userID, "error", err.Error())
		return
	}

	if err := s.caregiverRepo.UpdatePhoto(userID, ref); err != nil {
		logger.CtxWarn(ctx, "failed to attach caregiver photo", "user_id", userID, "error", err.Error())
	}
}

func translateUserError(err error) error {
	if apperrors.Is(err, repositories.ErrEmailTaken) {
		return apperrors.ErrEmailAlreadyExists
	}
	return apperrors.InternalError(err)
}

func joinLocation(locality, district string) string {
	return strings.Trim(strings.TrimSpace(locality)+", "+strings.TrimSpace(district), ", ")
}

// parseCoordinate degrades unparsable values to nil, not an error.
func parseCoordinate(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
