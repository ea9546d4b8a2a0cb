package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"patitas_backend/internal/auth"
	"patitas_backend/internal/logger"
	"patitas_backend/internal/models"
	"patitas_backend/internal/pagination"
	"patitas_backend/internal/repositories"
	"patitas_backend/internal/services/dto"
	"patitas_backend/internal/storage"
	"patitas_backend/pkg/apperrors"
)

// PerPage is the fixed page size of every admin listing.
const PerPage = 5

// DefaultCaregiverPassword is assigned to caregivers created from the
// back office; they are expected to change it on first login.
const DefaultCaregiverPassword = "default_password"

type AdminService interface {
	Listing(family string, page int) (*dto.AdminListing, error)

	AddCaregiver(ctx context.Context, form *dto.CaregiverForm, photo *dto.PhotoUpload) error
	EditCaregiver(ctx context.Context, id uint, form *dto.CaregiverForm, photo *dto.PhotoUpload) error
	DeleteCaregiver(id uint) error

	AddClient(form *dto.ClientForm) error
	EditClient(id uint, form *dto.ClientForm) error
	DeleteClient(id uint) error

	AddReview(form *dto.ReviewForm) error
	EditReview(id uint, form *dto.ReviewForm) error
	DeleteReview(id uint) error

	DeleteContactMessage(id uint) error
	MarkContactMessageRead(id uint) error
}

type AdminServiceImpl struct {
	userRepo      repositories.UserRepository
	caregiverRepo repositories.CaregiverRepository
	reviewRepo    repositories.ReviewRepository
	contactRepo   repositories.ContactRepository
	photoStore    storage.PhotoStore
}

func NewAdminService(
	userRepo repositories.UserRepository,
	caregiverRepo repositories.CaregiverRepository,
	reviewRepo repositories.ReviewRepository,
	contactRepo repositories.ContactRepository,
	photoStore storage.PhotoStore,
) AdminService {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		caregiverRepo: caregiverRepo,
		reviewRepo:    reviewRepo,
		contactRepo:   contactRepo,
		photoStore:    photoStore,
	}
}

// --- Listing ---

func (s *AdminServiceImpl) Listing(family string, page int) (*dto.AdminListing, error) {
	listing := &dto.AdminListing{
		Family: family,
		Token:  fmt.Sprintf("%s-%d", family, page),
	}

	offset := (page - 1) * PerPage
	var total int64

	switch family {
	case dto.FamilyCaregivers:
		count, err := s.userRepo.CountByRole(models.UserRoleCaregiver)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		users, err := s.caregiverRepo.ListWithProfiles(PerPage, offset)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		items := make([]dto.CaregiverAdminItem, 0, len(users))
		for _, user := range users {
			items = append(items, dto.CaregiverAdminItem{
				CaregiverItem: caregiverItem(user),
				Email:         user.Email,
			})
		}
		listing.Caregivers = items
		total = count

	case dto.FamilyClients:
		count, err := s.userRepo.CountByRole(models.UserRoleClient)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		users, err := s.userRepo.FindByRole(models.UserRoleClient, PerPage, offset)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		items := make([]dto.ClientItem, 0, len(users))
		for _, user := range users {
			items = append(items, dto.ClientItem{ID: user.ID, Name: user.Name, Email: user.Email})
		}
		listing.Clients = items
		total = count

	case dto.FamilyReviews:
		count, err := s.reviewRepo.Count()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		rows, err := s.reviewRepo.ListWithNames(PerPage, offset)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		listing.Reviews = rows
		total = count

	case dto.FamilyContact:
		count, err := s.contactRepo.Count()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		messages, err := s.contactRepo.List(PerPage, offset)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		listing.Messages = messages
		total = count

	default:
		return nil, apperrors.ErrInvalidPageToken
	}

	window := pagination.New(page, PerPage, total)
	listing.Window = dto.PageWindow{
		Page:    page,
		Pages:   window.Pages(),
		Total:   total,
		HasPrev: window.HasPrev(),
		HasNext: window.HasNext(),
		PrevNum: window.PrevNum(),
		NextNum: window.NextNum(),
		Nav:     window.IterPagesDefault(),
	}

	allCaregivers, err := s.userRepo.ListNamesByRole(models.UserRoleCaregiver)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	allClients, err := s.userRepo.ListNamesByRole(models.UserRoleClient)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	listing.AllCaregivers = allCaregivers
	listing.AllClients = allClients

	return listing, nil
}

// --- Caregivers ---

func (s *AdminServiceImpl) AddCaregiver(ctx context.Context, form *dto.CaregiverForm, photo *dto.PhotoUpload) error {
	hashedPassword, err := auth.HashPassword(DefaultCaregiverPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleCaregiver,
	}
	profile := &models.CaregiverProfile{
		Description: strings.TrimSpace(form.Description),
		Location:    strings.TrimSpace(form.Location),
		Lat:         parseCoordinate(form.Lat),
		Lng:         parseCoordinate(form.Lng),
		Rating:      parseRatingOrZero(form.Rating),
	}

	if err := s.caregiverRepo.CreateWithProfile(user, profile, form.Services); err != nil {
		return translateUserError(err)
	}

	if photo != nil && len(photo.Data) > 0 {
		s.storeCaregiverPhoto(ctx, user.ID, photo)
	}
	return nil
}

func (s *AdminServiceImpl) EditCaregiver(ctx context.Context, id uint, form *dto.CaregiverForm, photo *dto.PhotoUpload) error {
	upd := repositories.CaregiverUpdate{
		Name:        form.Name,
		Email:       form.Email,
		Description: strings.TrimSpace(form.Description),
		Location:    strings.TrimSpace(form.Location),
		Lat:         parseCoordinate(form.Lat),
		Lng:         parseCoordinate(form.Lng),
		Rating:      parseRatingOrZero(form.Rating),
		Services:    form.Services,
	}

	// A supplied photo is stored first so the row update carries the new
	// reference; no photo means the stored one stays untouched.
	if photo != nil && len(photo.Data) > 0 {
		key := fmt.Sprintf("cuidadores/%d_%s", id, photo.Filename)
		ref, err := s.photoStore.Save(ctx, key, photo.Data, photo.ContentType)
		if err != nil {
			return apperrors.InternalError(err)
		}
		upd.Photo = &ref
	}

	if err := s.caregiverRepo.UpdateWithProfile(id, upd); err != nil {
		if apperrors.Is(err, repositories.ErrCaregiverNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return translateUserError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteCaregiver(id uint) error {
	return s.deleteUser(id)
}

// --- Clients ---

func (s *AdminServiceImpl) AddClient(form *dto.ClientForm) error {
	if err := auth.ValidatePassword(form.Password); err != nil {
		return apperrors.ErrWeakPassword
	}
	hashedPassword, err := auth.HashPassword(form.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleClient,
	}
	if err := s.userRepo.Create(user); err != nil {
		return translateUserError(err)
	}
	return nil
}

func (s *AdminServiceImpl) EditClient(id uint, form *dto.ClientForm) error {
	if err := s.userRepo.UpdateNameEmail(id, form.Name, form.Email); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return translateUserError(err)
	}

	// Empty password means "leave unchanged".
	if form.Password != "" {
		hashedPassword, err := auth.HashPassword(form.Password)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.userRepo.UpdatePassword(id, hashedPassword); err != nil {
			return apperrors.InternalError(err)
		}
	}
	return nil
}

func (s *AdminServiceImpl) DeleteClient(id uint) error {
	return s.deleteUser(id)
}

// --- Reviews ---

func (s *AdminServiceImpl) AddReview(form *dto.ReviewForm) error {
	review, err := reviewFromForm(form)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) EditReview(id uint, form *dto.ReviewForm) error {
	review, err := reviewFromForm(form)
	if err != nil {
		return err
	}
	review.ID = id
	if err := s.reviewRepo.Update(review); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) DeleteReview(id uint) error {
	if err := s.reviewRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Contact ---

func (s *AdminServiceImpl) DeleteContactMessage(id uint) error {
	if err := s.contactRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrContactMessageNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) MarkContactMessageRead(id uint) error {
	if err := s.contactRepo.MarkRead(id); err != nil {
		if apperrors.Is(err, repositories.ErrContactMessageNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helpers ---

func (s *AdminServiceImpl) deleteUser(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) storeCaregiverPhoto(ctx context.Context, userID uint, photo *dto.PhotoUpload) {
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

// reviewFromForm parses and bounds-checks the rating. The form value may
// be a float; it is rounded to the 1..5 integer scale.
func reviewFromForm(form *dto.ReviewForm) (*models.Review, error) {
	raw, err := strconv.ParseFloat(form.Rating, 64)
	if err != nil {
		return nil, apperrors.ErrInvalidRating
	}
	rating := int(math.Round(raw))
	if rating < 1 || rating > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	return &models.Review{
		CaregiverID: form.CaregiverID,
		ClientID:    form.ClientID,
		Text:        form.Text,
		Rating:      rating,
	}, nil
}

func parseRatingOrZero(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
