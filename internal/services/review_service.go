package services

import (
	"patitas_backend/internal/repositories"
	"patitas_backend/pkg/apperrors"
)

type ReviewService interface {
	ListByCaregiver(caregiverID uint) ([]repositories.ClientReview, error)
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo}
}

// ListByCaregiver returns the caregiver's reviews newest first. A caregiver
// with no reviews yields an empty list, not an error.
func (s *ReviewServiceImpl) ListByCaregiver(caregiverID uint) ([]repositories.ClientReview, error) {
	rows, err := s.reviewRepo.ListByCaregiver(caregiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return rows, nil
}
