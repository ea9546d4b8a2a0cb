package handlers

import (
	"strconv"
	"strings"

	"patitas_backend/internal/services/dto"
	"patitas_backend/pkg/apperrors"
)

// DefaultPageToken is the back office's starting point.
const DefaultPageToken = dto.FamilyCaregivers + "-1"

// ParsePageToken splits an admin page token of the form `<family>-<page>`
// into its parts. The family must be a known entity family and the page a
// positive integer.
func ParsePageToken(token string) (family string, page int, err error) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return "", 0, apperrors.ErrInvalidPageToken
	}

	family = parts[0]
	switch family {
	case dto.FamilyCaregivers, dto.FamilyClients, dto.FamilyReviews, dto.FamilyContact:
	default:
		return "", 0, apperrors.ErrInvalidPageToken
	}

	page, convErr := strconv.Atoi(parts[1])
	if convErr != nil || page < 1 {
		return "", 0, apperrors.ErrInvalidPageToken
	}
	return family, page, nil
}
