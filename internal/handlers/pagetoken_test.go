package handlers

import (
	"testing"

	"patitas_backend/internal/services/dto"
	"patitas_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageTokenValid(t *testing.T) {
	tests := []struct {
		token  string
		family string
		page   int
	}{
		{"cu-1", dto.FamilyCaregivers, 1},
		{"cl-3", dto.FamilyClients, 3},
		{"re-10", dto.FamilyReviews, 10},
		{"co-42", dto.FamilyContact, 42},
	}

	for _, tt := range tests {
		family, page, err := ParsePageToken(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.family, family)
		assert.Equal(t, tt.page, page)
	}
}

func TestParsePageTokenInvalid(t *testing.T) {
	tokens := []string{
		"",
		"cu",
		"xx-1",
		"cu-0",
		"cu--1",
		"cu-abc",
		"1-cu",
		"cuidadores-1",
	}

	for _, token := range tokens {
		_, _, err := ParsePageToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPageToken, "token %q", token)
	}
}

func TestDefaultPageTokenRoundTrips(t *testing.T) {
	family, page, err := ParsePageToken(DefaultPageToken)
	require.NoError(t, err)
	assert.Equal(t, dto.FamilyCaregivers, family)
	assert.Equal(t, 1, page)
}
