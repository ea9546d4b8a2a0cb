package helpers

import (
	"net/http"
	"net/url"
	"testing"

	"patitas_backend/internal/auth"
	"patitas_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the raw password it arrives with.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err, "hashing test password")

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error, "creating test user %s", email)
	return user
}

// CreateCaregiver inserts a caregiver with a profile and service tags.
func CreateCaregiver(t *testing.T, db *gorm.DB, name, email string, services ...string) *models.User {
	user := CreateUser(t, db, name, email, "password123", models.UserRoleCaregiver)

	profile := &models.CaregiverProfile{
		UserID:      user.ID,
		Description: "Cuido mascotas los fines de semana.",
		Location:    "Palermo, CABA",
		Rating:      4.5,
	}
	require.NoError(t, db.Create(profile).Error, "creating caregiver profile")

	for _, service := range services {
		tag := &models.CaregiverService{CaregiverID: user.ID, Service: service}
		require.NoError(t, db.Create(tag).Error, "creating service tag")
	}
	return user
}

// CreateReview inserts a review row directly.
func CreateReview(t *testing.T, db *gorm.DB, caregiverID, clientID uint, text string, rating int) *models.Review {
	review := &models.Review{
		CaregiverID: caregiverID,
		ClientID:    clientID,
		Text:        text,
		Rating:      rating,
	}
	require.NoError(t, db.Create(review).Error, "creating review")
	return review
}

// Login signs the test client in through the real endpoint. The session
// cookie lands in the client's jar.
func Login(t *testing.T, ts *TestServer, email, password string) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	res, body := ts.PostForm(t, "/login", form)
	require.Equal(t, http.StatusFound, res.StatusCode, "login should redirect, got body: %s", body)
}

// CreateAndLoginUser inserts a user and signs the client in as them.
func CreateAndLoginUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) *models.User {
	user := CreateUser(t, ts.DB, name, email, password, role)
	Login(t, ts, email, password)
	return user
}
