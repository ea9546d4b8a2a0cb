package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"patitas_backend/internal/models"
	"patitas_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardPayload struct {
	Caregivers []struct {
		ID       uint     `json:"id"`
		Name     string   `json:"nombre"`
		Location string   `json:"ubicacion"`
		Photo    string   `json:"foto"`
		Services []string `json:"servicios"`
	} `json:"cuidadores"`
}

func TestDashboardListsCaregivers(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Diego Paseos", "diego@test.com", "paseos", "guarderia")
	helpers.CreateCaregiver(t, ts.DB, "Ana Sin Servicios", "ana@test.com")
	helpers.CreateAndLoginUser(t, ts, "Cliente", "cliente@test.com", "secret123", models.UserRoleClient)

	res, body := ts.Get(t, "/dashboard")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload dashboardPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Len(t, payload.Caregivers, 2)

	first := payload.Caregivers[0]
	assert.Equal(t, caregiver.ID, first.ID)
	assert.Equal(t, "Diego Paseos", first.Name)
	assert.Equal(t, "Palermo, CABA", first.Location)
	assert.Equal(t, fmt.Sprintf("/api/foto/%d", caregiver.ID), first.Photo)
	assert.ElementsMatch(t, []string{"paseos", "guarderia"}, first.Services)

	// No service tags means an empty list, never null.
	second := payload.Caregivers[1]
	assert.NotNil(t, second.Services)
	assert.Empty(t, second.Services)
}

func TestPhotoFallsBackToPlaceholder(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Diego Paseos", "diego@test.com")
	helpers.CreateAndLoginUser(t, ts, "Cliente", "cliente@test.com", "secret123", models.UserRoleClient)

	res, _ := ts.Get(t, fmt.Sprintf("/api/foto/%d", caregiver.ID))
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Contains(t, res.Header.Get("Location"), "placeholder")

	// Unknown caregiver gets the placeholder too, not an error.
	res, _ = ts.Get(t, "/api/foto/999999")
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Contains(t, res.Header.Get("Location"), "placeholder")
}

func TestPhotoServesExternalURLAndInlineBytes(t *testing.T) {
	ts := newServer(t)
	external := helpers.CreateCaregiver(t, ts.DB, "Con Foto URL", "url@test.com")
	inline := helpers.CreateCaregiver(t, ts.DB, "Con Foto Blob", "blob@test.com")
	helpers.CreateAndLoginUser(t, ts, "Cliente", "cliente@test.com", "secret123", models.UserRoleClient)

	photoURL := "https://bucket.nyc3.digitaloceanspaces.com/cuidadores/1_a.jpg"
	require.NoError(t, ts.DB.Model(&models.CaregiverProfile{}).
		Where("user_id = ?", external.ID).
		Update("photo_url", photoURL).Error)

	require.NoError(t, ts.DB.Model(&models.CaregiverProfile{}).
		Where("user_id = ?", inline.ID).
		Updates(map[string]interface{}{
			"photo_data":         []byte{0xFF, 0xD8, 0xFF},
			"photo_content_type": "image/jpeg",
		}).Error)

	res, _ := ts.Get(t, fmt.Sprintf("/api/foto/%d", external.ID))
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, photoURL, res.Header.Get("Location"))

	res, body := ts.Get(t, fmt.Sprintf("/api/foto/%d", inline.ID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/jpeg", res.Header.Get("Content-Type"))
	assert.Equal(t, string([]byte{0xFF, 0xD8, 0xFF}), body)
}
