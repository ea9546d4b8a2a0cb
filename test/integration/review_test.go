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

type reviewsPayload struct {
	Status string `json:"status"`
	Data   []struct {
		Text       string `json:"texto"`
		Rating     int    `json:"calificacion"`
		ClientName string `json:"cliente_nombre"`
	} `json:"data"`
}

func TestReviewsNewestFirst(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Diego Paseos", "diego@test.com")
	client := helpers.CreateUser(t, ts.DB, "Carla Gomez", "carla@test.com", "secret123", models.UserRoleClient)

	helpers.CreateReview(t, ts.DB, caregiver.ID, client.ID, "Primera resena", 3)
	helpers.CreateReview(t, ts.DB, caregiver.ID, client.ID, "Segunda resena", 5)

	res, body := ts.Get(t, fmt.Sprintf("/api/reviews/%d", caregiver.ID))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload reviewsPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "success", payload.Status)
	require.Len(t, payload.Data, 2)

	assert.Equal(t, "Segunda resena", payload.Data[0].Text)
	assert.Equal(t, 5, payload.Data[0].Rating)
	assert.Equal(t, "Carla Gomez", payload.Data[0].ClientName)
	assert.Equal(t, "Primera resena", payload.Data[1].Text)
}

func TestReviewsEmptyList(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Diego Paseos", "diego@test.com")

	res, body := ts.Get(t, fmt.Sprintf("/api/reviews/%d", caregiver.ID))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var payload reviewsPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "success", payload.Status)
	assert.NotNil(t, payload.Data)
	assert.Empty(t, payload.Data)

	// The raw body carries an empty array, not null.
	assert.Contains(t, body, `"data":[]`)
}
