package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"patitas_backend/internal/models"
	"patitas_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginAdmin(t *testing.T, ts *helpers.TestServer) *models.User {
	return helpers.CreateAndLoginUser(t, ts, "Admin", "admin@test.com", "secret123", models.UserRoleAdmin)
}

type adminListing struct {
	Family string `json:"type"`
	Token  string `json:"current_page"`
	Window struct {
		Page    int   `json:"page"`
		Pages   int   `json:"pages"`
		Total   int64 `json:"total"`
		HasPrev bool  `json:"has_prev"`
		HasNext bool  `json:"has_next"`
		Nav     []int `json:"nav"`
	} `json:"pagination"`
	Caregivers []struct {
		ID    uint   `json:"id"`
		Name  string `json:"nombre"`
		Email string `json:"email"`
	} `json:"cuidadores"`
	Clients []struct {
		ID    uint   `json:"id"`
		Name  string `json:"nombre"`
		Email string `json:"email"`
	} `json:"clientes"`
	AllCaregivers []struct {
		ID   uint   `json:"id"`
		Name string `json:"nombre"`
	} `json:"all_cuidadores"`
	AllClients []struct {
		ID   uint   `json:"id"`
		Name string `json:"nombre"`
	} `json:"all_clientes"`
}

func getListing(t *testing.T, ts *helpers.TestServer, path string) adminListing {
	res, body := ts.Get(t, path)
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)
	var listing adminListing
	require.NoError(t, json.Unmarshal([]byte(body), &listing))
	return listing
}

func TestAdminDefaultListing(t *testing.T) {
	ts := newServer(t)
	for i := 0; i < 7; i++ {
		helpers.CreateCaregiver(t, ts.DB, fmt.Sprintf("Cuidador %d", i), fmt.Sprintf("cuidador%d@test.com", i))
	}
	loginAdmin(t, ts)

	listing := getListing(t, ts, "/admin/")
	assert.Equal(t, "cu", listing.Family)
	assert.Equal(t, "cu-1", listing.Token)
	assert.Len(t, listing.Caregivers, 5)
	assert.EqualValues(t, 7, listing.Window.Total)
	assert.Equal(t, 2, listing.Window.Pages)
	assert.False(t, listing.Window.HasPrev)
	assert.True(t, listing.Window.HasNext)
	assert.Equal(t, []int{1, 2}, listing.Window.Nav)
	assert.Len(t, listing.AllCaregivers, 7)

	second := getListing(t, ts, "/admin/page/cu-2")
	assert.Len(t, second.Caregivers, 2)
	assert.True(t, second.Window.HasPrev)
	assert.False(t, second.Window.HasNext)
}

func TestAdminInvalidPageTokenRedirects(t *testing.T) {
	ts := newServer(t)
	loginAdmin(t, ts)

	for _, token := range []string{"xx-1", "cu-0", "garbage"} {
		res, _ := ts.Get(t, "/admin/page/"+token)
		require.Equal(t, http.StatusFound, res.StatusCode, "token %q", token)
		assert.Contains(t, res.Header.Get("Location"), "/admin/", "token %q", token)
	}
}

func TestAdminGateRedirectsNonAdmins(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Cuidador", "cuidador@test.com", "paseos")
	helpers.CreateAndLoginUser(t, ts, "Cliente", "cliente@test.com", "secret123", models.UserRoleClient)

	res, _ := ts.Get(t, "/admin/")
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))

	// Mutating routes bounce the same way, leaving the rows untouched.
	form := url.Values{}
	form.Set("source_page", "cu-1")
	res, _ = ts.PostForm(t, fmt.Sprintf("/admin/cuidador/delete/%d", caregiver.ID), form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/dashboard", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.User{}).Where("id = ?", caregiver.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAdminAddCaregiverUsesDefaultPassword(t *testing.T) {
	ts := newServer(t)
	loginAdmin(t, ts)

	form := url.Values{}
	form.Set("nombre", "Nuevo Cuidador")
	form.Set("email", "nuevo@test.com")
	form.Set("descripcion", "Disponible todo el dia.")
	form.Set("ubicacion", "Belgrano, CABA")
	form.Set("rating", "4.5")
	form.Add("servicios", "paseos")
	form.Set("source_page", "cu-1")

	res, _ := ts.PostForm(t, "/admin/cuidador/add", form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin/page/cu-1", res.Header.Get("Location"))

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", "nuevo@test.com").First(&user).Error)
	assert.Equal(t, models.UserRoleCaregiver, user.Role)

	// The back office assigns the fixed starter password.
	ts.ResetSession(t)
	helpers.Login(t, ts, "nuevo@test.com", "default_password")
}

func TestAdminEditCaregiverReplacesServices(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Diego Paseos", "diego@test.com", "paseos", "guarderia")
	loginAdmin(t, ts)

	form := url.Values{}
	form.Set("nombre", "Diego Renombrado")
	form.Set("email", "diego@test.com")
	form.Set("descripcion", "Nueva descripcion.")
	form.Set("ubicacion", "Caballito, CABA")
	form.Set("rating", "3")
	form.Add("servicios", "adiestramiento")
	form.Set("source_page", "cu-1")

	res, _ := ts.PostForm(t, fmt.Sprintf("/admin/cuidador/edit/%d", caregiver.ID), form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin/page/cu-1", res.Header.Get("Location"))

	var user models.User
	require.NoError(t, ts.DB.First(&user, caregiver.ID).Error)
	assert.Equal(t, "Diego Renombrado", user.Name)

	var profile models.CaregiverProfile
	require.NoError(t, ts.DB.Where("user_id = ?", caregiver.ID).First(&profile).Error)
	assert.Equal(t, "Nueva descripcion.", profile.Description)
	assert.Equal(t, "Caballito, CABA", profile.Location)

	var tags []models.CaregiverService
	require.NoError(t, ts.DB.Where("caregiver_id = ?", caregiver.ID).Find(&tags).Error)
	require.Len(t, tags, 1)
	assert.Equal(t, "adiestramiento", tags[0].Service)
}

func TestAdminDeleteCaregiverCascades(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Diego Paseos", "diego@test.com", "paseos")
	client := helpers.CreateUser(t, ts.DB, "Carla", "carla@test.com", "secret123", models.UserRoleClient)
	helpers.CreateReview(t, ts.DB, caregiver.ID, client.ID, "Muy bueno", 5)
	loginAdmin(t, ts)

	form := url.Values{}
	form.Set("source_page", "cu-1")
	res, _ := ts.PostForm(t, fmt.Sprintf("/admin/cuidador/delete/%d", caregiver.ID), form)
	require.Equal(t, http.StatusFound, res.StatusCode)

	var count int64
	ts.DB.Model(&models.User{}).Where("id = ?", caregiver.ID).Count(&count)
	assert.EqualValues(t, 0, count)
	ts.DB.Model(&models.CaregiverProfile{}).Where("user_id = ?", caregiver.ID).Count(&count)
	assert.EqualValues(t, 0, count)
	ts.DB.Model(&models.CaregiverService{}).Where("caregiver_id = ?", caregiver.ID).Count(&count)
	assert.EqualValues(t, 0, count)
	ts.DB.Model(&models.Review{}).Where("caregiver_id = ?", caregiver.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAdminEditClientKeepsPasswordWhenEmpty(t *testing.T) {
	ts := newServer(t)
	client := helpers.CreateUser(t, ts.DB, "Carla", "carla@test.com", "secret123", models.UserRoleClient)
	loginAdmin(t, ts)

	form := url.Values{}
	form.Set("nombre", "Carla Editada")
	form.Set("email", "carla@test.com")
	form.Set("password", "")
	form.Set("source_page", "cl-1")

	res, _ := ts.PostForm(t, fmt.Sprintf("/admin/cliente/edit/%d", client.ID), form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin/page/cl-1", res.Header.Get("Location"))

	var user models.User
	require.NoError(t, ts.DB.First(&user, client.ID).Error)
	assert.Equal(t, "Carla Editada", user.Name)
	assert.Equal(t, client.PasswordHash, user.PasswordHash)

	// A non-empty password is rehashed.
	form.Set("password", "brand-new-pass")
	res, _ = ts.PostForm(t, fmt.Sprintf("/admin/cliente/edit/%d", client.ID), form)
	require.Equal(t, http.StatusFound, res.StatusCode)

	require.NoError(t, ts.DB.First(&user, client.ID).Error)
	assert.NotEqual(t, client.PasswordHash, user.PasswordHash)
}

func TestAdminReviewRatingRoundedAndBounded(t *testing.T) {
	ts := newServer(t)
	caregiver := helpers.CreateCaregiver(t, ts.DB, "Diego Paseos", "diego@test.com")
	client := helpers.CreateUser(t, ts.DB, "Carla", "carla@test.com", "secret123", models.UserRoleClient)
	loginAdmin(t, ts)

	form := url.Values{}
	form.Set("cuidador_id", fmt.Sprint(caregiver.ID))
	form.Set("cliente_id", fmt.Sprint(client.ID))
	form.Set("texto", "Resena desde el panel")
	form.Set("calificacion", "4.6")
	form.Set("source_page", "re-1")

	res, _ := ts.PostForm(t, "/admin/resena/add", form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin/page/re-1", res.Header.Get("Location"))

	var review models.Review
	require.NoError(t, ts.DB.Where("caregiver_id = ?", caregiver.ID).First(&review).Error)
	assert.Equal(t, 5, review.Rating)

	// Out-of-range ratings redirect back carrying the failure notice.
	form.Set("calificacion", "9")
	res, _ = ts.PostForm(t, "/admin/resena/add", form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Contains(t, res.Header.Get("Location"), "error=")

	var count int64
	ts.DB.Model(&models.Review{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAdminContactListingAndDelete(t *testing.T) {
	ts := newServer(t)
	require.NoError(t, ts.DB.Create(&models.ContactMessage{
		Name: "Visitante", Email: "v@test.com", Subject: "Hola", Body: "Consulta",
	}).Error)
	loginAdmin(t, ts)

	res, body := ts.Get(t, "/admin/page/co-1")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Visitante")

	var msg models.ContactMessage
	require.NoError(t, ts.DB.Where("email = ?", "v@test.com").First(&msg).Error)

	form := url.Values{}
	form.Set("source_page", "co-1")
	res, _ = ts.PostForm(t, fmt.Sprintf("/admin/comentario/delete/%d", msg.ID), form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin/page/co-1", res.Header.Get("Location"))

	var count int64
	ts.DB.Model(&models.ContactMessage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAdminMarkContactMessageRead(t *testing.T) {
	ts := newServer(t)
	require.NoError(t, ts.DB.Create(&models.ContactMessage{
		Name: "Visitante", Email: "v@test.com", Body: "Consulta",
	}).Error)
	loginAdmin(t, ts)

	var msg models.ContactMessage
	require.NoError(t, ts.DB.Where("email = ?", "v@test.com").First(&msg).Error)
	require.False(t, msg.IsRead)

	form := url.Values{}
	form.Set("source_page", "co-1")
	res, _ := ts.PostForm(t, fmt.Sprintf("/admin/comentario/read/%d", msg.ID), form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin/page/co-1", res.Header.Get("Location"))

	require.NoError(t, ts.DB.First(&msg, msg.ID).Error)
	assert.True(t, msg.IsRead)

	// An unknown id reports the failure in the redirect.
	res, _ = ts.PostForm(t, "/admin/comentario/read/999999", form)
	require.Equal(t, http.StatusFound, res.StatusCode)
	assert.Contains(t, res.Header.Get("Location"), "error=")
}

func TestAdminEmptyListingSerializesEmptyArray(t *testing.T) {
	ts := newServer(t)
	loginAdmin(t, ts)

	res, body := ts.Get(t, "/admin/page/re-1")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"resenas":[]`)

	res, body = ts.Get(t, "/admin/page/co-1")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"comentarios":[]`)
}
