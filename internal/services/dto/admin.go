package dto

import (
	"patitas_backend/internal/models"
	"patitas_backend/internal/repositories"
)

// Admin entity families, as encoded in page tokens.
const (
	FamilyCaregivers = "cu"
	FamilyClients    = "cl"
	FamilyReviews    = "re"
	FamilyContact    = "co"
)

// CaregiverForm is the admin add/edit caregiver form.
type CaregiverForm struct {
	Name        string   `json:"nombre" form:"nombre" validate:"required"`
	Email       string   `json:"email" form:"email" validate:"required,email"`
	Description string   `json:"descripcion" form:"descripcion"`
	Location    string   `json:"ubicacion" form:"ubicacion"`
	Lat         string   `json:"lat" form:"lat"`
	Lng         string   `json:"lng" form:"lng"`
	Rating      string   `json:"rating" form:"rating"`
	Services    []string `json:"servicios" form:"servicios"`
}

// ClientForm is the admin add/edit client form. On edit an empty password
// means "leave unchanged".
type ClientForm struct {
	Name     string `json:"nombre" form:"nombre" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password"`
}

// ReviewForm is the admin add/edit review form. The rating arrives as text
// and may be a float; it is rounded to the integer scale.
type ReviewForm struct {
	CaregiverID uint   `json:"cuidador_id" form:"cuidador_id" validate:"required"`
	ClientID    uint   `json:"cliente_id" form:"cliente_id" validate:"required"`
	Text        string `json:"texto" form:"texto"`
	Rating      string `json:"calificacion" form:"calificacion" validate:"required"`
}

// PageWindow is the serializable part of a pagination window.
type PageWindow struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
	PrevNum int   `json:"prev_num"`
	NextNum int   `json:"next_num"`
	Nav     []int `json:"nav"`
}

// AdminListing is one page of one entity family, plus the id+name lists
// the admin view's selectors need. The slice matching Family is always
// non-nil, so an empty page serializes as an empty array, not a missing
// key; the other three stay null.
type AdminListing struct {
	Family string     `json:"type"`
	Token  string     `json:"current_page"`
	Window PageWindow `json:"pagination"`

	Caregivers []CaregiverAdminItem          `json:"cuidadores"`
	Clients    []ClientItem                  `json:"clientes"`
	Reviews    []repositories.AdminReviewRow `json:"resenas"`
	Messages   []models.ContactMessage       `json:"comentarios"`

	AllCaregivers []repositories.UserName `json:"all_cuidadores"`
	AllClients    []repositories.UserName `json:"all_clientes"`
}

// ContactForm is the public contact form.
type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message" validate:"required"`
}
