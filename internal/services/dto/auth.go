package dto

// RegisterRequest carries the public registration form. Field names follow
// the historical form inputs.
type RegisterRequest struct {
	Name     string `json:"nombre" form:"nombre" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     string `json:"tipo_usuario" form:"tipoUsuario" validate:"required,is-user-role"`

	// Caregiver extras, ignored for clients.
	Description string   `json:"descripcion" form:"descripcion"`
	Locality    string   `json:"localidad" form:"localidad"`
	District    string   `json:"partido" form:"partido"`
	Lat         string   `json:"lat" form:"lat"`
	Lng         string   `json:"lng" form:"lng"`
	Services    []string `json:"servicios" form:"servicios"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// PhotoUpload is a fully-read multipart photo. Uploads are buffered in
// memory before they reach storage.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
