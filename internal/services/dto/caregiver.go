package dto

// CaregiverItem is one directory card. JSON keys keep the historical
// Spanish names the frontend consumes.
type CaregiverItem struct {
	ID          uint     `json:"id"`
	Name        string   `json:"nombre"`
	Description string   `json:"descripcion"`
	Location    string   `json:"ubicacion"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Rating      float64  `json:"rating"`
	Photo       string   `json:"foto"`
	Services    []string `json:"servicios"`
}

// CaregiverAdminItem extends the card with the fields only the back
// office sees.
type CaregiverAdminItem struct {
	CaregiverItem
	Email string `json:"email"`
}

type ClientItem struct {
	ID    uint   `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}
