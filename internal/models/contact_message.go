package models

// ContactMessage is append-only from the public contact form. Only an
// admin can mark one read or delete it.
type ContactMessage struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Subject string
	Body    string `gorm:"type:text"`
	IsRead  bool   `gorm:"default:false"`
}
