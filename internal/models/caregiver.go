package models

// CaregiverProfile exists iff the owning user has role cuidador.
type CaregiverProfile struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Location    string
	Lat         *float64
	Lng         *float64
	Rating      float64 `gorm:"default:0"`

	// Photo lives either as an external object-storage URL or as inline
	// bytes on the row, never both. See storage.PhotoRef.
	PhotoURL         *string
	PhotoData        []byte `gorm:"type:mediumblob"`
	PhotoContentType string
}

// CaregiverService is one free-text service tag ("Paseos", "Alojamiento").
// The set is fully replaced on every edit.
type CaregiverService struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	CaregiverID uint   `gorm:"index;not null"` // user id of the caregiver
	Service     string `gorm:"size:100;not null"`
}
