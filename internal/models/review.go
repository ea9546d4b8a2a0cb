package models

type Review struct {
	BaseModel
	CaregiverID uint   `gorm:"not null;index"`
	ClientID    uint   `gorm:"not null;index"`
	Text        string `gorm:"type:text"`
	Rating      int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`

	// Relations
	Caregiver User `gorm:"foreignKey:CaregiverID;constraint:OnDelete:CASCADE"`
	Client    User `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}
