package models

type UserRole string

// Roles are stored with their historical Spanish names.
const (
	UserRoleClient    UserRole = "cliente"
	UserRoleCaregiver UserRole = "cuidador"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleClient, UserRoleCaregiver, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Name         string   `gorm:"not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	// Relations. Cascades are storage-level constraints: deleting a user
	// removes its profile, service tags and reviews in the same statement.
	CaregiverProfile *CaregiverProfile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Services         []CaregiverService `gorm:"foreignKey:CaregiverID;constraint:OnDelete:CASCADE"`
}
