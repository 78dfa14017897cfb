package models

import "time"

type Role string

const (
	RoleIntern   Role = "INTERN"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleIntern, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// User is an account of any role. Password holds a bcrypt hash.
type User struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Email           string           `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password        string           `gorm:"not null" json:"-"`
	Role            Role             `gorm:"size:20;not null;index" json:"role"`
	IsBlocked       bool             `gorm:"not null;default:false" json:"isBlocked"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	InternProfile   *InternProfile   `gorm:"foreignKey:UserID" json:"internProfile,omitempty"`
	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserID" json:"providerProfile,omitempty"`
}
