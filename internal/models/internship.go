package models

import "time"

type InternshipStatus string

const (
	InternshipOpen   InternshipStatus = "OPEN"
	InternshipClosed InternshipStatus = "CLOSED"
)

func (s InternshipStatus) Valid() bool {
	return s == InternshipOpen || s == InternshipClosed
}

// Internship carries two independent axes: Status is provider-controlled,
// IsApproved is admin-controlled.
type Internship struct {
	ID                  uint             `gorm:"primaryKey" json:"id"`
	ProviderID          uint             `gorm:"not null;index" json:"providerId"`
	Title               string           `gorm:"size:255;not null" json:"title"`
	Description         string           `gorm:"type:text;not null" json:"description"`
	Requirements        string           `gorm:"type:text;not null" json:"requirements"`
	Location            string           `gorm:"size:255;not null" json:"location"`
	Duration            string           `gorm:"size:100;not null" json:"duration"`
	Category            *string          `gorm:"size:100;index" json:"category"`
	Stipend             *float64         `json:"stipend"`
	ApplicationDeadline time.Time        `gorm:"not null;index" json:"applicationDeadline"`
	Status              InternshipStatus `gorm:"size:20;not null;default:'OPEN';index" json:"status"`
	IsApproved          bool             `gorm:"not null;default:false" json:"isApproved"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
	Provider            *ProviderProfile `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Applications        []Application    `gorm:"foreignKey:InternshipID" json:"applications,omitempty"`
}
