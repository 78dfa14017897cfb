package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationSelected    ApplicationStatus = "SELECTED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationShortlisted, ApplicationSelected, ApplicationRejected},
	ApplicationShortlisted: {ApplicationSelected, ApplicationRejected},
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationShortlisted, ApplicationSelected, ApplicationRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether next may follow s. Staying on the same
// status is always allowed.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application is one intern's submission to one internship. The composite
// unique index makes a second submission for the same pair fail at the
// database even under concurrent requests.
type Application struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	InternID     uint              `gorm:"not null;uniqueIndex:idx_applications_intern_internship,priority:1" json:"internId"`
	InternshipID uint              `gorm:"not null;uniqueIndex:idx_applications_intern_internship,priority:2;index" json:"internshipId"`
	CoverLetter  *string           `gorm:"type:text" json:"coverLetter"`
	Resume       *string           `gorm:"size:1000" json:"resume"`
	Status       ApplicationStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Intern       *InternProfile    `gorm:"foreignKey:InternID" json:"intern,omitempty"`
	Internship   *Internship       `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
}
