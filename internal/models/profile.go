package models

import "time"

type InternProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex" json:"userId"`
	FullName       string    `gorm:"size:255;not null" json:"fullName"`
	University     string    `gorm:"size:255;not null" json:"university"`
	Major          string    `gorm:"size:255;not null" json:"major"`
	GraduationYear *int      `json:"graduationYear"`
	Skills         *string   `gorm:"type:text" json:"skills"`
	Bio            *string   `gorm:"type:text" json:"bio"`
	ResumeURL      *string   `gorm:"size:1000" json:"resumeUrl"`
	PortfolioURL   *string   `gorm:"size:1000" json:"portfolioUrl"`
	GithubURL      *string   `gorm:"size:1000" json:"githubUrl"`
	LinkedinURL    *string   `gorm:"size:1000" json:"linkedinUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type ProviderProfile struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null;uniqueIndex" json:"userId"`
	CompanyName string       `gorm:"size:255;not null;index" json:"companyName"`
	Industry    string       `gorm:"size:255;not null" json:"industry"`
	Website     *string      `gorm:"size:1000" json:"website"`
	Description *string      `gorm:"type:text" json:"description"`
	Logo        *string      `gorm:"size:1000" json:"logo"`
	Location    *string      `gorm:"size:255" json:"location"`
	CompanySize *string      `gorm:"size:100" json:"companySize"`
	FoundedYear *int         `json:"foundedYear"`
	SocialLinks *string      `gorm:"type:text" json:"socialLinks"`
	Mission     *string      `gorm:"type:text" json:"mission"`
	Vision      *string      `gorm:"type:text" json:"vision"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	User        *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Internships []Internship `gorm:"foreignKey:ProviderID" json:"internships,omitempty"`
}
