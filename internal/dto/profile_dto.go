package dto

import "github.com/internlink/internlink-api/internal/models"

type UpsertInternProfileRequest struct {
	FullName       string  `json:"fullName" validate:"required"`
	University     string  `json:"university" validate:"required"`
	Major          string  `json:"major" validate:"required"`
	GraduationYear *int    `json:"graduationYear" validate:"omitempty,gte=1900,lte=2100"`
	Skills         *string `json:"skills"`
	Bio            *string `json:"bio"`
	ResumeURL      *string `json:"resumeUrl"`
	PortfolioURL   *string `json:"portfolioUrl"`
	GithubURL      *string `json:"githubUrl"`
	LinkedinURL    *string `json:"linkedinUrl"`
}

// UpsertProviderProfileRequest merges into an existing profile: nil or empty
// fields keep their stored value.
type UpsertProviderProfileRequest struct {
	CompanyName string  `json:"companyName"`
	Industry    string  `json:"industry"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Location    *string `json:"location"`
	CompanySize *string `json:"companySize"`
	FoundedYear *int    `json:"foundedYear" validate:"omitempty,gte=1800,lte=2100"`
	SocialLinks *string `json:"socialLinks"`
	Mission     *string `json:"mission"`
	Vision      *string `json:"vision"`
}

type InternProfileEnvelope struct {
	Profile *models.InternProfile `json:"profile"`
}

type CompanyEnvelope struct {
	Company *models.ProviderProfile `json:"company"`
}

type CompanySummary struct {
	ID                  uint    `json:"id"`
	CompanyName         string  `json:"companyName"`
	Industry            string  `json:"industry"`
	Location            *string `json:"location"`
	Description         *string `json:"description"`
	Logo                *string `json:"logo"`
	Website             *string `json:"website"`
	OpenInternshipCount int64   `json:"openInternshipCount"`
}

type CompaniesEnvelope struct {
	Companies []CompanySummary `json:"companies"`
}
