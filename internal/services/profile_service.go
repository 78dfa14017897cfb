package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/identity"
	"github.com/internlink/internlink-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound         = errors.New("profile not found")
	ErrInternProfileNotFound   = errors.New("intern profile not found")
	ErrProviderProfileNotFound = errors.New("provider profile not found")
	ErrProfileIncomplete       = errors.New("company name and industry are required")
)

// companyPreviewLimit caps the open internships shown on a public company page.
const companyPreviewLimit = 5

type ProfileService struct {
	db              *gorm.DB
	requireApproval bool
}

// NewProfileService builds the service. requireApproval must match the
// internship service so company pages only show publicly visible postings.
func NewProfileService(db *gorm.DB, requireApproval bool) *ProfileService {
	return &ProfileService{db: db, requireApproval: requireApproval}
}

func (s *ProfileService) GetOwnInternProfile(userID uint) (*models.InternProfile, error) {
	var profile models.InternProfile
	if err := s.db.Scopes(identity.ForUser(userID)).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertOwnInternProfile replaces every editable field of the caller's intern
// profile, creating it on first save.
func (s *ProfileService) UpsertOwnInternProfile(userID uint, req *dto.UpsertInternProfileRequest) (*models.InternProfile, error) {
	var profile models.InternProfile
	err := s.db.Scopes(identity.ForUser(userID)).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile.UserID = userID
	profile.FullName = req.FullName
	profile.University = req.University
	profile.Major = req.Major
	profile.GraduationYear = req.GraduationYear
	profile.Skills = emptyToNil(req.Skills)
	profile.Bio = emptyToNil(req.Bio)
	profile.ResumeURL = emptyToNil(req.ResumeURL)
	profile.PortfolioURL = emptyToNil(req.PortfolioURL)
	profile.GithubURL = emptyToNil(req.GithubURL)
	profile.LinkedinURL = emptyToNil(req.LinkedinURL)

	// Save inserts when ID is zero and writes all columns otherwise.
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to save intern profile: %w", err)
	}
	return &profile, nil
}

// GetInternProfileByID is the provider-facing view of an applicant.
func (s *ProfileService) GetInternProfileByID(id uint) (*models.InternProfile, error) {
	var profile models.InternProfile
	err := s.db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "email", "role", "created_at")
	}).First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) GetOwnProviderProfile(userID uint) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := s.db.Scopes(identity.ForUser(userID)).
		Preload("Internships", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertOwnProviderProfile merges non-empty fields into the caller's company
// profile. Creating a profile requires company name and industry.
func (s *ProfileService) UpsertOwnProviderProfile(userID uint, req *dto.UpsertProviderProfileRequest) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := s.db.Scopes(identity.ForUser(userID)).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if name := strings.TrimSpace(req.CompanyName); name != "" {
		profile.CompanyName = name
	}
	if industry := strings.TrimSpace(req.Industry); industry != "" {
		profile.Industry = industry
	}
	if profile.CompanyName == "" || profile.Industry == "" {
		return nil, ErrProfileIncomplete
	}

	mergeString(&profile.Website, req.Website)
	mergeString(&profile.Description, req.Description)
	mergeString(&profile.Logo, req.Logo)
	mergeString(&profile.Location, req.Location)
	mergeString(&profile.CompanySize, req.CompanySize)
	mergeString(&profile.SocialLinks, req.SocialLinks)
	mergeString(&profile.Mission, req.Mission)
	mergeString(&profile.Vision, req.Vision)
	if req.FoundedYear != nil {
		profile.FoundedYear = req.FoundedYear
	}
	profile.UserID = userID

	if err := s.db.Omit("Internships").Save(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to save provider profile: %w", err)
	}
	return &profile, nil
}

// GetProviderProfileByID is the public company page.
func (s *ProfileService) GetProviderProfileByID(id uint) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := s.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "email", "role", "created_at")
		}).
		First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderProfileNotFound
		}
		return nil, err
	}

	// Preload limits apply across all parents, so fetch the preview directly.
	if err := s.db.Scopes(publicInternships(s.requireApproval)).
		Where("provider_id = ?", profile.ID).
		Order("created_at DESC").
		Limit(companyPreviewLimit).
		Find(&profile.Internships).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListProviders returns every company ordered by name with its open
// internship count.
func (s *ProfileService) ListProviders() ([]dto.CompanySummary, error) {
	var profiles []models.ProviderProfile
	if err := s.db.Order("company_name ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		ProviderID uint
		Total      int64
	}
	var rows []countRow
	if err := s.db.Model(&models.Internship{}).
		Scopes(publicInternships(s.requireApproval)).
		Select("provider_id, COUNT(*) AS total").
		Group("provider_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.ProviderID] = r.Total
	}

	companies := make([]dto.CompanySummary, 0, len(profiles))
	for _, p := range profiles {
		companies = append(companies, dto.CompanySummary{
			ID:                  p.ID,
			CompanyName:         p.CompanyName,
			Industry:            p.Industry,
			Location:            p.Location,
			Description:         p.Description,
			Logo:                p.Logo,
			Website:             p.Website,
			OpenInternshipCount: counts[p.ID],
		})
	}
	return companies, nil
}

func mergeString(dst **string, src *string) {
	if v := emptyToNil(src); v != nil {
		*dst = v
	}
}
