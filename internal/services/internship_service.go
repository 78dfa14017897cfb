package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInvalidDeadline    = errors.New("applicationDeadline must be RFC3339 or YYYY-MM-DD")
	ErrBlankField         = errors.New("title, description, requirements, location and duration cannot be blank")
	ErrInternshipStatus   = errors.New("status must be OPEN or CLOSED")
)

var deadlineLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

type InternshipService struct {
	db              *gorm.DB
	requireApproval bool
}

// NewInternshipService builds the service. With requireApproval the public
// listing also hides internships an admin has not approved.
func NewInternshipService(db *gorm.DB, requireApproval bool) *InternshipService {
	return &InternshipService{db: db, requireApproval: requireApproval}
}

func (s *InternshipService) Create(userID uint, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	provider, err := s.providerFor(userID)
	if err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	internship := models.Internship{
		ProviderID:          provider.ID,
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		Duration:            req.Duration,
		Category:            emptyToNil(req.Category),
		Stipend:             req.Stipend,
		ApplicationDeadline: deadline,
		Status:              models.InternshipOpen,
	}
	if err := s.db.Create(&internship).Error; err != nil {
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}

	slog.Info("internship created", "internship_id", internship.ID, "provider_id", provider.ID)
	return &internship, nil
}

// Update applies the non-nil fields of req to an internship the caller owns.
func (s *InternshipService) Update(userID, internshipID uint, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	internship, err := s.owned(userID, internshipID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	for column, value := range map[string]*string{
		"title":        req.Title,
		"description":  req.Description,
		"requirements": req.Requirements,
		"location":     req.Location,
		"duration":     req.Duration,
	} {
		if value == nil {
			continue
		}
		if strings.TrimSpace(*value) == "" {
			return nil, ErrBlankField
		}
		updates[column] = *value
	}
	if req.Category != nil {
		updates["category"] = emptyToNil(req.Category)
	}
	if req.Stipend != nil {
		updates["stipend"] = *req.Stipend
	}
	if req.ApplicationDeadline != nil {
		deadline, err := parseDeadline(*req.ApplicationDeadline)
		if err != nil {
			return nil, err
		}
		updates["application_deadline"] = deadline
	}
	if req.Status != nil {
		status := models.InternshipStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInternshipStatus
		}
		updates["status"] = status
	}

	if len(updates) > 0 {
		if err := s.db.Model(internship).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update internship: %w", err)
		}
	}

	return s.owned(userID, internshipID)
}

// Delete removes an internship the caller owns together with its
// applications.
func (s *InternshipService) Delete(userID, internshipID uint) error {
	internship, err := s.owned(userID, internshipID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("internship_id = ?", internship.ID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(internship).Error
	})
}

// publicInternships limits a query to postings the public may see.
func publicInternships(requireApproval bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("internships.status = ?", models.InternshipOpen)
		if requireApproval {
			db = db.Where("internships.is_approved = ?", true)
		}
		return db
	}
}

// ListPublic returns every publicly visible internship, newest first.
func (s *InternshipService) ListPublic() ([]models.Internship, error) {
	var internships []models.Internship
	err := s.db.Scopes(publicInternships(s.requireApproval)).
		Preload("Provider").
		Order("created_at DESC").
		Find(&internships).Error
	return internships, err
}

func (s *InternshipService) GetPublic(id uint) (*models.Internship, error) {
	var internship models.Internship
	err := s.db.Scopes(publicInternships(s.requireApproval)).Preload("Provider").First(&internship, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInternshipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

// ListForProvider returns the caller's postings with their applications and
// applicant profiles.
func (s *InternshipService) ListForProvider(userID uint) ([]models.Internship, error) {
	provider, err := s.providerFor(userID)
	if err != nil {
		return nil, err
	}

	var internships []models.Internship
	err = s.db.Where("provider_id = ?", provider.ID).
		Preload("Applications.Intern").
		Order("created_at DESC").
		Find(&internships).Error
	return internships, err
}

// ListAll is the admin view of every internship regardless of status.
func (s *InternshipService) ListAll() ([]models.Internship, error) {
	var internships []models.Internship
	err := s.db.Preload("Provider").Order("created_at DESC").Find(&internships).Error
	return internships, err
}

// SetApproval flips the admin approval axis without touching status.
func (s *InternshipService) SetApproval(internshipID uint, approved bool) (*models.Internship, error) {
	result := s.db.Model(&models.Internship{}).Where("id = ?", internshipID).Update("is_approved", approved)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrInternshipNotFound
	}

	var internship models.Internship
	if err := s.db.First(&internship, internshipID).Error; err != nil {
		return nil, err
	}
	return &internship, nil
}

// CloseExpired closes open internships whose application deadline is before
// now and returns how many were closed.
func (s *InternshipService) CloseExpired(now time.Time) (int64, error) {
	result := s.db.Model(&models.Internship{}).
		Where("status = ? AND application_deadline < ?", models.InternshipOpen, now.UTC()).
		Update("status", models.InternshipClosed)
	return result.RowsAffected, result.Error
}

func (s *InternshipService) providerFor(userID uint) (*models.ProviderProfile, error) {
	var provider models.ProviderProfile
	err := s.db.Where("user_id = ?", userID).First(&provider).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProviderProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (s *InternshipService) owned(userID, internshipID uint) (*models.Internship, error) {
	provider, err := s.providerFor(userID)
	if err != nil {
		return nil, err
	}

	var internship models.Internship
	err = s.db.Where("id = ? AND provider_id = ?", internshipID, provider.ID).First(&internship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInternshipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

func parseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDeadline
}
