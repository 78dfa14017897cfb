package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInternshipNotOpen   = errors.New("internship not available for application")
	ErrAlreadyApplied      = errors.New("already applied for this internship")
	ErrApplicationNotFound = errors.New("application not found or not authorized")
	ErrInvalidStatus       = errors.New("status must be one of PENDING, SHORTLISTED, SELECTED, REJECTED")
	ErrInvalidTransition   = errors.New("status change not allowed from current status")
)

type ApplicationService struct {
	db              *gorm.DB
	mailer          Mailer
	requireApproval bool
}

func NewApplicationService(db *gorm.DB, mailer Mailer, requireApproval bool) *ApplicationService {
	return &ApplicationService{db: db, mailer: mailer, requireApproval: requireApproval}
}

// Apply submits the caller's application and notifies the provider.
func (s *ApplicationService) Apply(userID uint, req *dto.ApplyRequest) (*models.Application, error) {
	var intern models.InternProfile
	if err := s.db.Where("user_id = ?", userID).First(&intern).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternProfileNotFound
		}
		return nil, err
	}

	var internship models.Internship
	if err := s.db.Preload("Provider.User").First(&internship, req.InternshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotOpen
		}
		return nil, err
	}
	if internship.Status != models.InternshipOpen || (s.requireApproval && !internship.IsApproved) {
		return nil, ErrInternshipNotOpen
	}

	var existing int64
	if err := s.db.Model(&models.Application{}).
		Where("intern_id = ? AND internship_id = ?", intern.ID, internship.ID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrAlreadyApplied
	}

	application := models.Application{
		InternID:     intern.ID,
		InternshipID: internship.ID,
		CoverLetter:  emptyToNil(req.CoverLetter),
		Resume:       emptyToNil(req.Resume),
		Status:       models.ApplicationPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&application).Error; err != nil {
			return err
		}
		if internship.Provider == nil {
			return nil
		}
		_, err := notify(tx, internship.Provider.UserID,
			fmt.Sprintf("New application from %s for %s", intern.FullName, internship.Title))
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	slog.Info("application submitted", "application_id", application.ID, "internship_id", internship.ID, "user_id", userID)
	s.emailProvider(&internship, &intern)
	return &application, nil
}

func (s *ApplicationService) emailProvider(internship *models.Internship, intern *models.InternProfile) {
	if s.mailer == nil || internship.Provider == nil || internship.Provider.User == nil {
		return
	}
	to := internship.Provider.User.Email
	subject := "New application: " + internship.Title
	body := fmt.Sprintf("%s applied for %s. Sign in to review the application.", intern.FullName, internship.Title)
	go func() {
		if err := s.mailer.Send(to, subject, body); err != nil {
			slog.Warn("application email failed", "internship_id", internship.ID, "error", err)
		}
	}()
}

// ListForProvider returns applications to the caller's internships.
func (s *ApplicationService) ListForProvider(userID uint) ([]models.Application, error) {
	var provider models.ProviderProfile
	if err := s.db.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderProfileNotFound
		}
		return nil, err
	}

	var applications []models.Application
	err := s.db.
		Joins("JOIN internships ON internships.id = applications.internship_id").
		Where("internships.provider_id = ?", provider.ID).
		Preload("Internship").
		Preload("Intern.User").
		Order("applications.created_at DESC").
		Find(&applications).Error
	return applications, err
}

// ListForIntern returns the caller's own applications.
func (s *ApplicationService) ListForIntern(userID uint) ([]models.Application, error) {
	var intern models.InternProfile
	if err := s.db.Where("user_id = ?", userID).First(&intern).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternProfileNotFound
		}
		return nil, err
	}

	var applications []models.Application
	err := s.db.Where("intern_id = ?", intern.ID).
		Preload("Internship.Provider").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// ListAll is the read-only admin view.
func (s *ApplicationService) ListAll() ([]models.Application, error) {
	var applications []models.Application
	err := s.db.Preload("Intern").
		Preload("Internship.Provider").
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// UpdateStatus moves an application on one of the caller's internships to
// next, enforcing the allowed transitions. The write is conditional on both
// ownership and the status that was read, so a concurrent change or a
// foreign application yields ErrApplicationNotFound without mutation.
func (s *ApplicationService) UpdateStatus(userID, applicationID uint, next models.ApplicationStatus) (*models.Application, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	var provider models.ProviderProfile
	if err := s.db.Where("user_id = ?", userID).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	owned := s.db.Model(&models.Internship{}).Select("id").Where("provider_id = ?", provider.ID)

	var application models.Application
	err := s.db.Where("id = ? AND internship_id IN (?)", applicationID, owned).
		Preload("Internship").
		Preload("Intern").
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}

	current := application.Status
	if !current.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	if current == next {
		return &application, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).
			Where("id = ? AND status = ? AND internship_id IN (?)", applicationID, current, owned).
			Update("status", next)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		if application.Intern == nil || application.Internship == nil {
			return nil
		}
		_, err := notify(tx, application.Intern.UserID,
			fmt.Sprintf("Your application for %s is now %s", application.Internship.Title, next))
		return err
	})
	if err != nil {
		return nil, err
	}

	application.Status = next
	slog.Info("application status updated", "application_id", application.ID, "from", current, "to", next, "user_id", userID)
	return &application, nil
}
