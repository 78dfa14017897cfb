package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCannotModifySelf = errors.New("admins cannot change their own account")
	ErrInvalidRole      = errors.New("role must be one of INTERN, PROVIDER, ADMIN")
	ErrRoleProfile      = errors.New("user has no profile for that role")
	ErrLookupExists     = errors.New("name already exists")
	ErrLookupNotFound   = errors.New("entry not found")
	ErrLookupName       = errors.New("name is required")
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) Stats() (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.UserCount, s.db.Model(&models.User{})},
		{&stats.InternshipCount, s.db.Model(&models.Internship{})},
		{&stats.ApplicationCount, s.db.Model(&models.Application{})},
		{&stats.ProviderCount, s.db.Model(&models.User{}).Where("role = ?", models.RoleProvider)},
		{&stats.InternCount, s.db.Model(&models.User{}).Where("role = ?", models.RoleIntern)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count: %w", err)
		}
	}
	return &stats, nil
}

func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Preload("InternProfile").Preload("ProviderProfile").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// ToggleBlock flips the blocked flag of userID.
func (s *AdminService) ToggleBlock(adminID, userID uint) (*models.User, error) {
	if adminID == userID {
		return nil, ErrCannotModifySelf
	}
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	blocked := !user.IsBlocked
	result := s.db.Model(&models.User{}).
		Where("id = ? AND is_blocked = ?", user.ID, user.IsBlocked).
		Update("is_blocked", blocked)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	user.IsBlocked = blocked

	slog.Info("user block toggled", "user_id", user.ID, "blocked", blocked, "admin_id", adminID)
	return user, nil
}

// ChangeRole sets the role of userID. Any account can be made ADMIN; INTERN
// and PROVIDER are only granted to accounts that own that profile and not the
// other one.
func (s *AdminService) ChangeRole(adminID, userID uint, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if adminID == userID {
		return nil, ErrCannotModifySelf
	}
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if user.Role == role {
		return user, nil
	}
	if err := s.checkRoleProfile(user.ID, role); err != nil {
		return nil, err
	}

	if err := s.db.Model(user).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	user.Role = role

	slog.Info("user role changed", "user_id", user.ID, "role", role, "admin_id", adminID)
	return user, nil
}

// DeleteUser removes a user together with everything that references it.
func (s *AdminService) DeleteUser(adminID, userID uint) error {
	if adminID == userID {
		return ErrCannotModifySelf
	}
	if _, err := s.findUser(userID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		internIDs := tx.Model(&models.InternProfile{}).Select("id").Where("user_id = ?", userID)
		providerIDs := tx.Model(&models.ProviderProfile{}).Select("id").Where("user_id = ?", userID)
		internshipIDs := tx.Model(&models.Internship{}).Select("id").Where("provider_id IN (?)", providerIDs)

		// Order matters: rows are removed before the rows they reference.
		steps := []func() *gorm.DB{
			func() *gorm.DB {
				return tx.Where("sender_id = ? OR receiver_id = ?", userID, userID).Delete(&models.Message{})
			},
			func() *gorm.DB { return tx.Where("user_id = ?", userID).Delete(&models.Notification{}) },
			func() *gorm.DB { return tx.Where("intern_id IN (?)", internIDs).Delete(&models.Application{}) },
			func() *gorm.DB { return tx.Where("internship_id IN (?)", internshipIDs).Delete(&models.Application{}) },
			func() *gorm.DB { return tx.Where("provider_id IN (?)", providerIDs).Delete(&models.Internship{}) },
			func() *gorm.DB { return tx.Where("user_id = ?", userID).Delete(&models.InternProfile{}) },
			func() *gorm.DB { return tx.Where("user_id = ?", userID).Delete(&models.ProviderProfile{}) },
			func() *gorm.DB { return tx.Delete(&models.User{}, userID) },
		}
		for _, step := range steps {
			if err := step().Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Info("user deleted", "user_id", userID, "admin_id", adminID)
	return nil
}

func (s *AdminService) checkRoleProfile(userID uint, role models.Role) error {
	var interns, providers int64
	if err := s.db.Model(&models.InternProfile{}).Where("user_id = ?", userID).Count(&interns).Error; err != nil {
		return err
	}
	if err := s.db.Model(&models.ProviderProfile{}).Where("user_id = ?", userID).Count(&providers).Error; err != nil {
		return err
	}

	switch role {
	case models.RoleIntern:
		if interns == 0 || providers > 0 {
			return ErrRoleProfile
		}
	case models.RoleProvider:
		if providers == 0 || interns > 0 {
			return ErrRoleProfile
		}
	}
	return nil
}

func (s *AdminService) findUser(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AdminService) ListCategories() ([]models.Category, error) {
	return listLookups[models.Category](s.db)
}

func (s *AdminService) AddCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrLookupName
	}
	category := models.Category{Name: name}
	if err := addLookup(s.db, &category, name); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) DeleteCategory(id uint) error {
	return deleteLookup[models.Category](s.db, id)
}

func (s *AdminService) ListSkills() ([]models.Skill, error) {
	return listLookups[models.Skill](s.db)
}

func (s *AdminService) AddSkill(name string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrLookupName
	}
	skill := models.Skill{Name: name}
	if err := addLookup(s.db, &skill, name); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *AdminService) DeleteSkill(id uint) error {
	return deleteLookup[models.Skill](s.db, id)
}

func listLookups[T any](db *gorm.DB) ([]T, error) {
	var items []T
	err := db.Order("name ASC").Find(&items).Error
	return items, err
}

func addLookup[T any](db *gorm.DB, item *T, name string) error {
	var count int64
	if err := db.Model(new(T)).Where("LOWER(name) = ?", strings.ToLower(name)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrLookupExists
	}
	if err := db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrLookupExists
		}
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

func deleteLookup[T any](db *gorm.DB, id uint) error {
	result := db.Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLookupNotFound
	}
	return nil
}
