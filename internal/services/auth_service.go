package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("account is blocked")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db       *gorm.DB
	tokens   *TokenManager
	hashCost int
}

func NewAuthService(db *gorm.DB, tokens *TokenManager) *AuthService {
	return &AuthService{db: db, tokens: tokens, hashCost: bcrypt.DefaultCost}
}

func (s *AuthService) SignupIntern(req *dto.InternSignupRequest) (*models.User, error) {
	user := models.User{
		Email: normalizeEmail(req.Email),
		Role:  models.RoleIntern,
		InternProfile: &models.InternProfile{
			FullName:       req.FullName,
			University:     req.University,
			Major:          req.Major,
			GraduationYear: req.GraduationYear,
		},
	}
	if err := s.createUser(&user, req.Password); err != nil {
		return nil, err
	}
	slog.Info("intern signed up", "user_id", user.ID)
	return &user, nil
}

func (s *AuthService) SignupProvider(req *dto.ProviderSignupRequest) (*models.User, error) {
	user := models.User{
		Email: normalizeEmail(req.Email),
		Role:  models.RoleProvider,
		ProviderProfile: &models.ProviderProfile{
			CompanyName: req.CompanyName,
			Industry:    req.Industry,
			Website:     emptyToNil(req.Website),
		},
	}
	if err := s.createUser(&user, req.Password); err != nil {
		return nil, err
	}
	slog.Info("provider signed up", "user_id", user.ID)
	return &user, nil
}

// CreateAdmin creates an admin account or promotes and resets an existing
// account with the same email.
func (s *AuthService) CreateAdmin(email, password string) (*models.User, error) {
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.Where("email = ?", normalizeEmail(email)).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Email: normalizeEmail(email), Password: hash, Role: models.RoleAdmin}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create admin: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	default:
		if err := s.db.Model(&user).Updates(map[string]interface{}{
			"password": hash,
			"role":     models.RoleAdmin,
		}).Error; err != nil {
			return nil, fmt.Errorf("failed to promote admin: %w", err)
		}
		user.Password = hash
		user.Role = models.RoleAdmin
	}
	return &user, nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Email: user.Email, Role: user.Role},
	}, nil
}

// Me returns the caller's account with whichever profile it owns.
func (s *AuthService) Me(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.Preload("InternProfile").Preload("ProviderProfile").First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) createUser(user *models.User, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hash

	// Create saves the user and its profile association in one transaction.
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
