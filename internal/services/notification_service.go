package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/internlink/internlink-api/internal/identity"
	"github.com/internlink/internlink-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyNotification    = errors.New("notification message is required")
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Scopes(identity.ForUser(userID)).Order("created_at DESC, id DESC").Find(&notifications).Error
	return notifications, err
}

// MarkRead marks one of the caller's notifications as read.
func (s *NotificationService) MarkRead(userID, notificationID uint) (*models.Notification, error) {
	var notification models.Notification
	err := s.db.Scopes(identity.ForUser(userID)).First(&notification, notificationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}

	if !notification.IsRead {
		if err := s.db.Model(&notification).Update("is_read", true).Error; err != nil {
			return nil, err
		}
		notification.IsRead = true
	}
	return &notification, nil
}

// Create stores a notification for an existing user.
func (s *NotificationService) Create(userID uint, message string) (*models.Notification, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrUserNotFound
	}
	return notify(s.db, userID, message)
}

// notify inserts a notification using db, which may be a transaction.
func notify(db *gorm.DB, userID uint, message string) (*models.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyNotification
	}
	notification := models.Notification{UserID: userID, Message: message}
	if err := db.Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &notification, nil
}
