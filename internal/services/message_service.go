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
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrMessageSelf      = errors.New("cannot send a message to yourself")
	ErrEmptyMessage     = errors.New("message content is required")
)

type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

func (s *MessageService) Send(senderID uint, req *dto.SendMessageRequest) (*models.Message, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	if req.ReceiverID == senderID {
		return nil, ErrMessageSelf
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", req.ReceiverID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrReceiverNotFound
	}

	message := models.Message{
		SenderID:      senderID,
		ReceiverID:    req.ReceiverID,
		Content:       content,
		ApplicationID: req.ApplicationID,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &message, nil
}

// GetConversation marks the caller's inbound messages from otherUserID as
// read and returns the whole exchange oldest first.
func (s *MessageService) GetConversation(userID, otherUserID uint) ([]models.Message, error) {
	if _, err := s.MarkRead(userID, otherUserID); err != nil {
		return nil, err
	}

	var messages []models.Message
	err := s.db.Scopes(identity.Between(userID, otherUserID)).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// MarkRead flags unread messages from otherUserID to userID as read.
func (s *MessageService) MarkRead(userID, otherUserID uint) (int64, error) {
	result := s.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherUserID, userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ListConversations returns one entry per counterpart, most recent first.
func (s *MessageService) ListConversations(userID uint) ([]dto.Conversation, error) {
	var messages []models.Message
	err := s.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Preload("Sender.InternProfile").
		Preload("Sender.ProviderProfile").
		Preload("Receiver.InternProfile").
		Preload("Receiver.ProviderProfile").
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	var unread []struct {
		SenderID uint
		Count    int
	}
	err = s.db.Model(&models.Message{}).
		Select("sender_id, COUNT(*) AS count").
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Group("sender_id").
		Scan(&unread).Error
	if err != nil {
		return nil, err
	}
	unreadBy := make(map[uint]int, len(unread))
	for _, u := range unread {
		unreadBy[u.SenderID] = u.Count
	}

	seen := make(map[uint]bool)
	conversations := make([]dto.Conversation, 0)
	for i := range messages {
		msg := &messages[i]
		other := msg.Sender
		if msg.SenderID == userID {
			other = msg.Receiver
		}
		if other == nil || seen[other.ID] {
			continue
		}
		seen[other.ID] = true

		last := *msg
		last.Sender, last.Receiver = nil, nil
		conversations = append(conversations, dto.Conversation{
			Contact:     contactFor(other),
			LastMessage: &last,
			UnreadCount: unreadBy[other.ID],
		})
	}
	return conversations, nil
}

func contactFor(user *models.User) dto.Contact {
	contact := dto.Contact{ID: user.ID, Email: user.Email, Role: user.Role, DisplayName: user.Email}
	switch {
	case user.InternProfile != nil && user.InternProfile.FullName != "":
		contact.DisplayName = user.InternProfile.FullName
	case user.ProviderProfile != nil && user.ProviderProfile.CompanyName != "":
		contact.DisplayName = user.ProviderProfile.CompanyName
	}
	return contact
}
