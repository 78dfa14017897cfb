package dto

import "github.com/internlink/internlink-api/internal/models"

type SendMessageRequest struct {
	ReceiverID    uint   `json:"receiverId" validate:"required"`
	Content       string `json:"content" validate:"required"`
	ApplicationID *uint  `json:"applicationId"`
}

type Contact struct {
	ID          uint        `json:"id"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	DisplayName string      `json:"displayName"`
}

type Conversation struct {
	Contact     Contact         `json:"contact"`
	LastMessage *models.Message `json:"lastMessage"`
	UnreadCount int             `json:"unreadCount"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
