package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/services"
)

type MessageHandler struct {
	messageService *services.MessageService
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.SendMessageRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	message, err := h.messageService.Send(id.UserID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Message sent", message)
}

func (h *MessageHandler) Conversations(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	conversations, err := h.messageService.ListConversations(id.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Conversations retrieved", conversations)
}

func (h *MessageHandler) Conversation(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	otherUserID, ok := paramID(c, "otherUserId")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	messages, err := h.messageService.GetConversation(id.UserID, otherUserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Conversation retrieved", messages)
}

func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	otherUserID, ok := paramID(c, "otherUserId")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	updated, err := h.messageService.MarkRead(id.UserID, otherUserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Messages marked as read", dto.MarkReadResponse{Updated: updated})
}
