package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	notifications, err := h.notificationService.List(id.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Notifications retrieved", notifications)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	notificationID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	notification, err := h.notificationService.MarkRead(id.UserID, notificationID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Notification marked as read", notification)
}

func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	notification, err := h.notificationService.Create(req.UserID, req.Message)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Notification created", notification)
}
