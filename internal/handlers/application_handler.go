package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/services"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ApplyRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	application, err := h.applicationService.Apply(id.UserID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Application submitted", application)
}

func (h *ApplicationHandler) ListForProvider(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	applications, err := h.applicationService.ListForProvider(id.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Applications retrieved", applications)
}

func (h *ApplicationHandler) ListForIntern(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	applications, err := h.applicationService.ListForIntern(id.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Applications retrieved", applications)
}

func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	applicationID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var req dto.UpdateApplicationStatusRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	application, err := h.applicationService.UpdateStatus(id.UserID, applicationID, req.Status)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Application status updated", application)
}
