package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/services"
)

type InternshipHandler struct {
	internshipService *services.InternshipService
}

func NewInternshipHandler(internshipService *services.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipService: internshipService}
}

func (h *InternshipHandler) List(c *fiber.Ctx) error {
	internships, err := h.internshipService.ListPublic()
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Internships retrieved", internships)
}

func (h *InternshipHandler) Get(c *fiber.Ctx) error {
	internshipID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid internship id")
	}

	internship, err := h.internshipService.GetPublic(internshipID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Internship retrieved", internship)
}

func (h *InternshipHandler) Create(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateInternshipRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	internship, err := h.internshipService.Create(id.UserID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Internship created", internship)
}

func (h *InternshipHandler) ListMine(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	internships, err := h.internshipService.ListForProvider(id.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Internships retrieved", internships)
}

func (h *InternshipHandler) Update(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	internshipID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid internship id")
	}

	var req dto.UpdateInternshipRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	internship, err := h.internshipService.Update(id.UserID, internshipID, &req)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Internship updated", internship)
}

func (h *InternshipHandler) Delete(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	internshipID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid internship id")
	}

	if err := h.internshipService.Delete(id.UserID, internshipID); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Internship deleted", nil)
}
