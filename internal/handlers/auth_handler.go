package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Login successful", resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := h.authService.Me(id.UserID)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Current user", user)
}

func (h *AuthHandler) SignupIntern(c *fiber.Ctx) error {
	var req dto.InternSignupRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.authService.SignupIntern(&req)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusCreated, "Intern registered successfully", dto.SignupResponse{User: user})
}

func (h *AuthHandler) SignupProvider(c *fiber.Ctx) error {
	var req dto.ProviderSignupRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.authService.SignupProvider(&req)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusCreated, "Provider registered successfully", dto.SignupResponse{User: user})
}
