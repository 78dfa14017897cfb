package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) GetMyInternProfile(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	profile, err := h.profileService.GetOwnInternProfile(id.UserID)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Profile retrieved", dto.InternProfileEnvelope{Profile: profile})
}

func (h *ProfileHandler) UpsertMyInternProfile(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpsertInternProfileRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	profile, err := h.profileService.UpsertOwnInternProfile(id.UserID, &req)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Profile saved", dto.InternProfileEnvelope{Profile: profile})
}

func (h *ProfileHandler) GetInternProfile(c *fiber.Ctx) error {
	internID, ok := paramID(c, "internId")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid intern id")
	}

	profile, err := h.profileService.GetInternProfileByID(internID)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Profile retrieved", dto.InternProfileEnvelope{Profile: profile})
}

func (h *ProfileHandler) GetMyCompanyProfile(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	company, err := h.profileService.GetOwnProviderProfile(id.UserID)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Company profile retrieved", dto.CompanyEnvelope{Company: company})
}

func (h *ProfileHandler) UpsertMyCompanyProfile(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpsertProviderProfileRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	company, err := h.profileService.UpsertOwnProviderProfile(id.UserID, &req)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Company profile saved", dto.CompanyEnvelope{Company: company})
}

func (h *ProfileHandler) GetCompanyProfile(c *fiber.Ctx) error {
	companyID, ok := paramID(c, "companyId")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid company id")
	}

	company, err := h.profileService.GetProviderProfileByID(companyID)
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Company profile retrieved", dto.CompanyEnvelope{Company: company})
}

func (h *ProfileHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.profileService.ListProviders()
	if err != nil {
		return handleError(c, err)
	}

	return success(c, fiber.StatusOK, "Companies retrieved", dto.CompaniesEnvelope{Companies: companies})
}
