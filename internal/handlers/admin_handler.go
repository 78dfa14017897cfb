package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/services"
)

type AdminHandler struct {
	adminService       *services.AdminService
	internshipService  *services.InternshipService
	applicationService *services.ApplicationService
}

func NewAdminHandler(
	adminService *services.AdminService,
	internshipService *services.InternshipService,
	applicationService *services.ApplicationService,
) *AdminHandler {
	return &AdminHandler{
		adminService:       adminService,
		internshipService:  internshipService,
		applicationService: applicationService,
	}
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats()
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Stats retrieved", stats)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers()
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Users retrieved", users)
}

func (h *AdminHandler) ToggleBlock(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	user, err := h.adminService.ToggleBlock(id.UserID, userID)
	if err != nil {
		return handleError(c, err)
	}

	message := "User unblocked"
	if user.IsBlocked {
		message = "User blocked"
	}
	return success(c, fiber.StatusOK, message, user)
}

func (h *AdminHandler) ChangeRole(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.ChangeRoleRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.adminService.ChangeRole(id.UserID, userID, req.Role)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Role updated", user)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := caller(c)
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	if err := h.adminService.DeleteUser(id.UserID, userID); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "User deleted", nil)
}

func (h *AdminHandler) ListInternships(c *fiber.Ctx) error {
	internships, err := h.internshipService.ListAll()
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Internships retrieved", internships)
}

func (h *AdminHandler) ApproveInternship(c *fiber.Ctx) error {
	return h.setApproval(c, true, "Internship approved")
}

func (h *AdminHandler) RejectInternship(c *fiber.Ctx) error {
	return h.setApproval(c, false, "Internship rejected")
}

func (h *AdminHandler) setApproval(c *fiber.Ctx, approved bool, message string) error {
	internshipID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid internship id")
	}

	internship, err := h.internshipService.SetApproval(internshipID, approved)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, message, internship)
}

func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	applications, err := h.applicationService.ListAll()
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Applications retrieved", applications)
}

func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.adminService.ListCategories()
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Categories retrieved", categories)
}

func (h *AdminHandler) AddCategory(c *fiber.Ctx) error {
	var req dto.LookupRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	category, err := h.adminService.AddCategory(req.Name)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Category added", category)
}

func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid category id")
	}

	if err := h.adminService.DeleteCategory(categoryID); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Category deleted", nil)
}

func (h *AdminHandler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.adminService.ListSkills()
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Skills retrieved", skills)
}

func (h *AdminHandler) AddSkill(c *fiber.Ctx) error {
	var req dto.LookupRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err)
	}

	skill, err := h.adminService.AddSkill(req.Name)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Skill added", skill)
}

func (h *AdminHandler) DeleteSkill(c *fiber.Ctx) error {
	skillID, ok := paramID(c, "id")
	if !ok {
		return fail(c, fiber.StatusBadRequest, "Invalid skill id")
	}

	if err := h.adminService.DeleteSkill(skillID); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Skill deleted", nil)
}
