package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/identity"
	"github.com/internlink/internlink-api/internal/models"
)

// RequireRole admits callers whose token role is one of roles. It must run
// after RequireAuthenticated.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identity.Get(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(fiber.StatusUnauthorized, "Unauthorized"))
		}

		if contains(roles, id.Role) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.NewError(fiber.StatusForbidden, "Access denied. Insufficient permissions."))
	}
}

func contains(list []models.Role, val models.Role) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
