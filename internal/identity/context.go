// Package identity carries the authenticated caller through Fiber locals.
package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/models"
)

const localsKey = "identity"

var ErrNoIdentity = errors.New("no authenticated identity in context")

// Identity is the verified content of a bearer token.
type Identity struct {
	UserID uint
	Role   models.Role
}

func Set(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

func Get(c *fiber.Ctx) (Identity, error) {
	id, ok := c.Locals(localsKey).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
