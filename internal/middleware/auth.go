package middleware

import (
	"errors"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/identity"
	"github.com/internlink/internlink-api/internal/services"
)

// RequireAuthenticated validates the bearer token and stores the caller's
// identity in locals. A missing or malformed header is 401, a token that
// fails verification is 403.
func RequireAuthenticated(tokens *services.TokenManager) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: tokens.Secret()},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok || token == nil {
				return forbidden(c)
			}
			userID, role, err := tokens.Verify(token.Raw)
			if err != nil {
				return forbidden(c)
			}
			identity.Set(c, identity.Identity{UserID: userID, Role: role})
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(fiber.StatusUnauthorized, "Access denied. No token provided."))
			}
			return forbidden(c)
		},
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.NewError(fiber.StatusForbidden, "Invalid or expired token"))
}
