package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/dto"
	"github.com/internlink/internlink-api/internal/identity"
	"github.com/internlink/internlink-api/internal/services"
	"github.com/internlink/internlink-api/internal/validation"
)

// errorStatus maps service sentinels to HTTP status codes. Anything not
// listed is a 500.
var errorStatus = []struct {
	err    error
	status int
}{
	{errInvalidBody, fiber.StatusBadRequest},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{services.ErrUserBlocked, fiber.StatusForbidden},
	{services.ErrEmailTaken, fiber.StatusConflict},
	{services.ErrAlreadyApplied, fiber.StatusConflict},
	{services.ErrInvalidTransition, fiber.StatusConflict},
	{services.ErrLookupExists, fiber.StatusConflict},
	{services.ErrRoleProfile, fiber.StatusConflict},
	{services.ErrUserNotFound, fiber.StatusNotFound},
	{services.ErrProfileNotFound, fiber.StatusNotFound},
	{services.ErrInternProfileNotFound, fiber.StatusNotFound},
	{services.ErrProviderProfileNotFound, fiber.StatusNotFound},
	{services.ErrInternshipNotFound, fiber.StatusNotFound},
	{services.ErrApplicationNotFound, fiber.StatusNotFound},
	{services.ErrReceiverNotFound, fiber.StatusNotFound},
	{services.ErrNotificationNotFound, fiber.StatusNotFound},
	{services.ErrLookupNotFound, fiber.StatusNotFound},
	{services.ErrProfileIncomplete, fiber.StatusBadRequest},
	{services.ErrInvalidDeadline, fiber.StatusBadRequest},
	{services.ErrBlankField, fiber.StatusBadRequest},
	{services.ErrInternshipStatus, fiber.StatusBadRequest},
	{services.ErrInternshipNotOpen, fiber.StatusBadRequest},
	{services.ErrInvalidStatus, fiber.StatusBadRequest},
	{services.ErrMessageSelf, fiber.StatusBadRequest},
	{services.ErrEmptyMessage, fiber.StatusBadRequest},
	{services.ErrEmptyNotification, fiber.StatusBadRequest},
	{services.ErrInvalidRole, fiber.StatusBadRequest},
	{services.ErrLookupName, fiber.StatusBadRequest},
	{services.ErrCannotModifySelf, fiber.StatusBadRequest},
}

func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.NewSuccess(message, data))
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.NewError(status, message))
}

// handleError writes the response for a service error. Unknown errors are
// logged and reported without detail.
func handleError(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return fail(c, fiber.StatusBadRequest, verr.Error())
	}
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			return fail(c, m.status, m.err.Error())
		}
	}

	slog.Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.Locals("requestid"),
		"error", err,
	)
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}

var errInvalidBody = errors.New("invalid request body")

// bind parses the JSON body into req and validates it. The returned error is
// meant for handleError.
func bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errInvalidBody
	}
	return validation.Struct(req)
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func caller(c *fiber.Ctx) (identity.Identity, bool) {
	id, err := identity.Get(c)
	return id, err == nil
}
