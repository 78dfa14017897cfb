package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/internlink/internlink-api/internal/database"
	"github.com/internlink/internlink-api/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.StatusOK
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		status = fiber.StatusServiceUnavailable
		dbStatus = "unhealthy"
	}

	return c.Status(status).JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
