package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusHandler struct {
	db     Pinger
	logger *zap.Logger
}

func NewStatusHandler(db Pinger, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		db:     db,
		logger: logger,
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// DBStatus godoc
// @Summary Database connectivity
// @Tags status
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/db_status [get]
func (h *StatusHandler) DBStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Database ping failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "disconnected",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "connected"})
}
