package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - любой компонент с проверкой доступности
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка доступности хранилища
type HealthHandler struct {
	store   HealthChecker
	timeout time.Duration
	logger  *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(store HealthChecker, timeout time.Duration, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:   store,
		timeout: timeout,
		logger:  logger,
	}
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	if err := h.store.Health(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
			"time":   time.Now(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}
