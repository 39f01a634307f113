package health

import (
	"tomato-manager/core/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealthCheck)
}

// HandleHealthCheck reports dependency state.
// @Summary Health Check
// @Description Checks storage reachability, bucket existence and ledger state.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "Healthy"
// @Failure 503 {object} health.Report "Storage Unreachable"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.Check(c.Context())
	if report.Storage != "ok" {
		l.Warn("Health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}

	return c.JSON(report)
}
