package health

import (
	"team-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
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
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/snapshots", h.HandleSnapshotCheck)
}

// HandleHealth runs every check.
// @Summary Health
// @Description Reports the snapshot backend, the snapshot check and collection counts.
// @Tags health
// @Produce json
// @Param fix query boolean false "Write missing snapshots"
// @Success 200 {object} map[string]interface{} "Health Report"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := fiber.Map{
		"status":  "ok",
		"backend": h.service.Backend(),
		"counts":  h.service.Counts(),
	}

	snap, ok := h.snapshotReport(c)
	report["snapshots"] = snap
	if !ok {
		report["status"] = "degraded"
	}
	return c.JSON(report)
}

// HandleSnapshotCheck checks and optionally fixes the snapshot backend.
// @Summary Check Snapshots
// @Description Checks that every collection has been written to the snapshot backend. Optionally writes the missing ones.
// @Tags health
// @Produce json
// @Param fix query boolean false "Write missing snapshots"
// @Success 200 {object} map[string]interface{} "Snapshot Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/snapshots [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	snap, ok := h.snapshotReport(c)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(snap)
	}
	return c.JSON(snap)
}

func (h *Handler) snapshotReport(c *fiber.Ctx) (fiber.Map, bool) {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckSnapshots(c.Context())
	if err != nil {
		l.Error("Snapshot check failed", zap.Error(err))
		return fiber.Map{"status": "error", "error": err.Error()}, false
	}

	if len(missing) == 0 {
		return fiber.Map{"status": "ok", "missing": []string{}}, true
	}

	l.Warn("Missing snapshots detected", zap.Strings("missing", missing))
	if !fix {
		return fiber.Map{"status": "checked", "missing": missing}, true
	}

	if err := h.service.FixSnapshots(c.Context(), missing); err != nil {
		return fiber.Map{"status": "error", "error": "Failed to write snapshots", "details": err.Error(), "missing": missing}, false
	}
	return fiber.Map{"status": "fixed", "fixed": missing}, true
}
