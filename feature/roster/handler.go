package roster

import (
	"team-inventory/core/apierror"
	"team-inventory/core/logger"
	"team-inventory/core/roster"
	"team-inventory/core/tracker"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles roster imports.
type Handler struct {
	tracker *tracker.Tracker
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(t *tracker.Tracker, logger *zap.Logger) *Handler {
	return &Handler{tracker: t, logger: logger}
}

// RegisterRoutes registers the roster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/roster", h.HandleImport)
}

// HandleImport reconciles the roster.
// @Summary Import Roster
// @Description Resets players and assignments and rebuilds them from the roster. Use dry_run to preview.
// @Tags roster
// @Accept json
// @Produce json
// @Param dry_run query boolean false "Preview without applying"
// @Param roster body roster.Roster true "Parsed roster"
// @Success 200 {object} roster.Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /roster [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var body roster.Roster
	if err := c.BodyParser(&body); err != nil {
		return apierror.BadRequest(c, "invalid roster")
	}

	if c.QueryBool("dry_run") {
		report := h.tracker.PreviewRoster(body)
		l.Info("Roster previewed",
			zap.Int("players", report.Summary.Players),
			zap.Int("issues", report.Summary.Issues),
		)
		return c.JSON(report)
	}

	report := h.tracker.ImportRoster(c.Context(), body)
	if report.HasIssues() {
		l.Warn("Roster imported with issues", zap.Strings("issues", report.Messages()))
	} else {
		l.Info("Roster imported", zap.Int("assigned", report.Summary.Assigned))
	}
	return c.JSON(report)
}
