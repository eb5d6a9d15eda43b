package players

import (
	"team-inventory/core/apierror"
	"team-inventory/core/ledger"
	"team-inventory/core/logger"
	"team-inventory/core/tracker"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateRequest is the body of POST /players.
type CreateRequest struct {
	Name         string `json:"name"`
	JerseyNumber *int   `json:"jerseyNumber,omitempty"`
}

// CheckoutRequest is the body of POST /players/:id/checkout.
type CheckoutRequest struct {
	InventoryID string `json:"inventoryId"`
	Quantity    int    `json:"quantity"`
}

// Handler handles HTTP requests for players and assignments.
type Handler struct {
	tracker *tracker.Tracker
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(t *tracker.Tracker, logger *zap.Logger) *Handler {
	return &Handler{tracker: t, logger: logger}
}

// RegisterRoutes registers the player and assignment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/players")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
	group.Get("/:id/assignments", h.HandleAssignments)
	group.Post("/:id/checkout", h.HandleCheckout)
	group.Post("/:id/checkin", h.HandleCheckInAll)

	assignments := app.Group("/assignments")
	assignments.Get("/", h.HandleListAssignments)
	assignments.Delete("/:id", h.HandleCheckIn)
}

// HandleList returns the roster.
// @Summary List Players
// @Description Returns all players ordered by name.
// @Tags players
// @Produce json
// @Success 200 {array} ledger.Player
// @Router /players [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.tracker.ListPlayers())
}

// HandleCreate adds a player.
// @Summary Add Player
// @Description Adds a player. A name matching an existing player ignoring case returns that player.
// @Tags players
// @Accept json
// @Produce json
// @Param player body CreateRequest true "Player"
// @Success 201 {object} ledger.Player
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var body CreateRequest
	if err := c.BodyParser(&body); err != nil {
		return apierror.BadRequest(c, "invalid request body")
	}

	player, err := h.tracker.AddPlayer(c.Context(), body.Name, body.JerseyNumber)
	if err != nil {
		return apierror.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(player)
}

// HandleGet returns one player.
// @Summary Get Player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} ledger.Player
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	player, ok := h.tracker.FindPlayer(id)
	if !ok {
		return apierror.Respond(c, &ledger.NotFoundError{Kind: ledger.KindPlayer, ID: id})
	}
	return c.JSON(player)
}

// HandleDelete removes a player after checking in their items.
// @Summary Delete Player
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	id := c.Params("id")

	checkedIn, err := h.tracker.DeletePlayer(c.Context(), id)
	if err != nil {
		return apierror.Respond(c, err)
	}
	l.Info("Player deleted", zap.String("player_id", id), zap.Int("checked_in", checkedIn))
	return c.JSON(fiber.Map{"deleted": id, "checkedIn": checkedIn})
}

// HandleAssignments returns what a player holds.
// @Summary Player Holdings
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {array} ledger.ItemHolding
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id}/assignments [get]
func (h *Handler) HandleAssignments(c *fiber.Ctx) error {
	holdings, err := h.tracker.PlayerAssignments(c.Params("id"))
	if err != nil {
		return apierror.Respond(c, err)
	}
	return c.JSON(holdings)
}

// HandleCheckout assigns units of an item to a player.
// @Summary Check Out
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param checkout body CheckoutRequest true "Item and quantity"
// @Success 201 {object} ledger.Assignment
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]interface{} "Insufficient Stock"
// @Router /players/{id}/checkout [post]
func (h *Handler) HandleCheckout(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var body CheckoutRequest
	if err := c.BodyParser(&body); err != nil {
		return apierror.BadRequest(c, "invalid request body")
	}

	a, err := h.tracker.Checkout(c.Context(), c.Params("id"), body.InventoryID, body.Quantity)
	if err != nil {
		l.Warn("Checkout rejected", zap.String("inventory_id", body.InventoryID), zap.Error(err))
		return apierror.Respond(c, err)
	}
	l.Info("Checked out",
		zap.String("assignment_id", a.ID),
		zap.String("player_id", a.PlayerID),
		zap.String("inventory_id", a.InventoryID),
		zap.Int("quantity", a.Quantity),
	)
	return c.Status(fiber.StatusCreated).JSON(a)
}

// HandleCheckInAll returns everything a player holds.
// @Summary Check In All
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} map[string]int
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id}/checkin [post]
func (h *Handler) HandleCheckInAll(c *fiber.Ctx) error {
	n, err := h.tracker.CheckInAll(c.Context(), c.Params("id"))
	if err != nil {
		return apierror.Respond(c, err)
	}
	return c.JSON(fiber.Map{"checkedIn": n})
}

// HandleListAssignments returns every active assignment.
// @Summary List Assignments
// @Tags assignments
// @Produce json
// @Success 200 {array} ledger.Assignment
// @Router /assignments [get]
func (h *Handler) HandleListAssignments(c *fiber.Ctx) error {
	return c.JSON(h.tracker.ListAssignments())
}

// HandleCheckIn returns a single assignment to stock.
// @Summary Check In
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} ledger.Assignment
// @Failure 404 {object} map[string]string "Not Found"
// @Router /assignments/{id} [delete]
func (h *Handler) HandleCheckIn(c *fiber.Ctx) error {
	a, err := h.tracker.CheckIn(c.Context(), c.Params("id"))
	if err != nil {
		return apierror.Respond(c, err)
	}
	return c.JSON(a)
}
