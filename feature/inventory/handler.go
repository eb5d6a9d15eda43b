package inventory

import (
	"team-inventory/core/apierror"
	"team-inventory/core/ledger"
	"team-inventory/core/logger"
	"team-inventory/core/tracker"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventory items.
type Handler struct {
	tracker *tracker.Tracker
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(t *tracker.Tracker, logger *zap.Logger) *Handler {
	return &Handler{tracker: t, logger: logger}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/", h.HandleList)
	group.Get("/low-stock", h.HandleLowStock)
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Patch("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
	group.Get("/:id/assignments", h.HandleAssignments)
}

// HandleList returns every item.
// @Summary List Items
// @Description Returns all inventory items, most recently added first.
// @Tags inventory
// @Produce json
// @Success 200 {array} ledger.Item
// @Router /inventory [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.tracker.ListItems())
}

// HandleLowStock returns items at or below their reorder point.
// @Summary List Low Stock Items
// @Tags inventory
// @Produce json
// @Success 200 {array} ledger.Item
// @Router /inventory/low-stock [get]
func (h *Handler) HandleLowStock(c *fiber.Ctx) error {
	return c.JSON(h.tracker.LowStock())
}

// HandleGet returns one item.
// @Summary Get Item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ledger.Item
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	item, ok := h.tracker.FindItem(id)
	if !ok {
		return apierror.Respond(c, &ledger.NotFoundError{Kind: ledger.KindItem, ID: id})
	}
	return c.JSON(item)
}

// HandleCreate adds an item.
// @Summary Add Item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body ledger.NewItem true "Item"
// @Success 201 {object} ledger.Item
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /inventory [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var body ledger.NewItem
	if err := c.BodyParser(&body); err != nil {
		return apierror.BadRequest(c, "invalid request body")
	}

	item, err := h.tracker.AddItem(c.Context(), body)
	if err != nil {
		return apierror.Respond(c, err)
	}
	l.Info("Item added", zap.String("inventory_id", item.ID), zap.String("product", item.ProductName))
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdate applies a partial update.
// @Summary Update Item
// @Description Only the fields present in the body are changed.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param patch body ledger.ItemPatch true "Fields to change"
// @Success 200 {object} ledger.Item
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var patch ledger.ItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return apierror.BadRequest(c, "invalid request body")
	}

	item, err := h.tracker.UpdateItem(c.Context(), c.Params("id"), patch)
	if err != nil {
		return apierror.Respond(c, err)
	}
	return c.JSON(item)
}

// HandleDelete removes an item.
// @Summary Delete Item
// @Description Removes the item and every assignment referencing it. Held quantities are discarded.
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	id := c.Params("id")

	removed, err := h.tracker.DeleteItem(c.Context(), id)
	if err != nil {
		return apierror.Respond(c, err)
	}
	l.Info("Item deleted", zap.String("inventory_id", id), zap.Int("assignments_removed", removed))
	return c.JSON(fiber.Map{"deleted": id, "assignmentsRemoved": removed})
}

// HandleAssignments returns who holds the item.
// @Summary Item Holders
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {array} ledger.PlayerHolding
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/{id}/assignments [get]
func (h *Handler) HandleAssignments(c *fiber.Ctx) error {
	holdings, err := h.tracker.ItemAssignments(c.Params("id"))
	if err != nil {
		return apierror.Respond(c, err)
	}
	return c.JSON(holdings)
}
