package prices

import (
	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for cached prices.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the prices and health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/prices")
	group.Get("/", h.HandleList)
	group.Get("/:symbol", h.HandleGet)
	app.Get("/health", h.HandleHealth)
}

// HandleList returns every cached market price.
// @Summary List Cached Prices
// @Description Get the last market price the engine observed for every tracked symbol.
// @Tags prices
// @Produce json
// @Success 200 {array} reconcile.CachedPrice "Cached Prices"
// @Router /prices [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.All())
}

// HandleGet returns the cached market price of one symbol.
// @Summary Get Cached Price
// @Description Get the last market price for a symbol. set is false until the first successful fetch.
// @Tags prices
// @Produce json
// @Param symbol path string true "Asset symbol (e.g. 'BTC')"
// @Success 200 {object} reconcile.CachedPrice "Cached Price"
// @Failure 404 {object} map[string]string "Not Tracked"
// @Router /prices/{symbol} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	symbol := c.Params("symbol")
	entry, ok := h.service.One(symbol)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "symbol is not tracked: " + symbol,
		})
	}
	return c.JSON(entry)
}

// HandleHealth reports liveness and the last tick summary.
// @Summary Health
// @Description Liveness check including the summary of the last reconciliation tick.
// @Tags health
// @Produce json
// @Success 200 {object} prices.Health "Health"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(h.service.Health())
}
