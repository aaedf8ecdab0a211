package market

import (
	"errors"
	"net/http"

	"price-sync/core/httpx"
	"price-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for market prices.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the market routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/market")
	group.Get("/", h.HandleSnapshot)
	group.Get("/:lookupKey", h.HandlePrice)
}

// HandleSnapshot returns the full market snapshot.
// @Summary Market Snapshot
// @Description Get the current price of the top assets in the reference currency.
// @Tags market
// @Produce json
// @Param limit query int false "Number of assets (defaults to market.snapshot_limit)"
// @Success 200 {array} market.Ticker "Tickers"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /market [get]
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	tickers, err := h.service.Snapshot(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		l.Error("Market snapshot failed", zap.Error(err))
		return upstreamError(c, err)
	}
	return c.JSON(tickers)
}

// HandlePrice returns the spot price of a single asset.
// @Summary Market Price
// @Description Get the current price of one asset by its market lookup key.
// @Tags market
// @Produce json
// @Param lookupKey path string true "Market lookup key (e.g. 'bitcoin')"
// @Success 200 {object} reconcile.MarketPrice "Price"
// @Failure 404 {object} map[string]string "Unknown Asset"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /market/{lookupKey} [get]
func (h *Handler) HandlePrice(c *fiber.Ctx) error {
	key := c.Params("lookupKey")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("lookup_key", key))

	price, err := h.service.Price(c.UserContext(), key)
	if err != nil {
		l.Error("Market price lookup failed", zap.Error(err))
		return upstreamError(c, err)
	}
	return c.JSON(price)
}

// upstreamError maps an upstream 404 through and reports anything else as 502.
func upstreamError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	var se *httpx.StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
