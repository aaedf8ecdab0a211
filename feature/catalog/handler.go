package catalog

import (
	"errors"
	"net/http"

	"price-sync/core/httpx"
	"price-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/:symbol", h.HandleGetItem)
}

// HandleGetItem returns the catalog item tracked under a symbol.
// @Summary Get Catalog Item
// @Description Get the current catalog item and variant prices for a tracked asset.
// @Tags catalog
// @Produce json
// @Param symbol path string true "Asset symbol (e.g. 'btc')"
// @Success 200 {object} reconcile.CatalogItem "Catalog Item"
// @Failure 404 {object} map[string]string "Not Tracked"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /catalog/{symbol} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	symbol := c.Params("symbol")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("symbol", symbol))

	item, err := h.service.ItemForSymbol(c.UserContext(), symbol)
	if err != nil {
		status := fiber.StatusBadGateway
		var se *httpx.StatusError
		switch {
		case errors.Is(err, ErrNotTracked):
			status = fiber.StatusNotFound
		case errors.As(err, &se) && se.Code == http.StatusNotFound:
			status = fiber.StatusNotFound
		default:
			l.Error("Catalog lookup failed", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(item)
}
