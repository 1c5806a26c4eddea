package http

import (
	"errors"
	"net/http"

	"golang-broker-scryper/internal/server/service"
	"golang-broker-scryper/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BrokerHandler handles HTTP requests for the tracked brokers.
type BrokerHandler struct {
	brokerService service.BrokerService
	logger        *logger.Logger
}

// NewBrokerHandler creates a new BrokerHandler.
func NewBrokerHandler(brokerService service.BrokerService, logger *logger.Logger) *BrokerHandler {
	return &BrokerHandler{brokerService: brokerService, logger: logger}
}

// RegisterRoutes registers the broker routes to the Echo group.
func (h *BrokerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetBrokers)
}

// GetBrokers godoc
// @Summary List tracked brokers
// @Description List every broker the scraper tracks, with its page identifiers
// @Tags brokers
// @Produce  json
// @Success 200 {array} entity.Broker
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brokers [get]
func (h *BrokerHandler) GetBrokers(c echo.Context) error {
	brokers, err := h.brokerService.GetBrokers(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoBrokers) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No brokers found in database"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, brokers)
}
