package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"golang-broker-scryper/internal/server/service"
	"golang-broker-scryper/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CrawlerHandler handles HTTP requests for the live scraping views.
type CrawlerHandler struct {
	crawlerService service.CrawlerService
	logger         *logger.Logger
}

// NewCrawlerHandler creates a new CrawlerHandler.
func NewCrawlerHandler(crawlerService service.CrawlerService, logger *logger.Logger) *CrawlerHandler {
	return &CrawlerHandler{crawlerService: crawlerService, logger: logger}
}

// RegisterRoutes registers the crawler routes to the Echo group.
func (h *CrawlerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/live", h.GetLive)
	g.GET("/history", h.GetHistory)
	g.GET("/main-force", h.GetMainForce)
	g.GET("/stock-main-force", h.GetStockMainForce)
}

// GetLive godoc
// @Summary Live ranking across all brokers
// @Description Scrape every tracked broker's daily ranking; with a stock number, each broker's summary for that stock is included and totalled
// @Tags crawler
// @Produce  json
// @Param   number  query   string  false   "Stock number for per-broker summaries"
// @Success 200 {object} dto.LiveResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crawler/live [get]
func (h *CrawlerHandler) GetLive(c echo.Context) error {
	resp, err := h.crawlerService.LiveView(c.Request().Context(), strings.TrimSpace(c.QueryParam("number")))
	if err != nil {
		if errors.Is(err, service.ErrNoBrokers) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No brokers found in database"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetHistory godoc
// @Summary Historical ranking for one broker
// @Description Scrape one broker's ranking page over a trailing window of days
// @Tags crawler
// @Produce  json
// @Param   a     query   string  true    "Broker page identifier a"
// @Param   b     query   string  true    "Broker page identifier b"
// @Param   days  query   int     false   "Window length in days (default 5)"
// @Param   name  query   string  false   "Broker display name"
// @Param   mark  query   string  false   "Cross-reference broker mark"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crawler/history [get]
func (h *CrawlerHandler) GetHistory(c echo.Context) error {
	a, b := c.QueryParam("a"), c.QueryParam("b")
	if a == "" || b == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Broker identifiers a and b are required"})
	}

	// non-numeric or non-positive days falls back to the 5-day window
	days := 5
	if parsed, err := strconv.Atoi(c.QueryParam("days")); err == nil && parsed > 0 {
		days = parsed
	}

	name := c.QueryParam("name")
	if name == "" {
		name = "Unknown"
	}

	resp, err := h.crawlerService.HistoryView(c.Request().Context(), a, b, days, name, c.QueryParam("mark"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetMainForce godoc
// @Summary Per-broker day summaries for one stock
// @Description Collect each tracked broker's buy/sell/net summary of the stock, ordered by descending net volume
// @Tags crawler
// @Produce  json
// @Param   number  query   string  true    "Stock number"
// @Success 200 {object} dto.MainForceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crawler/main-force [get]
func (h *CrawlerHandler) GetMainForce(c echo.Context) error {
	stockNumber := strings.TrimSpace(c.QueryParam("number"))
	if stockNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Stock number is required"})
	}

	resp, err := h.crawlerService.MainForceView(c.Request().Context(), stockNumber)
	if err != nil {
		if errors.Is(err, service.ErrNoBrokers) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No brokers found in database"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetStockMainForce godoc
// @Summary Single-stock day summary
// @Description Scrape the stock's own main force page for today's buy and sell broker lists
// @Tags crawler
// @Produce  json
// @Param   number  query   string  true    "Stock number"
// @Success 200 {object} dto.StockMainForceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /crawler/stock-main-force [get]
func (h *CrawlerHandler) GetStockMainForce(c echo.Context) error {
	stockNumber := strings.TrimSpace(c.QueryParam("number"))
	if stockNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Stock number is required"})
	}

	resp, err := h.crawlerService.StockMainForceView(c.Request().Context(), stockNumber)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}
