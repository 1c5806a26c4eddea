package http

import (
	"net/http"
	"time"

	"golang-broker-scryper/internal/server/dto"
	"golang-broker-scryper/internal/server/service"
	"golang-broker-scryper/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockRecordHandler handles HTTP requests for stored records.
type StockRecordHandler struct {
	recordService service.StockRecordService
	logger        *logger.Logger
}

// NewStockRecordHandler creates a new StockRecordHandler.
func NewStockRecordHandler(recordService service.StockRecordService, logger *logger.Logger) *StockRecordHandler {
	return &StockRecordHandler{recordService: recordService, logger: logger}
}

// RegisterRoutes registers the record routes to the Echo group.
func (h *StockRecordHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateRecord)
	g.GET("", h.GetRecordsByDate)
	g.GET("/stats", h.GetStats)
}

// CreateRecord godoc
// @Summary Add a record manually
// @Description Store one record; an existing row for the same broker, stock, date and type is updated instead
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record  body    dto.CreateStockRecordRequest true    "Record to store"
// @Success 200 {object} map[string]bool
// @Success 201 {object} map[string]bool
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /records [post]
func (h *StockRecordHandler) CreateRecord(c echo.Context) error {
	var req dto.CreateStockRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request payload"})
	}
	if req.BrokerID == 0 || req.StockCode == "" || req.Date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "broker_id, stock_code and date are required"})
	}

	created, err := h.recordService.Create(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, echo.Map{"created": created})
}

// GetRecordsByDate godoc
// @Summary List records for one date
// @Description List the stored records of one trading day, ordered by descending net volume
// @Tags records
// @Produce  json
// @Param   date  query   string  true    "Date in YYYY-MM-DD format"
// @Success 200 {array} dto.StockRecordResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /records [get]
func (h *StockRecordHandler) GetRecordsByDate(c echo.Context) error {
	raw := c.QueryParam("date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be in YYYY-MM-DD format"})
	}

	records, err := h.recordService.GetByDate(c.Request().Context(), date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, records)
}

// GetStats godoc
// @Summary Aggregate volumes per stock
// @Description Sum the stored buy, sell and net volumes per stock across every broker and date
// @Tags records
// @Produce  json
// @Success 200 {array} repository.StockRecordStat
// @Failure 500 {object} dto.ErrorResponse
// @Router /records/stats [get]
func (h *StockRecordHandler) GetStats(c echo.Context) error {
	stats, err := h.recordService.GetStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, stats)
}
