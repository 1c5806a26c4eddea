package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-broker-scryper/internal/server/repository"
	"golang-broker-scryper/internal/server/service"
	"golang-broker-scryper/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FetchRunHandler handles HTTP requests for fetch runs.
type FetchRunHandler struct {
	fetcherService service.FetcherService
	runRepo        repository.FetchRunRepository
	logger         *logger.Logger
}

// NewFetchRunHandler creates a new FetchRunHandler.
func NewFetchRunHandler(fetcherService service.FetcherService, runRepo repository.FetchRunRepository, logger *logger.Logger) *FetchRunHandler {
	return &FetchRunHandler{fetcherService: fetcherService, runRepo: runRepo, logger: logger}
}

// RegisterRoutes registers the fetch run routes to the Echo group.
func (h *FetchRunHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetFetchRuns)
	g.POST("", h.TriggerFetchRun)
}

// GetFetchRuns godoc
// @Summary List past fetch runs
// @Description List fetch runs, most recent first
// @Tags fetch-runs
// @Produce  json
// @Param   limit  query   int false   "Maximum number of runs (default 50)"
// @Success 200 {array} entity.FetchRun
// @Failure 500 {object} dto.ErrorResponse
// @Router /runs [get]
func (h *FetchRunHandler) GetFetchRuns(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid limit value"})
		}
		limit = parsed
	}

	runs, err := h.runRepo.GetAll(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, runs)
}

// TriggerFetchRun godoc
// @Summary Trigger a fetch run now
// @Description Run the fetch-and-store pass over every tracked broker immediately
// @Tags fetch-runs
// @Produce  json
// @Success 200 {object} entity.FetchRun
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /runs [post]
func (h *FetchRunHandler) TriggerFetchRun(c echo.Context) error {
	run, err := h.fetcherService.FetchAndStoreAll(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoBrokers) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No brokers found in database"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, run)
}
