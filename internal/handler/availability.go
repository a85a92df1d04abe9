package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"seatcheck/internal/cache"
	"seatcheck/internal/models"
)

// Querier is the orchestrator surface the handlers depend on.
type Querier interface {
	QueryDate(ctx context.Context, dateStr string) models.QueryResult
}

type AvailabilityHandler struct {
	checker Querier
	cache   cache.Cache
}

func NewAvailabilityHandler(q Querier, c cache.Cache) *AvailabilityHandler {
	return &AvailabilityHandler{
		checker: q,
		cache:   c,
	}
}

// API serves GET /api?date=dd/mm/yyyy as JSON. Business failures still
// answer 200: the ok field carries the outcome.
func (h *AvailabilityHandler) API(c echo.Context) error {
	req := models.QueryRequest{Date: c.QueryParam("date")}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, h.query(c, req))
}

// Run serves GET /run?date=dd/mm/yyyy as a rendered HTML table, or an inline
// failure notice when the query did not succeed.
func (h *AvailabilityHandler) Run(c echo.Context) error {
	req := models.QueryRequest{Date: c.QueryParam("date")}
	if err := req.Validate(); err != nil {
		return c.HTML(http.StatusBadRequest, renderValidationError(err))
	}

	html, err := renderResult(h.query(c, req))
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, html)
}

func (h *AvailabilityHandler) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}

func (h *AvailabilityHandler) query(c echo.Context, req models.QueryRequest) models.QueryResult {
	ctx := c.Request().Context()

	if cached, found := h.cache.Get(ctx, req); found {
		return cached
	}

	result := h.checker.QueryDate(ctx, req.Date)
	if result.Ok {
		_ = h.cache.Set(ctx, req, result)
	}
	return result
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
