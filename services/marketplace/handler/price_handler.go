package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	model "fishmarket/internal/models"
	"fishmarket/services/marketplace/helpers"
	"fishmarket/utils"
)

type PriceServiceInterface interface {
	History(fishTypeID string, limit int) ([]model.PricePoint, error)
	AggregateDay(day time.Time) ([]model.PricePoint, error)
}

type PriceHandler struct {
	service PriceServiceInterface
}

func NewPriceHandler(service PriceServiceInterface) *PriceHandler {
	return &PriceHandler{service: service}
}

// GetPriceHistoryHandler handles GET /fish-types/:fish_type_id/prices
// Query param: limit (default 30 days)
func (h *PriceHandler) GetPriceHistoryHandler(c *gin.Context) {
	fishTypeID := c.Param("fish_type_id")

	limit := 30
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, err, "invalid limit")
			return
		}
		limit = n
	}

	points, err := h.service.History(fishTypeID, limit)
	if err != nil {
		helpers.HandleServiceError(c, "GetPriceHistoryHandler", err, map[string]any{"fish_type_id": fishTypeID})
		return
	}
	if points == nil {
		points = []model.PricePoint{}
	}

	utils.JSONResponse(c, http.StatusOK, points, "price history retrieved successfully")
}

// AggregatePricesHandler handles POST /prices/aggregate
// Admin only. Query param date=YYYY-MM-DD, defaulting to yesterday.
func (h *PriceHandler) AggregatePricesHandler(c *gin.Context) {
	day := time.Now().UTC().AddDate(0, 0, -1)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err, "invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	points, err := h.service.AggregateDay(day)
	if err != nil {
		helpers.HandleServiceError(c, "AggregatePricesHandler", err, map[string]any{"date": day.Format("2006-01-02")})
		return
	}
	if points == nil {
		points = []model.PricePoint{}
	}

	utils.JSONResponse(c, http.StatusOK, points, "prices aggregated successfully")
	helpers.LogSuccess("AggregatePricesHandler", "prices aggregated successfully", map[string]any{
		"date":       day.Format("2006-01-02"),
		"fish_types": len(points),
	})
}
