package handlers

import (
	"log"
	"net/http"
	"time"

	"virtual-energy-trader/internal/api/models"
	"virtual-energy-trader/internal/data"
	"virtual-energy-trader/internal/market"
	"virtual-energy-trader/internal/model"

	"github.com/gin-gonic/gin"
)

// PriceHandler answers price curve queries.
type PriceHandler struct {
	gen  *market.Generator
	feed *data.DayAheadFeed
}

// NewPriceHandler creates a price handler. feed may be nil when no external
// source is configured.
func NewPriceHandler(gen *market.Generator, feed *data.DayAheadFeed) *PriceHandler {
	return &PriceHandler{gen: gen, feed: feed}
}

// GetDayAhead handles GET /api/prices/day-ahead?date=YYYY-MM-DD.
// External prices are preferred when a feed is configured and answers with a
// complete series; any feed failure silently falls back to the synthetic
// generator so price queries stay available.
func (h *PriceHandler) GetDayAhead(c *gin.Context) {
	date, key, ok := parseDateParam(c)
	if !ok {
		return
	}

	if h.feed.Enabled() {
		series, err := h.feed.Fetch(key)
		if err == nil {
			c.JSON(http.StatusOK, models.PriceSeriesResponse{
				Date:   key,
				Source: model.SourceExternal,
				Series: series,
			})
			return
		}
		log.Printf("[Prices] external feed unavailable for %s, using synthetic: %v", key, err)
	}

	c.JSON(http.StatusOK, models.PriceSeriesResponse{
		Date:   key,
		Source: model.SourceSynthetic,
		Series: h.gen.DayAhead(date),
	})
}

// GetRealTime handles GET /api/prices/real-time?date=YYYY-MM-DD.
// Real-time prices are always derived from the synthetic day-ahead curve so
// the pair stays internally consistent for settlement.
func (h *PriceHandler) GetRealTime(c *gin.Context) {
	date, key, ok := parseDateParam(c)
	if !ok {
		return
	}

	dayAhead := h.gen.DayAhead(date)
	c.JSON(http.StatusOK, models.PriceSeriesResponse{
		Date:   key,
		Source: model.SourceSynthetic,
		Series: h.gen.RealTime(date, dayAhead),
	})
}

// parseDateParam reads and validates the date query parameter, writing a
// 400 response when it is missing or malformed.
func parseDateParam(c *gin.Context) (time.Time, string, bool) {
	value := c.Query("date")
	if value == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_PARAM",
				Message: "date query parameter is required",
			},
		})
		return time.Time{}, "", false
	}
	date, err := model.ParseTradingDate(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATE",
				Message: "Invalid date format; expected YYYY-MM-DD",
			},
		})
		return time.Time{}, "", false
	}
	return date, model.DateKey(date), true
}
