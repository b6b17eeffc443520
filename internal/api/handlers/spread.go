package handlers

import (
	"net/http"

	"virtual-energy-trader/internal/analysis"
	"virtual-energy-trader/internal/market"

	"github.com/gin-gonic/gin"
)

// SpreadHandler answers DA/RT spread analytics queries.
type SpreadHandler struct {
	gen *market.Generator
}

func NewSpreadHandler(gen *market.Generator) *SpreadHandler {
	return &SpreadHandler{gen: gen}
}

// GetSpread handles GET /api/analysis/spread?date=YYYY-MM-DD.
func (h *SpreadHandler) GetSpread(c *gin.Context) {
	date, key, ok := parseDateParam(c)
	if !ok {
		return
	}

	dayAhead := h.gen.DayAhead(date)
	realTime := h.gen.RealTime(date, dayAhead)
	c.JSON(http.StatusOK, analysis.ComputeSpread(key, dayAhead, realTime))
}
