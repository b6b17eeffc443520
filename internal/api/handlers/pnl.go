package handlers

import (
	"net/http"

	"virtual-energy-trader/internal/api/models"
	"virtual-energy-trader/internal/data"
	"virtual-energy-trader/internal/market"

	"github.com/gin-gonic/gin"
)

// PnLHandler answers settlement queries.
type PnLHandler struct {
	gen   *market.Generator
	store *data.OrderStore
}

func NewPnLHandler(gen *market.Generator, store *data.OrderStore) *PnLHandler {
	return &PnLHandler{gen: gen, store: store}
}

// GetPnL handles GET /api/pnl?date=YYYY-MM-DD.
// Settlement always uses the synthetic curves, even when the day-ahead
// endpoint served external prices for the same date: both curves must come
// from the same generation pass or the spread would be meaningless.
func (h *PnLHandler) GetPnL(c *gin.Context) {
	date, key, ok := parseDateParam(c)
	if !ok {
		return
	}

	orders, err := h.store.ListByDate(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, h.gen.Settle(date, orders))
}
