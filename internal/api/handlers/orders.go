package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"virtual-energy-trader/internal/api/models"
	"virtual-energy-trader/internal/data"
	"virtual-energy-trader/internal/market"
	"virtual-energy-trader/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles bid submission, listing and cancellation.
type OrderHandler struct {
	store          *data.OrderStore
	window         market.Window
	maxBidsPerHour int

	// now is swappable so tests can pin the clock for deadline checks.
	now func() time.Time
}

func NewOrderHandler(store *data.OrderStore, window market.Window, maxBidsPerHour int) *OrderHandler {
	return &OrderHandler{
		store:          store,
		window:         window,
		maxBidsPerHour: maxBidsPerHour,
		now:            time.Now,
	}
}

// ListOrders handles GET /api/orders?date=YYYY-MM-DD.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	_, key, ok := parseDateParam(c)
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

	c.JSON(http.StatusOK, models.OrdersResponse{Date: key, Orders: orders})
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	date, err := model.ParseTradingDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATE",
				Message: "Invalid date format; expected YYYY-MM-DD",
			},
		})
		return
	}

	if !h.requireOpenWindow(c, date) {
		return
	}

	order := model.Order{
		ID:        uuid.NewString(),
		Date:      model.DateKey(date),
		Hour:      *req.Hour,
		Side:      model.Side(req.Side),
		Price:     req.Price,
		Quantity:  req.Quantity,
		CreatedAt: h.now().Format(time.RFC3339),
	}

	if err := h.store.Append(order, h.maxBidsPerHour); err != nil {
		if errors.Is(err, data.ErrHourLimit) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "BID_LIMIT_REACHED",
					Message: err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// DeleteOrder handles DELETE /api/orders/:id?date=YYYY-MM-DD.
// Cancellation obeys the same submission deadline as creation.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	date, key, ok := parseDateParam(c)
	if !ok {
		return
	}

	if !h.requireOpenWindow(c, date) {
		return
	}

	id := c.Param("id")
	if err := h.store.Delete(key, id); err != nil {
		if errors.Is(err, data.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "ORDER_NOT_FOUND",
					Message: "Order not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// requireOpenWindow rejects the request when the submission deadline for
// the trading date has passed.
func (h *OrderHandler) requireOpenWindow(c *gin.Context, date time.Time) bool {
	if h.window.Open(date, h.now()) {
		return true
	}
	deadline := h.window.DeadlineFor(date)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code: "SUBMISSION_CLOSED",
			Message: fmt.Sprintf("Submission closed for %s. Deadline was %s local.",
				model.DateKey(date), deadline.Format("2006-01-02 15:04")),
		},
	})
	return false
}
