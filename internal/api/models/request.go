package models

// CreateOrderRequest is the body for POST /api/orders.
// Hour is a pointer so that hour 0 survives the required check.
type CreateOrderRequest struct {
	Date     string  `json:"date" binding:"required"` // trading date YYYY-MM-DD (day-ahead delivery date)
	Hour     *int    `json:"hour" binding:"required,gte=0,lte=23"`
	Side     string  `json:"side" binding:"required,oneof=buy sell"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"` // MWh
}
