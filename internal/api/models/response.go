package models

import "virtual-energy-trader/internal/model"

// PriceSeriesResponse is the payload for both price endpoints.
type PriceSeriesResponse struct {
	Date   string            `json:"date"`
	Source model.PriceSource `json:"source"`
	Series model.PriceSeries `json:"series"`
}

// OrdersResponse lists all orders for one trading date.
type OrdersResponse struct {
	Date   string        `json:"date"`
	Orders []model.Order `json:"orders"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
