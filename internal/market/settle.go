package market

import (
	"time"

	"virtual-energy-trader/internal/model"
)

// PnLItem is the settlement result for a single order.
type PnLItem struct {
	OrderID       string     `json:"order_id"`
	Date          string     `json:"date"`
	Hour          int        `json:"hour"`
	Side          model.Side `json:"side"`
	Quantity      float64    `json:"quantity"`
	BidPrice      float64    `json:"bid_price"`
	DayAheadPrice float64    `json:"day_ahead_price"`
	RealTimePrice float64    `json:"real_time_price"`
	Filled        bool       `json:"filled"`
	PnL           float64    `json:"pnl"`
}

// PnLSummary aggregates settlement over all orders for one trading date.
type PnLSummary struct {
	Date     string    `json:"date"`
	Currency string    `json:"currency"`
	TotalPnL float64   `json:"total_pnl"`
	Details  []PnLItem `json:"details"`
}

// Settle computes per-order and total PnL for a trading date. It always
// regenerates both synthetic curves so the two series used for settlement
// are internally consistent, then settles each order independently:
// pnl = signedQty * (realTime - dayAhead) when the bid fills, else 0.
//
// Pure function of (date, orders): nothing is cached or persisted, so
// results always reflect the current order set.
func (g *Generator) Settle(date time.Time, orders []model.Order) PnLSummary {
	dayAhead := g.DayAhead(date)
	realTime := g.RealTime(date, dayAhead)
	daByHour := dayAhead.ByHour()
	rtByHour := realTime.ByHour()

	details := make([]PnLItem, 0, len(orders))
	total := 0.0
	for _, o := range orders {
		daPrice := daByHour[o.Hour]
		rtPrice, ok := rtByHour[o.Hour]
		if !ok {
			// A missing real-time hour should never block settlement.
			rtPrice = daPrice
		}

		fill := EvaluateFill(o, daPrice)
		pnl := 0.0
		if fill.Filled {
			pnl = fill.SignedQuantity * (rtPrice - daPrice)
		}
		total += pnl

		details = append(details, PnLItem{
			OrderID:       o.ID,
			Date:          model.DateKey(date),
			Hour:          o.Hour,
			Side:          o.Side,
			Quantity:      o.Quantity,
			BidPrice:      o.Price,
			DayAheadPrice: daPrice,
			RealTimePrice: rtPrice,
			Filled:        fill.Filled,
			PnL:           Round2(pnl),
		})
	}

	return PnLSummary{
		Date:     model.DateKey(date),
		Currency: "USD",
		TotalPnL: Round2(total),
		Details:  details,
	}
}
