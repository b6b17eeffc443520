package market

import "virtual-energy-trader/internal/model"

// FillResult is the outcome of evaluating one bid against the day-ahead
// clearing price. SignedQuantity is positive for buys and negative for
// sells; there are no partial fills.
type FillResult struct {
	Filled         bool
	SignedQuantity float64
}

// EvaluateFill applies the price-taking fill rule: a buy fills iff its
// limit price is at or above the clearing price, a sell fills iff its limit
// price is at or below it. This models a small participant against a known
// clearing price, not a two-sided auction.
func EvaluateFill(o model.Order, dayAheadPrice float64) FillResult {
	if o.Side == model.SideBuy {
		return FillResult{
			Filled:         o.Price >= dayAheadPrice,
			SignedQuantity: o.Quantity,
		}
	}
	return FillResult{
		Filled:         o.Price <= dayAheadPrice,
		SignedQuantity: -o.Quantity,
	}
}
