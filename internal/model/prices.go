package model

// MarketType identifies which market a price series belongs to.
type MarketType string

const (
	MarketDayAhead MarketType = "day-ahead"
	MarketRealTime MarketType = "real-time"
)

// PriceSource identifies where a price series came from.
type PriceSource string

const (
	SourceExternal  PriceSource = "external"
	SourceSynthetic PriceSource = "synthetic"
)

// HourlyPrice is one hour of a price series.
// Prices are in $/MWh.
type HourlyPrice struct {
	Hour  int     `json:"hour"`
	Price float64 `json:"price"`
}

// PriceSeries is an ordered-by-hour sequence of hourly prices for one
// trading date. A complete series has exactly 24 entries covering 0..23.
type PriceSeries []HourlyPrice

// ByHour builds an hour -> price lookup.
func (s PriceSeries) ByHour() map[int]float64 {
	out := make(map[int]float64, len(s))
	for _, p := range s {
		out[p.Hour] = p.Price
	}
	return out
}

// Complete reports whether the series covers every hour 0..23 exactly once
// with non-negative prices.
func (s PriceSeries) Complete() bool {
	if len(s) != 24 {
		return false
	}
	seen := make(map[int]bool, 24)
	for _, p := range s {
		if p.Hour < 0 || p.Hour > 23 || p.Price < 0 || seen[p.Hour] {
			return false
		}
		seen[p.Hour] = true
	}
	return true
}
