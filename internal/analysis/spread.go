package analysis

import (
	"math"

	"virtual-energy-trader/internal/market"
	"virtual-energy-trader/internal/model"
)

// HourSpread is the day-ahead / real-time gap for one hour.
// Spread = real-time - day-ahead: positive means a filled buy at that hour
// would have settled profitably.
type HourSpread struct {
	Hour     int     `json:"hour"`
	DayAhead float64 `json:"day_ahead"`
	RealTime float64 `json:"real_time"`
	Spread   float64 `json:"spread"`
}

// SpreadReport is a date-level summary of where the DA/RT spread was widest.
type SpreadReport struct {
	Date         string       `json:"date"`
	Rows         []HourSpread `json:"rows"`
	BestBuyHour  int          `json:"best_buy_hour"`  // hour with the largest positive spread
	BestSellHour int          `json:"best_sell_hour"` // hour with the most negative spread
	MaxSpread    float64      `json:"max_spread"`
	MinSpread    float64      `json:"min_spread"`
	MeanAbs      float64      `json:"mean_abs_spread"`
}

// ComputeSpread builds the per-hour spread table for one trading date.
// Both series must come from the same generation pass so the comparison is
// internally consistent.
func ComputeSpread(date string, dayAhead, realTime model.PriceSeries) SpreadReport {
	rtByHour := realTime.ByHour()

	report := SpreadReport{
		Date:      date,
		Rows:      make([]HourSpread, 0, len(dayAhead)),
		MaxSpread: math.Inf(-1),
		MinSpread: math.Inf(1),
	}

	sumAbs := 0.0
	for _, p := range dayAhead {
		rt, ok := rtByHour[p.Hour]
		if !ok {
			rt = p.Price
		}
		spread := market.Round2(rt - p.Price)
		report.Rows = append(report.Rows, HourSpread{
			Hour:     p.Hour,
			DayAhead: p.Price,
			RealTime: rt,
			Spread:   spread,
		})
		sumAbs += math.Abs(spread)

		if spread > report.MaxSpread {
			report.MaxSpread = spread
			report.BestBuyHour = p.Hour
		}
		if spread < report.MinSpread {
			report.MinSpread = spread
			report.BestSellHour = p.Hour
		}
	}

	if len(report.Rows) == 0 {
		report.MaxSpread = 0
		report.MinSpread = 0
		return report
	}
	report.MeanAbs = market.Round2(sumAbs / float64(len(report.Rows)))
	return report
}
