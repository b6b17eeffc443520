package market

import (
	"math"
	"time"

	"virtual-energy-trader/internal/model"
)

// Params are the tunable constants of the synthetic price curves.
// The defaults are part of the observable contract: the same date and the
// same params always reproduce the same curves.
type Params struct {
	BasePrice         float64 // off-peak baseline, $/MWh
	PeakAdder         float64 // added on top of base at full peak shape
	NoiseAmplitude    float64 // day-ahead jitter, drawn from [-amp, amp)
	DayAheadFloor     float64 // day-ahead prices never go below this
	RealTimeDeviation float64 // real-time deviation from day-ahead, [-dev, dev)
	RealTimeFloor     float64 // real-time prices never go below this
	SeedOffsetDays    int     // seed offset for the real-time stream
}

// DefaultParams returns the stock curve constants.
func DefaultParams() Params {
	return Params{
		BasePrice:         45.0,
		PeakAdder:         30.0,
		NoiseAmplitude:    3.0,
		DayAheadFloor:     5.0,
		RealTimeDeviation: 7.0,
		RealTimeFloor:     0.0,
		SeedOffsetDays:    7,
	}
}

// Generator produces deterministic synthetic price curves. All methods are
// pure functions of their inputs; the generator holds no mutable state.
type Generator struct {
	Params Params
}

func NewGenerator(p Params) *Generator {
	return &Generator{Params: p}
}

// DayAhead generates the 24-hour day-ahead curve for a trading date.
// The shape is a bimodal daily load curve: a morning hump over (6,12)
// peaking near 9 and an evening hump over (14,22) peaking near 18, with
// bounded random jitter on top.
func (g *Generator) DayAhead(date time.Time) model.PriceSeries {
	rng := NewStream(date)
	series := make(model.PriceSeries, 0, 24)
	for h := 0; h < 24; h++ {
		morning := math.Max(0, float64((h-6)*(12-h))) / 18.0
		evening := math.Max(0, float64((h-14)*(22-h))) / 16.0
		shape := morning + evening
		price := g.Params.BasePrice + g.Params.PeakAdder*shape + uniform(rng, g.Params.NoiseAmplitude)
		series = append(series, model.HourlyPrice{
			Hour:  h,
			Price: Round2(math.Max(g.Params.DayAheadFloor, price)),
		})
	}
	return series
}

// RealTime derives the real-time curve from a day-ahead curve. It uses a
// stream seeded from date + SeedOffsetDays so the deviations are independent
// of the day-ahead jitter for the same date. The day-ahead series must cover
// all 24 hours; callers settle against a freshly generated one.
func (g *Generator) RealTime(date time.Time, dayAhead model.PriceSeries) model.PriceSeries {
	rng := NewStream(date.AddDate(0, 0, g.Params.SeedOffsetDays))
	series := make(model.PriceSeries, 0, len(dayAhead))
	for _, p := range dayAhead {
		rt := p.Price + uniform(rng, g.Params.RealTimeDeviation)
		series = append(series, model.HourlyPrice{
			Hour:  p.Hour,
			Price: Round2(math.Max(g.Params.RealTimeFloor, rt)),
		})
	}
	return series
}

// Round2 rounds to 2 decimal places. All published prices and PnL values
// go through this.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
