package analysis

import (
	"testing"

	"virtual-energy-trader/internal/market"
	"virtual-energy-trader/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSpread(t *testing.T) {
	da := model.PriceSeries{
		{Hour: 0, Price: 40.0},
		{Hour: 1, Price: 50.0},
		{Hour: 2, Price: 60.0},
	}
	rt := model.PriceSeries{
		{Hour: 0, Price: 45.0},
		{Hour: 1, Price: 48.0},
		{Hour: 2, Price: 60.0},
	}

	report := ComputeSpread("2024-06-15", da, rt)
	require.Len(t, report.Rows, 3)

	assert.Equal(t, 5.0, report.Rows[0].Spread)
	assert.Equal(t, -2.0, report.Rows[1].Spread)
	assert.Equal(t, 0.0, report.Rows[2].Spread)

	assert.Equal(t, 0, report.BestBuyHour)
	assert.Equal(t, 1, report.BestSellHour)
	assert.Equal(t, 5.0, report.MaxSpread)
	assert.Equal(t, -2.0, report.MinSpread)
	assert.Equal(t, 2.33, report.MeanAbs)
}

func TestComputeSpreadMissingRealTimeHour(t *testing.T) {
	da := model.PriceSeries{{Hour: 0, Price: 40.0}, {Hour: 1, Price: 50.0}}
	rt := model.PriceSeries{{Hour: 0, Price: 44.0}}

	report := ComputeSpread("2024-06-15", da, rt)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, 0.0, report.Rows[1].Spread, "missing hour falls back to day-ahead")
	assert.Equal(t, 50.0, report.Rows[1].RealTime)
}

func TestComputeSpreadEmpty(t *testing.T) {
	report := ComputeSpread("2024-06-15", nil, nil)
	assert.Empty(t, report.Rows)
	assert.Equal(t, 0.0, report.MaxSpread)
	assert.Equal(t, 0.0, report.MinSpread)
	assert.Equal(t, 0.0, report.MeanAbs)
}

func TestComputeSpreadOnGeneratedCurves(t *testing.T) {
	gen := market.NewGenerator(market.DefaultParams())
	date, err := model.ParseTradingDate("2024-06-15")
	require.NoError(t, err)
	da := gen.DayAhead(date)
	rt := gen.RealTime(date, da)

	report := ComputeSpread("2024-06-15", da, rt)
	require.Len(t, report.Rows, 24)
	assert.GreaterOrEqual(t, report.MaxSpread, report.MinSpread)
	for _, row := range report.Rows {
		assert.Equal(t, market.Round2(row.RealTime-row.DayAhead), row.Spread)
	}
}
