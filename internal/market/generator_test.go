package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func TestDayAheadDeterministic(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	date := mustDate(t, "2024-06-15")

	first := gen.DayAhead(date)
	second := gen.DayAhead(date)
	assert.Equal(t, first, second, "same date must reproduce the identical series")
}

func TestDayAheadCoverage(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	series := gen.DayAhead(mustDate(t, "2024-06-15"))

	require.Len(t, series, 24)
	for h, p := range series {
		assert.Equal(t, h, p.Hour, "series must be ordered by hour 0..23")
	}
	assert.True(t, series.Complete())
}

func TestDayAheadBounds(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	// Shape peaks at 1.0 (evening hump at h=18), so the max possible price
	// is base + peak + noise = 78.
	for _, day := range []string{"2024-01-01", "2024-06-15", "2025-12-31"} {
		series := gen.DayAhead(mustDate(t, day))
		for _, p := range series {
			assert.GreaterOrEqual(t, p.Price, 5.0, "day %s hour %d below floor", day, p.Hour)
			assert.LessOrEqual(t, p.Price, 78.0, "day %s hour %d above curve ceiling", day, p.Hour)
		}
	}
}

func TestDayAheadPeaksAboveOffPeak(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	series := gen.DayAhead(mustDate(t, "2024-06-15"))
	prices := series.ByHour()

	// The evening peak carries the full 30 adder; hour 3 carries none.
	// Noise is at most +/-3 per hour, so the gap cannot close.
	assert.Greater(t, prices[18], prices[3])
	assert.Greater(t, prices[9], prices[3])
}

func TestDayAheadDiffersAcrossDates(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	a := gen.DayAhead(mustDate(t, "2024-06-15"))
	b := gen.DayAhead(mustDate(t, "2024-06-16"))
	assert.NotEqual(t, a, b)
}

func TestRealTimeDeterministic(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	date := mustDate(t, "2024-06-15")
	dayAhead := gen.DayAhead(date)

	first := gen.RealTime(date, dayAhead)
	second := gen.RealTime(date, dayAhead)
	assert.Equal(t, first, second)
}

func TestRealTimeIndependentOfDayAheadStream(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	date := mustDate(t, "2024-06-15")
	dayAhead := gen.DayAhead(date)
	realTime := gen.RealTime(date, dayAhead)

	require.Len(t, realTime, 24)
	assert.NotEqual(t, dayAhead, realTime, "real-time must use an independent stream")
}

func TestRealTimeBoundedDeviation(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	date := mustDate(t, "2024-06-15")
	dayAhead := gen.DayAhead(date)
	realTime := gen.RealTime(date, dayAhead)

	daByHour := dayAhead.ByHour()
	for _, p := range realTime {
		assert.GreaterOrEqual(t, p.Price, 0.0)
		// Deviation is drawn from [-7, 7); allow for rounding on both sides.
		assert.InDelta(t, daByHour[p.Hour], p.Price, 7.01)
	}
}

func TestRealTimePreservesHourOrder(t *testing.T) {
	gen := NewGenerator(DefaultParams())
	date := mustDate(t, "2024-03-01")
	realTime := gen.RealTime(date, gen.DayAhead(date))
	for h, p := range realTime {
		assert.Equal(t, h, p.Hour)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2344))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, -1.23, Round2(-1.2344))
	assert.Equal(t, 0.0, Round2(0.0001))
}
