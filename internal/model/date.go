package model

import (
	"fmt"
	"time"
)

// TradingDateLayout is the external representation of a trading date.
const TradingDateLayout = "2006-01-02"

// ParseTradingDate parses a YYYY-MM-DD string into a calendar date.
func ParseTradingDate(value string) (time.Time, error) {
	t, err := time.Parse(TradingDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

// DateKey formats a date back to its YYYY-MM-DD form. Used as the
// partition key for orders and in all responses.
func DateKey(t time.Time) string {
	return t.Format(TradingDateLayout)
}
