package market

import "time"

// Window is the submission window for day-ahead bids: orders for a trading
// date may be created or cancelled only before HH:MM local time on the day
// before delivery.
type Window struct {
	Hour   int
	Minute int
}

// DefaultWindow is the 11:00 day-before cutoff.
func DefaultWindow() Window {
	return Window{Hour: 11, Minute: 0}
}

// DeadlineFor returns the submission cutoff for a trading date.
func (w Window) DeadlineFor(date time.Time) time.Time {
	dayBefore := date.AddDate(0, 0, -1)
	return time.Date(dayBefore.Year(), dayBefore.Month(), dayBefore.Day(), w.Hour, w.Minute, 0, 0, time.Local)
}

// Open reports whether bids for the trading date may still be mutated at
// the given wall-clock time.
func (w Window) Open(date, now time.Time) bool {
	return now.Before(w.DeadlineFor(date))
}
