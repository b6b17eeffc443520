package data

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"virtual-energy-trader/internal/model"
)

// FeedError represents a failure talking to the external price feed.
type FeedError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *FeedError) Error() string {
	return e.Message
}

// DayAheadFeed fetches real day-ahead prices from an external endpoint
// (e.g. a Grid Status style API). The endpoint must answer
// GET <url>?date=YYYY-MM-DD with a JSON array of {"hour", "price"} objects
// covering all 24 hours. Anything else is reported as an error so the
// caller can fall back to the synthetic generator.
type DayAheadFeed struct {
	URL    string
	Client *http.Client

	cache *SeriesCache
}

// NewDayAheadFeed creates a feed client. cacheTTL <= 0 disables caching.
func NewDayAheadFeed(feedURL string, timeout, cacheTTL time.Duration) *DayAheadFeed {
	return &DayAheadFeed{
		URL: feedURL,
		Client: &http.Client{
			Timeout: timeout,
		},
		cache: NewSeriesCache(cacheTTL),
	}
}

// Enabled reports whether an external feed is configured at all.
func (f *DayAheadFeed) Enabled() bool {
	return f != nil && f.URL != ""
}

// Fetch retrieves the day-ahead series for one trading date.
func (f *DayAheadFeed) Fetch(date string) (model.PriceSeries, error) {
	if !f.Enabled() {
		return nil, &FeedError{Code: "FEED_DISABLED", Message: "no external feed configured"}
	}

	if cached, found := f.cache.Get(date); found {
		log.Printf("[Feed] cache hit for %s (%d hours)", date, len(cached))
		return cached, nil
	}

	u, err := url.Parse(f.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}
	q := u.Query()
	q.Set("date", date)
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.Client.Do(req)
	if err != nil {
		log.Printf("[Feed] request failed for %s: %v (duration: %v)", date, err, time.Since(start))
		return nil, fmt.Errorf("execute feed request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Feed] response: %d %s for %s (duration: %v)", resp.StatusCode, resp.Status, date, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Code:       "FEED_ERROR",
			Message:    fmt.Sprintf("feed returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var series model.PriceSeries
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}
	if !series.Complete() {
		return nil, &FeedError{
			Code:    "FEED_INCOMPLETE",
			Message: fmt.Sprintf("feed returned %d entries, need all 24 hours", len(series)),
		}
	}

	f.cache.Set(date, series)
	return series, nil
}
