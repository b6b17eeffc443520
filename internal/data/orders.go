package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"virtual-energy-trader/internal/model"
)

var (
	// ErrOrderNotFound is returned by Delete when no order matches the id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrHourLimit is returned by Append when the per-hour bid cap is hit.
	ErrHourLimit = errors.New("bid limit reached for hour")
)

// OrderStore persists orders in a single JSON file keyed by trading date:
//
//	{ "2024-06-15": [ {order}, ... ], ... }
//
// Writes replace the whole file atomically (temp file + rename), so a crash
// mid-write never leaves a half-written store. A mutex serializes access;
// per-hour cap checks happen under the same lock as the append so two
// concurrent submissions cannot both squeeze past the cap.
type OrderStore struct {
	mu   sync.Mutex
	path string
}

func NewOrderStore(path string) *OrderStore {
	return &OrderStore{path: path}
}

// ListByDate returns the orders for one trading date, in insertion order.
func (s *OrderStore) ListByDate(date string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	orders := all[date]
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Append adds an order, enforcing at most maxPerHour orders for the order's
// (date, hour) slot.
func (s *OrderStore) Append(o model.Order, maxPerHour int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return err
	}

	dayOrders := all[o.Date]
	count := 0
	for _, existing := range dayOrders {
		if existing.Hour == o.Hour {
			count++
		}
	}
	if count >= maxPerHour {
		return fmt.Errorf("hour %d: %w (%d)", o.Hour, ErrHourLimit, maxPerHour)
	}

	all[o.Date] = append(dayOrders, o)
	return s.writeAll(all)
}

// Delete removes the order with the given id for a trading date.
func (s *OrderStore) Delete(date, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.readAll()
	if err != nil {
		return err
	}

	dayOrders := all[date]
	kept := make([]model.Order, 0, len(dayOrders))
	for _, o := range dayOrders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(dayOrders) {
		return ErrOrderNotFound
	}
	all[date] = kept
	return s.writeAll(all)
}

// readAll loads the whole store. A missing file is an empty store; a corrupt
// file is treated the same way rather than wedging every request on it.
func (s *OrderStore) readAll() (map[string][]model.Order, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]model.Order{}, nil
		}
		return nil, fmt.Errorf("read orders file: %w", err)
	}

	var all map[string][]model.Order
	if err := json.Unmarshal(raw, &all); err != nil {
		log.Printf("[OrderStore] %s is not valid JSON, starting from an empty store: %v", s.path, err)
		return map[string][]model.Order{}, nil
	}
	if all == nil {
		all = map[string][]model.Order{}
	}
	return all, nil
}

func (s *OrderStore) writeAll(all map[string][]model.Order) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create orders dir: %w", err)
		}
	}

	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write orders temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace orders file: %w", err)
	}
	return nil
}
