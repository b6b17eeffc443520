package model

// Side is the direction of a bid against the day-ahead market.
// Keep these values stable; they are part of the JSON wire format.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Order is one hourly bid for a trading date. Orders are owned by the
// order store; settlement treats them as immutable inputs.
type Order struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"` // trading date, YYYY-MM-DD
	Hour      int     `json:"hour"` // hour ending, local time [0-23]
	Side      Side    `json:"side"`
	Price     float64 `json:"price"`    // limit price, $/MWh
	Quantity  float64 `json:"quantity"` // MWh
	CreatedAt string  `json:"created_at"`
}
