package config

import (
	"errors"
	"fmt"
	"os"

	"virtual-energy-trader/internal/market"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every field has a
// default matching the stock simulation constants, so an empty file (or no
// file at all) yields a working setup.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Feed    FeedConfig    `yaml:"feed"`
	Market  MarketConfig  `yaml:"market"`
	Trading TradingConfig `yaml:"trading"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type StorageConfig struct {
	OrdersFile string `yaml:"orders_file"`
}

// FeedConfig configures the optional external day-ahead price feed.
// An empty URL disables the feed entirely; the synthetic generator is then
// the only price source.
type FeedConfig struct {
	DayAheadURL     string `yaml:"day_ahead_url"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"` // 0 disables caching
}

type MarketConfig struct {
	BasePrice         float64 `yaml:"base_price"`
	PeakAdder         float64 `yaml:"peak_adder"`
	NoiseAmplitude    float64 `yaml:"noise_amplitude"`
	DayAheadFloor     float64 `yaml:"day_ahead_floor"`
	RealTimeDeviation float64 `yaml:"real_time_deviation"`
	RealTimeFloor     float64 `yaml:"real_time_floor"`
	SeedOffsetDays    int     `yaml:"seed_offset_days"`
}

type TradingConfig struct {
	MaxBidsPerHour int `yaml:"max_bids_per_hour"`
	DeadlineHour   int `yaml:"deadline_hour"`
	DeadlineMinute int `yaml:"deadline_minute"`
}

// Default returns a fully-populated config with the stock constants.
func Default() *Config {
	params := market.DefaultParams()
	window := market.DefaultWindow()
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			},
		},
		Storage: StorageConfig{
			OrdersFile: "./data/orders.json",
		},
		Feed: FeedConfig{
			TimeoutSeconds:  10,
			CacheTTLSeconds: 0,
		},
		Market: MarketConfig{
			BasePrice:         params.BasePrice,
			PeakAdder:         params.PeakAdder,
			NoiseAmplitude:    params.NoiseAmplitude,
			DayAheadFloor:     params.DayAheadFloor,
			RealTimeDeviation: params.RealTimeDeviation,
			RealTimeFloor:     params.RealTimeFloor,
			SeedOffsetDays:    params.SeedOffsetDays,
		},
		Trading: TradingConfig{
			MaxBidsPerHour: 10,
			DeadlineHour:   window.Hour,
			DeadlineMinute: window.Minute,
		},
	}
}

// Load reads a YAML config file, fills unset fields with defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s invalid: %w", path, err)
	}
	return &c, nil
}

// applyDefaults overlays defaults onto unset fields. The market and trading
// sections are defaulted as whole blocks: zero is a legal value for floors
// and the deadline minute, so per-field checks would misread an explicit 0.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Port == "" {
		c.Server.Port = def.Server.Port
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = def.Server.CORSOrigins
	}
	if c.Storage.OrdersFile == "" {
		c.Storage.OrdersFile = def.Storage.OrdersFile
	}
	if c.Feed.TimeoutSeconds == 0 {
		c.Feed.TimeoutSeconds = def.Feed.TimeoutSeconds
	}
	if c.Market == (MarketConfig{}) {
		c.Market = def.Market
	}
	if c.Trading == (TradingConfig{}) {
		c.Trading = def.Trading
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Market.NoiseAmplitude < 0 {
		return errors.New("market.noise_amplitude must be >= 0")
	}
	if c.Market.RealTimeDeviation < 0 {
		return errors.New("market.real_time_deviation must be >= 0")
	}
	if c.Market.DayAheadFloor < 0 || c.Market.RealTimeFloor < 0 {
		return errors.New("price floors must be >= 0")
	}
	if c.Trading.MaxBidsPerHour <= 0 {
		return errors.New("trading.max_bids_per_hour must be > 0")
	}
	if c.Trading.DeadlineHour < 0 || c.Trading.DeadlineHour > 23 {
		return errors.New("trading.deadline_hour must be in [0,23]")
	}
	if c.Trading.DeadlineMinute < 0 || c.Trading.DeadlineMinute > 59 {
		return errors.New("trading.deadline_minute must be in [0,59]")
	}
	if c.Feed.TimeoutSeconds <= 0 {
		return errors.New("feed.timeout_seconds must be > 0")
	}
	if c.Feed.CacheTTLSeconds < 0 {
		return errors.New("feed.cache_ttl_seconds must be >= 0")
	}
	return nil
}

// ToParams converts the market section to generator params.
func (m MarketConfig) ToParams() market.Params {
	return market.Params{
		BasePrice:         m.BasePrice,
		PeakAdder:         m.PeakAdder,
		NoiseAmplitude:    m.NoiseAmplitude,
		DayAheadFloor:     m.DayAheadFloor,
		RealTimeDeviation: m.RealTimeDeviation,
		RealTimeFloor:     m.RealTimeFloor,
		SeedOffsetDays:    m.SeedOffsetDays,
	}
}

// Window converts the trading section to a submission window.
func (t TradingConfig) Window() market.Window {
	return market.Window{Hour: t.DeadlineHour, Minute: t.DeadlineMinute}
}
