package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"virtual-energy-trader/internal/analysis"
	"virtual-energy-trader/internal/config"
	"virtual-energy-trader/internal/data"
	"virtual-energy-trader/internal/market"
	"virtual-energy-trader/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "prices":
		cmdPrices(os.Args[2:])
	case "pnl":
		cmdPnL(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli prices --date 2024-06-15 [--config config.yaml]")
	fmt.Println("  cli pnl --date 2024-06-15 [--orders data/orders.json] [--out results/pnl.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - prices prints the synthetic day-ahead and real-time curves plus the spread")
	fmt.Println("  - pnl settles the stored orders for the date and optionally writes a CSV ledger")
}

func cmdPrices(args []string) {
	fs := flag.NewFlagSet("prices", flag.ExitOnError)
	dateStr := fs.String("date", "", "Trading date YYYY-MM-DD")
	cfgPath := fs.String("config", "", "Optional path to YAML config")
	_ = fs.Parse(args)

	date, cfg := loadDateAndConfig(*dateStr, *cfgPath)
	gen := market.NewGenerator(cfg.Market.ToParams())

	dayAhead := gen.DayAhead(date)
	realTime := gen.RealTime(date, dayAhead)
	report := analysis.ComputeSpread(model.DateKey(date), dayAhead, realTime)

	fmt.Printf("Prices for %s (synthetic)\n", model.DateKey(date))
	fmt.Printf("%-6s %-12s %-12s %-8s\n", "hour", "day-ahead", "real-time", "spread")
	for _, row := range report.Rows {
		fmt.Printf("%-6d %-12.2f %-12.2f %-8.2f\n", row.Hour, row.DayAhead, row.RealTime, row.Spread)
	}
	fmt.Printf("\nBest buy hour: %d (spread %.2f), best sell hour: %d (spread %.2f)\n",
		report.BestBuyHour, report.MaxSpread, report.BestSellHour, report.MinSpread)
}

func cmdPnL(args []string) {
	fs := flag.NewFlagSet("pnl", flag.ExitOnError)
	dateStr := fs.String("date", "", "Trading date YYYY-MM-DD")
	cfgPath := fs.String("config", "", "Optional path to YAML config")
	ordersPath := fs.String("orders", "", "Path to orders JSON file (default from config)")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	date, cfg := loadDateAndConfig(*dateStr, *cfgPath)
	if *ordersPath == "" {
		*ordersPath = cfg.Storage.OrdersFile
	}

	store := data.NewOrderStore(*ordersPath)
	orders, err := store.ListByDate(model.DateKey(date))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read orders: %v\n", err)
		os.Exit(1)
	}

	gen := market.NewGenerator(cfg.Market.ToParams())
	summary := gen.Settle(date, orders)

	fmt.Printf("PnL for %s: total $%.2f over %d orders\n", summary.Date, summary.TotalPnL, len(summary.Details))
	fmt.Printf("%-38s %-6s %-6s %-10s %-10s %-10s %-8s %-10s\n",
		"order", "hour", "side", "bid", "da", "rt", "filled", "pnl")
	for _, d := range summary.Details {
		fmt.Printf("%-38s %-6d %-6s %-10.2f %-10.2f %-10.2f %-8t %-10.2f\n",
			d.OrderID, d.Hour, d.Side, d.BidPrice, d.DayAheadPrice, d.RealTimePrice, d.Filled, d.PnL)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output dir: %v\n", err)
			os.Exit(1)
		}
		if err := market.WritePnLCSV(*outPath, summary); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(summary.Details), *outPath)
	}
}

func loadDateAndConfig(dateStr, cfgPath string) (time.Time, *config.Config) {
	if dateStr == "" {
		fmt.Println("--date is required")
		os.Exit(2)
	}
	date, err := model.ParseTradingDate(dateStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	return date, cfg
}
