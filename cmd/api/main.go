package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"virtual-energy-trader/internal/api/handlers"
	"virtual-energy-trader/internal/api/middleware"
	"virtual-energy-trader/internal/config"
	"virtual-energy-trader/internal/data"
	"virtual-energy-trader/internal/market"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; ignore when absent.
	_ = godotenv.Load()

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", path)
	}

	// Environment overrides in front of the config file.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if feedURL := os.Getenv("GRIDSTATUS_DAY_AHEAD_URL"); feedURL != "" {
		cfg.Feed.DayAheadURL = feedURL
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.ErrorHandler())

	gen := market.NewGenerator(cfg.Market.ToParams())
	store := data.NewOrderStore(cfg.Storage.OrdersFile)

	var feed *data.DayAheadFeed
	if cfg.Feed.DayAheadURL != "" {
		feed = data.NewDayAheadFeed(
			cfg.Feed.DayAheadURL,
			time.Duration(cfg.Feed.TimeoutSeconds)*time.Second,
			time.Duration(cfg.Feed.CacheTTLSeconds)*time.Second,
		)
		log.Printf("External day-ahead feed enabled: %s", cfg.Feed.DayAheadURL)
	}

	priceHandler := handlers.NewPriceHandler(gen, feed)
	orderHandler := handlers.NewOrderHandler(store, cfg.Trading.Window(), cfg.Trading.MaxBidsPerHour)
	pnlHandler := handlers.NewPnLHandler(gen, store)
	spreadHandler := handlers.NewSpreadHandler(gen)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/prices/day-ahead", priceHandler.GetDayAhead)
		api.GET("/prices/real-time", priceHandler.GetRealTime)

		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)
		api.DELETE("/orders/:id", orderHandler.DeleteOrder)

		api.GET("/pnl", pnlHandler.GetPnL)

		api.GET("/analysis/spread", spreadHandler.GetSpread)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s (orders file: %s)", addr, cfg.Storage.OrdersFile)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
