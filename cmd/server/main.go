package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/flightscraper/internal/airports"
	"github.com/dharmasatrya/flightscraper/internal/fetcher"
	"github.com/dharmasatrya/flightscraper/internal/handler"
	"github.com/dharmasatrya/flightscraper/internal/ratelimit"
	"github.com/dharmasatrya/flightscraper/internal/search"
)

type Config struct {
	Port               string
	BaseURL            string
	Locale             string
	Currency           string
	MinRequestInterval time.Duration
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	// One limiter behind one client: every outbound path (search, date
	// grid, airport resolution) shares the same request spacing.
	limiter := ratelimit.New(cfg.MinRequestInterval)
	var client *fetcher.Client
	if cfg.BaseURL != "" {
		client = fetcher.NewWithBaseURL(limiter, cfg.BaseURL)
	} else {
		client = fetcher.New(limiter)
	}
	log.Printf("Fetcher ready (min request interval: %v)", cfg.MinRequestInterval)

	searchService := search.New(client, cfg.Locale)
	resolver := airports.NewResolver(client, cfg.Locale)
	h := handler.New(searchService, resolver, cfg.Currency)

	e.GET("/health", handler.HealthHandler)

	api := e.Group("/api/v1")
	api.POST("/flights/search", h.Search)
	api.POST("/flights/dategrid", h.DateGrid)
	api.GET("/airports", h.Airports)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:               getEnv("PORT", "8080"),
		BaseURL:            getEnv("BASE_URL", ""),
		Locale:             getEnv("LOCALE", "en"),
		Currency:           getEnv("CURRENCY", "USD"),
		MinRequestInterval: getEnvDuration("MIN_REQUEST_INTERVAL", ratelimit.MinRequestInterval),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
