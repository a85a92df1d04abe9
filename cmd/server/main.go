package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"seatcheck/internal/cache"
	"seatcheck/internal/checker"
	"seatcheck/internal/handler"
	"seatcheck/internal/ratelimit"
)

type Config struct {
	Port         string
	CategoryURL  string
	ProductName  string
	Headless     bool
	MaxRetries   int
	CacheEnabled bool
	RedisHost    string
	RedisPort    string
	RedisTTL     time.Duration
	ScrapeRPS    float64
	ScrapeBurst  int
	MaxSessions  int
}

func main() {
	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	limiter := ratelimit.New(ratelimit.Config{
		QueriesPerSecond: cfg.ScrapeRPS,
		BurstSize:        cfg.ScrapeBurst,
		MaxSessions:      cfg.MaxSessions,
	})

	chk := checker.New(checker.Config{
		CategoryURL: cfg.CategoryURL,
		ProductName: cfg.ProductName,
		Headless:    cfg.Headless,
		MaxRetries:  cfg.MaxRetries,
		RetryDelays: []time.Duration{
			500 * time.Millisecond,
			time.Second,
			2 * time.Second,
		},
		RateLimiter: limiter,
	})
	log.Printf("Checking product %q at %s (headless: %v)", cfg.ProductName, cfg.CategoryURL, cfg.Headless)

	var resultCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		resultCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		resultCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	availability := handler.NewAvailabilityHandler(chk, resultCache)

	e.GET("/", availability.Index)
	e.GET("/api", availability.API)
	e.GET("/run", availability.Run)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting seat availability server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		CategoryURL:  getEnv("CATEGORY_URL", "https://bookings.puffingbillyrailway.org.au/BookingCat/Availability/?ParentCategory=WEBEXCURSION"),
		ProductName:  getEnv("PRODUCT_NAME", "Belgrave to Lakeside Return"),
		Headless:     getEnvBool("HEADLESS", true),
		MaxRetries:   getEnvInt("SCRAPE_MAX_RETRIES", 0),
		CacheEnabled: getEnvBool("CACHE_ENABLED", false),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		RedisTTL:     getEnvDuration("REDIS_TTL", 2*time.Minute),
		ScrapeRPS:    getEnvFloat("SCRAPE_RPS", 0.5),
		ScrapeBurst:  getEnvInt("SCRAPE_BURST", 2),
		MaxSessions:  getEnvInt("MAX_SESSIONS", 4),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
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
