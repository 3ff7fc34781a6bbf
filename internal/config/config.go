package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDataBaseURL    = "https://data.alpaca.markets"
	defaultTradingBaseURL = "https://paper-api.alpaca.markets"
	defaultAVBaseURL      = "https://www.alphavantage.co"
	defaultHTTPTimeout    = 30 * time.Second
	defaultRateLimit      = 200 // provider requests per minute
)

// Config holds process-wide configuration, read once from the environment
// at startup and passed explicitly to each routine.
type Config struct {
	AlpacaAPIKey    string
	AlpacaAPISecret string
	DataBaseURL     string // bar-data API
	TradingBaseURL  string // assets API

	AlphaVantageAPIKey  string
	AlphaVantageBaseURL string

	DatabaseURL   string
	RunMigrations bool

	HTTPTimeout     time.Duration
	RateLimitPerMin int

	// Optional explicit backfill window; zero values mean "use the
	// per-timeframe lookback tiers".
	BackfillStart time.Time
	BackfillEnd   time.Time

	// BackfillMode selects the backfill job's behavior: "window" (default)
	// or "deep" (extend history before the earliest stored daily bar).
	BackfillMode string

	// Optional local ticker file (.csv or .txt) for the universe job.
	TickerFile string
}

// Load reads configuration from the environment. A .env file is honored
// when present, matching how the scheduled units ship credentials.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := Config{
		AlpacaAPIKey:        os.Getenv("APCA_API_KEY_ID"),
		AlpacaAPISecret:     os.Getenv("APCA_API_SECRET_KEY"),
		DataBaseURL:         getEnv("APCA_DATA_URL", defaultDataBaseURL),
		TradingBaseURL:      getEnv("APCA_URL", defaultTradingBaseURL),
		AlphaVantageAPIKey:  os.Getenv("ALPHAVANTAGE_API_KEY"),
		AlphaVantageBaseURL: getEnv("ALPHAVANTAGE_URL", defaultAVBaseURL),
		DatabaseURL:         getEnv("SUPABASE_DB_URL", os.Getenv("DATABASE_URL")),
		RunMigrations:       os.Getenv("RUN_MIGRATIONS") == "true",
		HTTPTimeout:         defaultHTTPTimeout,
		RateLimitPerMin:     defaultRateLimit,
		BackfillMode:        getEnv("BACKFILL_MODE", "window"),
		TickerFile:          os.Getenv("TICKER_FILE"),
	}

	if v := os.Getenv("RATE_LIMIT_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimitPerMin = n
		}
	}
	if v := os.Getenv("BACKFILL_START"); v != "" {
		if t, err := parseInstant(v); err == nil {
			cfg.BackfillStart = t
		} else {
			log.Printf("ignoring invalid BACKFILL_START %q: %v", v, err)
		}
	}
	if v := os.Getenv("BACKFILL_END"); v != "" {
		if t, err := parseInstant(v); err == nil {
			cfg.BackfillEnd = t
		} else {
			log.Printf("ignoring invalid BACKFILL_END %q: %v", v, err)
		}
	}

	return cfg
}

// RequireAlpaca fails when the provider credentials are missing. Called by
// jobs that talk to the market-data API; a missing key is a configuration
// error and aborts the run.
func (c Config) RequireAlpaca() error {
	if c.AlpacaAPIKey == "" || c.AlpacaAPISecret == "" {
		return fmt.Errorf("APCA_API_KEY_ID and APCA_API_SECRET_KEY must be set")
	}
	return nil
}

// RequireDatabase fails when no database connection string is configured.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("SUPABASE_DB_URL or DATABASE_URL must be set")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseInstant accepts RFC3339 or a plain date.
func parseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
