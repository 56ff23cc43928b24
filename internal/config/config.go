// Package config handles application configuration from multiple sources
// with the precedence: command-line flags > environment variables > .env
// file > defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Providers ProvidersConfig
	Recommend RecommendConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string
	Port        int
	Environment string
	// CORSOrigins is the comma-separated allow list; "*" in development.
	CORSOrigins string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// ProvidersConfig holds upstream provider credentials and endpoints. Base
// URLs are configurable so tests can point clients at local servers.
type ProvidersConfig struct {
	ReadwiseToken   string
	ReadwiseBaseURL string

	NYTAPIKey  string
	NYTBaseURL string

	GoogleBooksKey     string
	GoogleBooksBaseURL string

	// RequestTimeout bounds each individual upstream HTTP call.
	RequestTimeout time.Duration
	// RatePerSecond and Burst pace the bibliographic search client's
	// sequential queries.
	RatePerSecond float64
	Burst         int
}

// RecommendConfig holds the pipeline tuning knobs.
type RecommendConfig struct {
	// ScoreCutoff is the minimum score a candidate needs to be eligible.
	ScoreCutoff float64
	// DefaultLimit and MaxLimit bound the number of recommendations
	// returned.
	DefaultLimit int
	MaxLimit     int
	// RatingFloor, RatingsCountFloor and DescriptionFloor define the
	// quality signal: a candidate earns the quality bonus when any of the
	// three holds.
	RatingFloor       float64
	RatingsCountFloor int
	DescriptionFloor  int
	// RecencyYears is the window for the recency bonus, counted back from
	// the current year.
	RecencyYears int
	// AdapterConcurrency caps how many source adapters run at once.
	AdapterConcurrency int
	// PipelineTimeout bounds one end-to-end recommendation run.
	PipelineTimeout time.Duration
	// CoverProbe enables thumbnail dimension probing and BlurHash
	// placeholder generation.
	CoverProbe bool
	// TaxonomyPath optionally points at a JSON taxonomy override file.
	TaxonomyPath string
}

// Load reads configuration from all sources. args is the command line after
// the program name.
func Load(args []string) (*Config, error) {
	// .env is optional; missing file is not an error.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("nextread", flag.ContinueOnError)
	host := fs.String("host", "", "server host")
	port := fs.String("port", "", "server port")
	env := fs.String("env", "", "environment (development|production)")
	logLevel := fs.String("log-level", "", "log level (debug|info|warn|error)")
	logFormat := fs.String("log-format", "", "log format (pretty|json)")
	taxonomy := fs.String("taxonomy", "", "path to taxonomy override file")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        stringValue(*host, "NEXTREAD_HOST", "0.0.0.0"),
			Port:        intValue(*port, "NEXTREAD_PORT", 8080),
			Environment: stringValue(*env, "NEXTREAD_ENV", "development"),
			CORSOrigins: stringValue("", "NEXTREAD_CORS_ORIGINS", "*"),
		},
		Log: LogConfig{
			Level:  stringValue(*logLevel, "NEXTREAD_LOG_LEVEL", "info"),
			Format: stringValue(*logFormat, "NEXTREAD_LOG_FORMAT", ""),
		},
		Providers: ProvidersConfig{
			ReadwiseToken:      stringValue("", "READWISE_TOKEN", ""),
			ReadwiseBaseURL:    stringValue("", "READWISE_BASE_URL", "https://readwise.io"),
			NYTAPIKey:          stringValue("", "NYT_API_KEY", ""),
			NYTBaseURL:         stringValue("", "NYT_BASE_URL", "https://api.nytimes.com"),
			GoogleBooksKey:     stringValue("", "GOOGLE_BOOKS_KEY", ""),
			GoogleBooksBaseURL: stringValue("", "GOOGLE_BOOKS_BASE_URL", "https://www.googleapis.com"),
			RequestTimeout:     durationValue("", "NEXTREAD_PROVIDER_TIMEOUT", 15*time.Second),
			RatePerSecond:      floatValue("", "NEXTREAD_PROVIDER_RATE", 4),
			Burst:              intValue("", "NEXTREAD_PROVIDER_BURST", 3),
		},
		Recommend: RecommendConfig{
			ScoreCutoff:        floatValue("", "NEXTREAD_SCORE_CUTOFF", 10),
			DefaultLimit:       intValue("", "NEXTREAD_DEFAULT_LIMIT", 5),
			MaxLimit:           intValue("", "NEXTREAD_MAX_LIMIT", 20),
			RatingFloor:        floatValue("", "NEXTREAD_RATING_FLOOR", 3.8),
			RatingsCountFloor:  intValue("", "NEXTREAD_RATINGS_COUNT_FLOOR", 25),
			DescriptionFloor:   intValue("", "NEXTREAD_DESCRIPTION_FLOOR", 120),
			RecencyYears:       intValue("", "NEXTREAD_RECENCY_YEARS", 3),
			AdapterConcurrency: intValue("", "NEXTREAD_ADAPTER_CONCURRENCY", 4),
			PipelineTimeout:    durationValue("", "NEXTREAD_PIPELINE_TIMEOUT", 90*time.Second),
			CoverProbe:         boolValue("", "NEXTREAD_COVER_PROBE", false),
			TaxonomyPath:       stringValue(*taxonomy, "NEXTREAD_TAXONOMY_PATH", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("invalid environment: %q", c.Server.Environment)
	}
	if c.Recommend.DefaultLimit < 1 || c.Recommend.DefaultLimit > c.Recommend.MaxLimit {
		return fmt.Errorf("invalid default limit: %d (max %d)", c.Recommend.DefaultLimit, c.Recommend.MaxLimit)
	}
	if c.Recommend.AdapterConcurrency < 1 {
		return fmt.Errorf("invalid adapter concurrency: %d", c.Recommend.AdapterConcurrency)
	}
	if c.Recommend.PipelineTimeout <= 0 {
		return fmt.Errorf("invalid pipeline timeout: %s", c.Recommend.PipelineTimeout)
	}
	if c.Providers.RatePerSecond <= 0 {
		return fmt.Errorf("invalid provider rate: %f", c.Providers.RatePerSecond)
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// Address returns the host:port the server binds to.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// stringValue resolves a string setting: flag > env > default.
func stringValue(flagVal, envKey, def string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}

func intValue(flagVal, envKey string, def int) int {
	if v := stringValue(flagVal, envKey, ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatValue(flagVal, envKey string, def float64) float64 {
	if v := stringValue(flagVal, envKey, ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func boolValue(flagVal, envKey string, def bool) bool {
	if v := stringValue(flagVal, envKey, ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func durationValue(flagVal, envKey string, def time.Duration) time.Duration {
	if v := stringValue(flagVal, envKey, ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
