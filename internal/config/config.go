package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port          string
	DatabaseURL   string
	FeedbackFile  string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	JWTSecret     string
	TokenTTL      time.Duration
	RateLimitPlan RateLimitConfig
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from environment variables and applies sane
// defaults. DATABASE_URL is optional: without it, feedback falls back to
// the flat-file log and the admin surface stays disabled.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		FeedbackFile:  getEnv("FEEDBACK_FILE", "feedbacks.txt"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:      parseDuration(getEnv("JWT_TTL", "24h")),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_PLAN", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PLAN value: %w", err)
	}
	cfg.RateLimitPlan = rl

	return cfg, nil
}

var rateIntervals = map[string]time.Duration{
	"s": time.Second, "sec": time.Second, "second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hour": time.Hour, "hours": time.Hour,
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	requestsPart, unitPart, ok := strings.Cut(value, "/")
	if !ok {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(requestsPart))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", requestsPart)
	}

	interval, ok := rateIntervals[strings.ToLower(strings.TrimSpace(unitPart))]
	if !ok {
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unitPart)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	if d, err := time.ParseDuration(input); err == nil {
		return d
	}
	return 24 * time.Hour
}
