package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/config"
)

// PlanRateLimiter applies a token bucket to the plan generation endpoints.
// Downloads and exports re-run generation, so they drain the same bucket.
func PlanRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return passthrough
	}

	refill := cfg.Interval / time.Duration(cfg.Requests)
	if refill <= 0 {
		refill = time.Second
	}
	bucket := rate.NewLimiter(rate.Every(refill), cfg.Requests)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Path(), "/plan") {
				return next(c)
			}
			if !bucket.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "plan rate limit exceeded"})
			}
			return next(c)
		}
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}
