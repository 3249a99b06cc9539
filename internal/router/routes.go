package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/auth"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/config"
	"github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/handler"
	middlewarepkg "github.com/Arun-sajwan/AICTE-Edunet-AI-Travel-Planner/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	Plan     *handler.PlanHandler
	Feedback *handler.FeedbackHandler
}

// Register wires all HTTP routes for the API. Auth is optional: without a
// database there are no accounts, so login and the admin surface stay off.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	// one shared bucket across the plan endpoints
	planLimiter := middlewarepkg.PlanRateLimiter(cfg.RateLimitPlan)
	e.POST("/plan", handlers.Plan.Generate, planLimiter)
	e.POST("/plan/download", handlers.Plan.Download, planLimiter)
	e.POST("/plan/pdf", handlers.Plan.PDF, planLimiter)

	e.POST("/feedback", handlers.Feedback.Submit)
	e.GET("/feedback/summary", handlers.Feedback.Summary)

	if handlers.Auth == nil {
		return
	}

	e.POST("/auth/login", handlers.Auth.Login)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/feedback", handlers.Feedback.List)
	admin.GET("/feedback/export", handlers.Feedback.ExportCSV)
}
