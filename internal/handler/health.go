package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
)

type pingFunc func(ctx context.Context) error

// dependency is a health check. A failing required dependency turns the
// service unhealthy; the others are only reported.
type dependency struct {
	name     string
	ping     pingFunc
	required bool
}

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	dependencies []dependency
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	var deps []dependency
	if s.DB != nil {
		deps = append(deps, dependency{name: "database", ping: s.DB.Pool.Ping, required: true})
	}
	// Redis only carries contact notifications.
	if s.Redis != nil {
		deps = append(deps, dependency{name: "redis", ping: func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}})
	}

	return &HealthHandler{
		Handler:      NewHandler(s),
		dependencies: deps,
	}
}

// CheckHealth answers 200 when every required dependency responds and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability
	checks := make(map[string]any)
	healthy := true

	for _, dep := range h.dependencies {
		if obs != nil && !obs.CheckEnabled(dep.name) {
			continue
		}

		timeout := 5 * time.Second
		if obs != nil {
			timeout = obs.CheckTimeout()
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		checkStart := time.Now()
		err := dep.ping(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			checks[dep.name] = map[string]any{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			if dep.required {
				healthy = false
			}

			logger.Error().
				Err(err).
				Str("check", dep.name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordHealthError(map[string]any{
				"check_type":       dep.name,
				"operation":        "health_check",
				"error_type":       dep.name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[dep.name] = map[string]any{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}
		logger.Debug().
			Str("check", dep.name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("service unhealthy")

		h.recordHealthError(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) recordHealthError(attrs map[string]any) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}
