package api

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/mailwise/triagestack/api/handlers"
	triage_handler "github.com/mailwise/triagestack/api/handlers/triage"
	"github.com/mailwise/triagestack/internal/logger"
	"github.com/mailwise/triagestack/internal/tracing"
	"github.com/mailwise/triagestack/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(r *gin.Engine, log logger.Logger, s *services.Services) {
	if s == nil {
		panic("Services cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	// setup handlers
	triageHandler := triage_handler.NewTriageHandler(log, s.TriageService)

	// Health check endpoint (no tracing context needed)
	r.GET("/health", handlers.HealthCheck)

	// Triage endpoints, consumed by the external orchestrator. The trailing
	// slash matches what the orchestrator scenarios were built against.
	r.POST("/classify_email/", triageHandler.Classify())
	r.POST("/generate_response/", triageHandler.GenerateResponse())
}
