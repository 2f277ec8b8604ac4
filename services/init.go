package services

import (
	"github.com/mailwise/triagestack/config"
	"github.com/mailwise/triagestack/interfaces"
	"github.com/mailwise/triagestack/internal/logger"
	"github.com/mailwise/triagestack/services/ai"
	"github.com/mailwise/triagestack/services/triage"
)

type Services struct {
	AIService     interfaces.AIService
	TriageService interfaces.TriageService
}

func InitServices(cfg *config.Config, log logger.Logger) *Services {
	aiService := ai.NewGeminiService(log, cfg.GeminiConfig)

	return &Services{
		AIService:     aiService,
		TriageService: triage.NewTriageService(log, cfg.TriageConfig, aiService),
	}
}
