package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/mailwise/triagestack/internal/logger"
	"github.com/mailwise/triagestack/internal/tracing"
)

type Config struct {
	AppConfig    *AppConfig
	Logger       *logger.Config
	Tracing      *tracing.JaegerConfig
	GeminiConfig *GeminiConfig
	TriageConfig *TriageConfig
}

func InitConfig() (*Config, error) {
	config := &Config{
		AppConfig:    &AppConfig{},
		Logger:       &logger.Config{},
		Tracing:      &tracing.JaegerConfig{},
		GeminiConfig: &GeminiConfig{},
		TriageConfig: &TriageConfig{},
	}

	err := godotenv.Load()
	if err != nil {
		log.Print("Unable to load .env file")
	}

	err = env.Parse(config)
	if err != nil {
		log.Fatalf("Error loading triagestack config: %v", err)
	}

	return config, nil
}
