package config

import (
	"fmt"
	"net/url"
	"time"

	env "github.com/Netflix/go-env"
)

const DEFAULT_LOCAL_INTENT_URL = "http://localhost:8001/predict"

// APIConfig is read once at startup and handed to the orchestrator.
type APIConfig struct {
	Port                int           `env:"PORT,default=4000"`
	LocalIntentURL      string        `env:"LOCAL_INTENT_URL,default=http://localhost:8001/predict"`
	OpenAIAPIKey        string        `env:"OPENAI_API_KEY,required=true"`
	OpenAIBaseURL       string        `env:"OPENAI_BASE_URL"`
	LogLevel            string        `env:"LOG_LEVEL,default=info"`
	UpstreamTimeout     time.Duration `env:"UPSTREAM_TIMEOUT,default=0s"`
	ClassifierHealthURL string        `env:"CLASSIFIER_HEALTH_URL"`
	HealthcheckInterval time.Duration `env:"HEALTHCHECK_INTERVAL,default=15s"`
}

type ClassifierConfig struct {
	Port      int    `env:"CLASSIFIER_PORT,default=8001"`
	ModelPath string `env:"MODEL_PATH"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
}

func LoadAPIConfig() (APIConfig, error) {
	var cfg APIConfig
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return APIConfig{}, fmt.Errorf("config error: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.LocalIntentURL); err != nil {
		return APIConfig{}, fmt.Errorf("invalid LOCAL_INTENT_URL %q: %w", cfg.LocalIntentURL, err)
	}

	if cfg.ClassifierHealthURL == "" {
		cfg.ClassifierHealthURL = healthURLFor(cfg.LocalIntentURL)
	}

	return cfg, nil
}

func LoadClassifierConfig() (ClassifierConfig, error) {
	var cfg ClassifierConfig
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return ClassifierConfig{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// healthURLFor keeps scheme and host of the predict endpoint and points at /health.
func healthURLFor(predictURL string) string {
	u, err := url.Parse(predictURL)
	if err != nil {
		return ""
	}
	u.Path = "/health"
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
