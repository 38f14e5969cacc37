package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/calebwray/ideawell-backend/internal/logger"
)

// WebhookConfig points at an optional user-configured automation endpoint.
// An empty URL disables dispatch entirely.
type WebhookConfig struct {
	URL    string   `yaml:"url"`
	Events []string `yaml:"events"`
}

type Config struct {
	CORSOrigins []string      `yaml:"cors_origins"`
	Webhook     WebhookConfig `yaml:"webhook"`
}

func defaults() *Config {
	return &Config{
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
	}
}

// Load reads the YAML config at path. A missing file is not an error; the
// service runs with defaults and env-provided settings.
func Load(path string, log *logger.Logger) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if log != nil {
				log.Info("Config file not found, using defaults", "path", path)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaults().CORSOrigins
	}
	return cfg, nil
}
