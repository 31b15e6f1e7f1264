package observability

import (
	"github.com/smallbiznis/ordercast/internal/config"
)

// Config carries the observability settings derived from app config.
type Config struct {
	ServiceName string
	Environment string
	Version     string
	LogLevel    string
	LogFormat   string
}

func LoadConfig(cfg config.Config) Config {
	return Config{
		ServiceName: cfg.AppName,
		Environment: cfg.Environment,
		Version:     cfg.AppVersion,
		LogLevel:    cfg.LogLevel,
		LogFormat:   cfg.LogFormat,
	}
}

func (c Config) Debug() bool {
	return c.Environment != "production"
}
