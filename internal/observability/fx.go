package observability

import (
	"github.com/smallbiznis/ordercast/internal/config"
	"github.com/smallbiznis/ordercast/internal/observability/logger"
	"github.com/smallbiznis/ordercast/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		LoadConfig,
		provideLoggerConfig,
		logger.New,
		provideMetricsConfig,
		metrics.NewProvider,
		metrics.New,
	),
)

func provideLoggerConfig(cfg Config) logger.Config {
	return logger.Config{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Debug:       cfg.Debug(),
	}
}

func provideMetricsConfig(cfg config.Config, obsCfg Config) metrics.Config {
	return metrics.Config{
		Enabled:          cfg.Metrics.Enabled,
		ExporterProtocol: cfg.Metrics.Exporter,
		ExporterEndpoint: cfg.Metrics.Endpoint,
		ServiceName:      obsCfg.ServiceName,
		Environment:      obsCfg.Environment,
	}
}
