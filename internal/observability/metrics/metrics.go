package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	ordersCreated   metric.Int64Counter
	liveDispatched  metric.Int64Counter
	liveSubscribers metric.Int64UpDownCounter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "ordercast"
	}
	meter := provider.Meter(name)

	ordersCreated, err := meter.Int64Counter("ordercast_orders_created_total")
	if err != nil {
		return nil, err
	}
	liveDispatched, err := meter.Int64Counter("ordercast_live_events_dispatched_total")
	if err != nil {
		return nil, err
	}
	liveSubscribers, err := meter.Int64UpDownCounter("ordercast_live_subscribers")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		ordersCreated:   ordersCreated,
		liveDispatched:  liveDispatched,
		liveSubscribers: liveSubscribers,
	}, nil
}

// RecordOrderCreated increments the created-order count.
func (m *Metrics) RecordOrderCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.ordersCreated.Add(ctx, 1)
}

// RecordLiveDispatch adds the number of accepted live deliveries for one
// fan-out.
func (m *Metrics) RecordLiveDispatch(ctx context.Context, delivered int) {
	if m == nil || delivered <= 0 {
		return
	}
	m.liveDispatched.Add(ctx, int64(delivered))
}

// AddLiveSubscribers moves the attached-subscriber gauge by delta.
func (m *Metrics) AddLiveSubscribers(ctx context.Context, delta int64) {
	if m == nil {
		return
	}
	m.liveSubscribers.Add(ctx, delta)
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(protocol)) {
	case "", "grpc":
		return otlpmetricgrpc.New(context.Background(),
			otlpmetricgrpc.WithEndpoint(endpoint),
			otlpmetricgrpc.WithInsecure(),
		)
	case "http":
		return otlpmetrichttp.New(context.Background(),
			otlpmetrichttp.WithEndpoint(endpoint),
			otlpmetrichttp.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unsupported metrics exporter protocol %q", protocol)
	}
}
