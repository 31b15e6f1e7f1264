package service

import (
	"context"

	"github.com/smallbiznis/ordercast/internal/observability/metrics"
	"github.com/smallbiznis/ordercast/internal/order/domain"
	"github.com/smallbiznis/ordercast/internal/order/liveevents"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log        *zap.Logger
	Ledger     domain.Ledger
	LiveEvents *liveevents.Hub  `optional:"true"`
	ObsMetrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log        *zap.Logger
	ledger     domain.Ledger
	liveEvents *liveevents.Hub
	obsMetrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:        p.Log.Named("order.service"),
		ledger:     p.Ledger,
		liveEvents: p.LiveEvents,
		obsMetrics: p.ObsMetrics,
	}
}

// Create validates the request, appends the order to the ledger and then
// fans it out to live subscribers. The append is visible to List before the
// first subscriber sees the event; fan-out failures never fail the create.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var computed int64
	for _, item := range req.Items {
		if item.Quantity < 1 || item.UnitPrice < 0 {
			return nil, domain.ErrInvalidLineItem
		}
		computed += item.UnitPrice * item.Quantity
	}
	if req.TotalAmount != computed {
		s.log.Warn("order total mismatch",
			zap.Int64("supplied", req.TotalAmount),
			zap.Int64("computed", computed),
		)
		return nil, domain.ErrTotalMismatch
	}

	order := s.ledger.Append(req.Items, computed)

	delivered := s.liveEvents.Publish(order)

	s.obsMetrics.RecordOrderCreated(ctx)
	s.obsMetrics.RecordLiveDispatch(ctx, delivered)

	s.log.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.String("display_id", order.DisplayID),
		zap.Int64("total_amount", order.TotalAmount),
		zap.Int("items", len(order.Items)),
		zap.Int("live_deliveries", delivered),
	)

	return &order, nil
}

// List returns the full order history, most-recent-first.
func (s *Service) List(context.Context) []domain.Order {
	return s.ledger.Snapshot()
}
