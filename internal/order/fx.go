package order

import (
	"github.com/smallbiznis/ordercast/internal/order/ledger"
	"github.com/smallbiznis/ordercast/internal/order/liveevents"
	"github.com/smallbiznis/ordercast/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(ledger.New),
	fx.Provide(liveevents.NewHub),
	fx.Provide(service.New),
)
