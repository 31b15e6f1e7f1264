package main

import (
	"github.com/smallbiznis/ordercast/internal/clock"
	"github.com/smallbiznis/ordercast/internal/config"
	"github.com/smallbiznis/ordercast/internal/observability"
	"github.com/smallbiznis/ordercast/internal/order"
	"github.com/smallbiznis/ordercast/internal/product"
	"github.com/smallbiznis/ordercast/internal/seed"
	"github.com/smallbiznis/ordercast/internal/server"
	"github.com/smallbiznis/ordercast/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		clock.Module,

		product.Module,
		order.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(seed.Register),
		fx.Invoke(func(s *server.Server) {}),
		fx.Invoke(server.Run),
	)
	app.Run()
}
