package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/ordercast/internal/config"
	"github.com/smallbiznis/ordercast/internal/observability"
	obslogger "github.com/smallbiznis/ordercast/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/ordercast/internal/observability/metrics"
	orderdomain "github.com/smallbiznis/ordercast/internal/order/domain"
	"github.com/smallbiznis/ordercast/internal/order/liveevents"
	productdomain "github.com/smallbiznis/ordercast/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, obsCfg observability.Config) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(CORS(cfg.CORSAllowedOrigins))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	log             *zap.Logger
	orderSvc        orderdomain.Service
	productSvc      productdomain.Service
	liveOrderEvents *liveevents.Hub
	obsMetrics      *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	Log             *zap.Logger
	OrderSvc        orderdomain.Service
	ProductSvc      productdomain.Service
	LiveOrderEvents *liveevents.Hub     `optional:"true"`
	ObsMetrics      *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		log:             p.Log.Named("server"),
		orderSvc:        p.OrderSvc,
		productSvc:      p.ProductSvc,
		liveOrderEvents: p.LiveOrderEvents,
		obsMetrics:      p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/products", s.ListProducts)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/live", s.StreamOrderEvents)
}

// Run starts the HTTP listener under the fx lifecycle.
func Run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
