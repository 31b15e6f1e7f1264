package db

import (
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/ordercast/internal/config"
	productdomain "github.com/smallbiznis/ordercast/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var Module = fx.Module("db",
	fx.Provide(Open),
)

// Open opens the in-memory catalog database and migrates its schema.
func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// a shared in-memory sqlite database disappears when its last
	// connection closes
	sqlDB.SetMaxIdleConns(1)

	if err := gdb.AutoMigrate(&productdomain.Product{}); err != nil {
		return nil, err
	}

	log.Info("database ready", zap.String("dsn", cfg.DBDSN))
	return gdb, nil
}
