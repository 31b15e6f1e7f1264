package seed

import (
	"context"
	"errors"

	"github.com/smallbiznis/ordercast/internal/config"
	productdomain "github.com/smallbiznis/ordercast/internal/product/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnsureCatalog replaces the products table with the given catalog.
func EnsureCatalog(db *gorm.DB, repo productdomain.Repository, catalog []config.CatalogProduct) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if len(catalog) == 0 {
		return errors.New("seed catalog cannot be empty")
	}

	products := make([]productdomain.Product, 0, len(catalog))
	for _, p := range catalog {
		products = append(products, productdomain.Product{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Image: p.Image,
		})
	}

	return repo.Replace(context.Background(), db, products)
}

// Register seeds the catalog at startup and re-seeds it on every catalog
// config reload.
func Register(db *gorm.DB, repo productdomain.Repository, holder *config.CatalogHolder, log *zap.Logger) error {
	log = log.Named("seed")

	if err := EnsureCatalog(db, repo, holder.Get()); err != nil {
		return err
	}
	log.Info("catalog seeded", zap.Int("products", len(holder.Get())))

	holder.OnReload(func(catalog []config.CatalogProduct) {
		if err := EnsureCatalog(db, repo, catalog); err != nil {
			log.Error("catalog reseed failed", zap.Error(err))
			return
		}
		log.Info("catalog reseeded", zap.Int("products", len(catalog)))
	})

	return nil
}
