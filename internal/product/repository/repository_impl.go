package repository

import (
	"context"

	"github.com/smallbiznis/ordercast/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, price, image FROM products ORDER BY id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Replace swaps the whole catalog inside one transaction so readers never
// observe a half-loaded menu.
func (r *repo) Replace(ctx context.Context, db *gorm.DB, products []domain.Product) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM products`).Error; err != nil {
			return err
		}
		for _, p := range products {
			if err := tx.Exec(
				`INSERT INTO products (id, name, price, image) VALUES (?, ?, ?, ?)`,
				p.ID, p.Name, p.Price, p.Image,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
