package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Product, error)
	Replace(ctx context.Context, db *gorm.DB, products []Product) error
}
