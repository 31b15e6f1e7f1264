package domain

import (
	"context"
)

type Service interface {
	List(ctx context.Context) ([]Product, error)
}
