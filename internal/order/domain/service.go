package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	List(ctx context.Context) []Order
}

type CreateRequest struct {
	Items       []LineItem `json:"items"`
	TotalAmount int64      `json:"total_amount"`
}

var (
	ErrEmptyCart       = errors.New("empty_cart")
	ErrInvalidLineItem = errors.New("invalid_line_item")
	ErrTotalMismatch   = errors.New("total_mismatch")
)
