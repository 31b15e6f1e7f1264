package domain

import (
	"fmt"
	"time"
)

const (
	// SequenceBaseline is the identity assigned to the first order.
	SequenceBaseline = 1

	displayIDPrefix = "ORD"
	displayIDWidth  = 5
)

// LineItem is one cart row inside an order.
type LineItem struct {
	ProductID int64 `json:"product_id"`
	UnitPrice int64 `json:"unit_price"`
	Quantity  int64 `json:"quantity"`
}

// Order is an immutable ledger entry. ID values are dense, strictly
// increasing integers assigned at append time, starting at SequenceBaseline.
type Order struct {
	ID          int64      `json:"id"`
	DisplayID   string     `json:"display_id"`
	Items       []LineItem `json:"items"`
	TotalAmount int64      `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
}

// DisplayID derives the human-facing label from an order's own sequence
// identity, so the first order is always "ORD00001".
func DisplayID(sequenceID int64) string {
	return fmt.Sprintf("%s%0*d", displayIDPrefix, displayIDWidth, sequenceID)
}
