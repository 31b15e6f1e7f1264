package ledger

import (
	"sync"
	"time"

	"github.com/smallbiznis/ordercast/internal/clock"
	"github.com/smallbiznis/ordercast/internal/order/domain"
)

// Ledger is the in-process, append-only order store. Orders live for the
// lifetime of the process and are never mutated or removed once appended.
type Ledger struct {
	clk clock.Clock

	mu     sync.RWMutex
	orders []domain.Order
	lastAt time.Time
}

func New(clk clock.Clock) domain.Ledger {
	return &Ledger{clk: clk}
}

// Append assigns the next sequence identity, derives the display label from
// that same identity, stamps the creation time and stores the order. Identity
// assignment is atomic: concurrent appends never observe the same ID.
func (l *Ledger) Append(items []domain.LineItem, totalAmount int64) domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := domain.SequenceBaseline + int64(len(l.orders))

	now := l.clk.Now().UTC()
	if now.Before(l.lastAt) {
		// createdAt must be non-decreasing in sequence order even if the
		// wall clock steps backwards.
		now = l.lastAt
	}
	l.lastAt = now

	order := domain.Order{
		ID:          id,
		DisplayID:   domain.DisplayID(id),
		Items:       append([]domain.LineItem(nil), items...),
		TotalAmount: totalAmount,
		CreatedAt:   now,
	}
	l.orders = append(l.orders, order)
	return order
}

// Snapshot returns every stored order, most-recently-created first. The
// result is a copy; callers cannot reach back into ledger state.
func (l *Ledger) Snapshot() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Order, 0, len(l.orders))
	for i := len(l.orders) - 1; i >= 0; i-- {
		out = append(out, l.orders[i])
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
