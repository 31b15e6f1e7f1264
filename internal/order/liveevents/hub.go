package liveevents

import (
	"sync"

	"github.com/google/uuid"
	"github.com/smallbiznis/ordercast/internal/order/domain"
)

// DefaultSubscriberBuffer bounds how far a subscriber may lag before
// deliveries to it are dropped.
const DefaultSubscriberBuffer = 16

// Hub fans newly appended orders out to every attached subscriber. A
// subscriber receives only orders published after it attached; there is no
// history replay. Delivery is best-effort per subscriber: a full channel
// drops that delivery without blocking the publisher or the other
// subscribers.
type Hub struct {
	mu               sync.RWMutex
	subs             map[string]chan domain.Order
	subscriberBuffer int
}

type Subscription struct {
	hub  *Hub
	id   string
	ch   chan domain.Order
	once sync.Once
}

func NewHub() *Hub {
	return &Hub{
		subs:             make(map[string]chan domain.Order),
		subscriberBuffer: DefaultSubscriberBuffer,
	}
}

// Publish delivers order to the current set of subscribers, at most once
// each. It returns the number of deliveries that were accepted.
func (h *Hub) Publish(order domain.Order) int {
	if h == nil {
		return 0
	}

	h.mu.RLock()
	subs := make([]chan domain.Order, 0, len(h.subs))
	for _, ch := range h.subs {
		subs = append(subs, ch)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, ch := range subs {
		select {
		case ch <- order:
			delivered++
		default:
		}
	}
	return delivered
}

func (h *Hub) Subscribe() *Subscription {
	if h == nil {
		return nil
	}

	ch := make(chan domain.Order, h.subscriberBuffer)
	id := uuid.NewString()

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	return &Subscription{hub: h, id: id, ch: ch}
}

// Len reports the number of attached subscribers.
func (h *Hub) Len() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) unsubscribe(id string) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

func (s *Subscription) Events() <-chan domain.Order {
	if s == nil {
		return nil
	}
	return s.ch
}

// Close detaches the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	if s == nil || s.hub == nil {
		return
	}
	s.once.Do(func() {
		s.hub.unsubscribe(s.id)
	})
}
