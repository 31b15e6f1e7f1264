package liveevents

import (
	"testing"
	"time"

	"github.com/smallbiznis/ordercast/internal/order/domain"
)

func testOrder(id int64) domain.Order {
	return domain.Order{
		ID:          id,
		DisplayID:   domain.DisplayID(id),
		Items:       []domain.LineItem{{ProductID: 1, UnitPrice: 45000, Quantity: 2}},
		TotalAmount: 90000,
	}
}

func receiveOrTimeout(t *testing.T, sub *Subscription) domain.Order {
	t.Helper()
	select {
	case order := <-sub.Events():
		return order
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for event")
		return domain.Order{}
	}
}

func assertNoEvent(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case order := <-sub.Events():
		t.Fatalf("unexpected event for order %d", order.ID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeReceivesOnlyFutureOrders(t *testing.T) {
	hub := NewHub()

	hub.Publish(testOrder(1))

	sub := hub.Subscribe()
	defer sub.Close()

	// nothing appended before attach is replayed
	assertNoEvent(t, sub)

	hub.Publish(testOrder(2))
	got := receiveOrTimeout(t, sub)
	if got.ID != 2 {
		t.Fatalf("expected order 2, got %d", got.ID)
	}
	assertNoEvent(t, sub)
}

func TestPublishDeliversToAllSubscribersExactlyOnce(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe()
	defer a.Close()
	b := hub.Subscribe()
	defer b.Close()

	if delivered := hub.Publish(testOrder(1)); delivered != 2 {
		t.Fatalf("expected 2 deliveries, got %d", delivered)
	}

	for _, sub := range []*Subscription{a, b} {
		got := receiveOrTimeout(t, sub)
		if got.ID != 1 {
			t.Fatalf("expected order 1, got %d", got.ID)
		}
		assertNoEvent(t, sub)
	}
}

func TestEventsArriveInPublishOrder(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer sub.Close()

	hub.Publish(testOrder(1))
	hub.Publish(testOrder(2))

	if got := receiveOrTimeout(t, sub); got.ID != 1 {
		t.Fatalf("expected order 1 first, got %d", got.ID)
	}
	if got := receiveOrTimeout(t, sub); got.ID != 2 {
		t.Fatalf("expected order 2 second, got %d", got.ID)
	}
}

func TestSlowSubscriberDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()

	slow := hub.Subscribe()
	defer slow.Close()
	fast := hub.Subscribe()
	defer fast.Close()

	// saturate the slow subscriber's buffer without draining it
	for i := 1; i <= DefaultSubscriberBuffer; i++ {
		hub.Publish(testOrder(int64(i)))
		receiveOrTimeout(t, fast)
	}

	overflow := testOrder(DefaultSubscriberBuffer + 1)
	delivered := hub.Publish(overflow)
	if delivered != 1 {
		t.Fatalf("expected only the fast subscriber to accept delivery, got %d", delivered)
	}

	got := receiveOrTimeout(t, fast)
	if got.ID != overflow.ID {
		t.Fatalf("expected order %d, got %d", overflow.ID, got.ID)
	}
}

func TestCloseDetachesAndIsIdempotent(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe()
	if hub.Len() != 1 {
		t.Fatalf("expected 1 subscriber, got %d", hub.Len())
	}

	sub.Close()
	sub.Close()
	if hub.Len() != 0 {
		t.Fatalf("expected 0 subscribers after close, got %d", hub.Len())
	}

	if delivered := hub.Publish(testOrder(1)); delivered != 0 {
		t.Fatalf("expected no deliveries after close, got %d", delivered)
	}
}

func TestNilHubIsSafe(t *testing.T) {
	var hub *Hub

	if delivered := hub.Publish(testOrder(1)); delivered != 0 {
		t.Fatalf("expected 0 deliveries on nil hub, got %d", delivered)
	}
	if hub.Len() != 0 {
		t.Fatalf("expected 0 subscribers on nil hub")
	}
	if sub := hub.Subscribe(); sub != nil {
		t.Fatalf("expected nil subscription from nil hub")
	}
}
