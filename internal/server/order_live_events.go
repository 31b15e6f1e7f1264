package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/smallbiznis/ordercast/internal/order/domain"
)

// StreamOrderEvents attaches the caller as a live observer. The stream
// carries one event per order created after the attach; history is served
// by GET /api/orders, and consumers reconcile the two channels by order id.
func (s *Server) StreamOrderEvents(c *gin.Context) {
	if s.liveOrderEvents == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	writer := c.Writer
	flusher, ok := writer.(http.Flusher)
	if !ok {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	subscription := s.liveOrderEvents.Subscribe()
	defer subscription.Close()

	s.obsMetrics.AddLiveSubscribers(c.Request.Context(), 1)
	defer s.obsMetrics.AddLiveSubscribers(c.Request.Context(), -1)

	headers := writer.Header()
	headers.Set("Content-Type", "text/event-stream")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")
	headers.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	if _, err := io.WriteString(writer, "retry: 2000\n\n"); err != nil {
		return
	}
	flusher.Flush()

	s.log.Debug("order observer attached")
	defer s.log.Debug("order observer detached")

	ctx := c.Request.Context()
	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case order := <-subscription.Events():
			if err := writeOrderEvent(writer, order); err != nil {
				return
			}
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := io.WriteString(writer, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeOrderEvent(w io.Writer, order orderdomain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
