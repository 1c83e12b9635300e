// Package notify fans change notifications out to connected websocket clients.
package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	UpdateMessageType = "UPDATE"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message tells clients that the resource at ResourcePath changed and should be fetched again.
type Message struct {
	Type         string `json:"type"`
	ResourcePath string `json:"resourcePath"`
	Timestamp    int64  `json:"timestamp"`
}

type Options struct {
	QueueSize      int
	SubscriberSize int
	AllowedOrigins []string
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub keeps the set of connected subscribers. Run owns registration and fan-out; Broadcast never
// blocks the caller.
type Hub struct {
	logger   *zap.Logger
	metrics  *metrics
	upgrader websocket.Upgrader
	now      func() time.Time

	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}

	subscriberSize int
	broadcast      chan []byte
	register       chan *subscriber
	unregister     chan *subscriber
	done           chan struct{}
	closeOnce      sync.Once
}

func NewHub(opts Options, reg prometheus.Registerer, logger *zap.Logger) *Hub {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}

	if opts.SubscriberSize <= 0 {
		opts.SubscriberSize = 256
	}

	hub := &Hub{
		logger:         logger,
		metrics:        newMetrics(reg),
		now:            time.Now,
		subscribers:    make(map[*subscriber]struct{}),
		subscriberSize: opts.SubscriberSize,
		broadcast:      make(chan []byte, opts.QueueSize),
		register:       make(chan *subscriber),
		unregister:     make(chan *subscriber),
		done:           make(chan struct{}),
	}

	hub.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")

			return origin == "" || slices.Contains(opts.AllowedOrigins, "*") || slices.Contains(opts.AllowedOrigins, origin)
		},
	}

	return hub
}

// Broadcast queues one UPDATE message per resource path. Messages are dropped when the queue is
// full.
func (h *Hub) Broadcast(resourcePaths ...string) {
	for _, path := range resourcePaths {
		payload, err := json.Marshal(Message{
			Type:         UpdateMessageType,
			ResourcePath: path,
			Timestamp:    h.now().UnixMilli(),
		})
		if err != nil {
			h.logger.Error("error encoding update message", zap.String("resourcePath", path), zap.Error(err))

			continue
		}

		select {
		case h.broadcast <- payload:
			h.metrics.broadcasts.Inc()
		default:
			h.metrics.dropped.Inc()
			h.logger.Warn("update queue full, dropping message", zap.String("resourcePath", path))
		}
	}
}

// Run serves registrations and fans queued messages out until ctx is done, then disconnects every
// subscriber. Subscribers that cannot be told about the shutdown are logged, not returned.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if err := h.Close(); err != nil {
				h.logger.Warn("error disconnecting subscribers", zap.Error(err))
			}

			return nil
		case sub := <-h.register:
			h.mu.Lock()
			h.subscribers[sub] = struct{}{}
			h.metrics.subscribers.Set(float64(len(h.subscribers)))
			h.mu.Unlock()
		case sub := <-h.unregister:
			h.mu.Lock()
			h.remove(sub)
			h.mu.Unlock()
		case payload := <-h.broadcast:
			h.fanOut(payload)
		}
	}
}

func (h *Hub) fanOut(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers {
		select {
		case sub.send <- payload:
		default:
			h.metrics.dropped.Inc()
			h.logger.Warn("subscriber too slow, disconnecting", zap.String("remote", sub.conn.RemoteAddr().String()))
			h.remove(sub)
		}
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(sub *subscriber) {
	if _, ok := h.subscribers[sub]; !ok {
		return
	}

	delete(h.subscribers, sub)
	close(sub.send)
	h.metrics.subscribers.Set(float64(len(h.subscribers)))
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// Close disconnects every subscriber and stops accepting new ones.
func (h *Hub) Close() error {
	var err error

	h.closeOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		defer h.mu.Unlock()

		deadline := time.Now().Add(writeWait)
		goingAway := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")

		for sub := range h.subscribers {
			err = multierr.Append(err, sub.conn.WriteControl(websocket.CloseMessage, goingAway, deadline))
			h.remove(sub)
		}
	})

	return err
}

// ServeWS upgrades the request and registers the connection as a subscriber.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))

		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, h.subscriberSize)}

	select {
	case h.register <- sub:
	case <-h.done:
		_ = conn.Close()

		return
	}

	go h.writePump(sub)
	go h.readPump(sub)
}

func (h *Hub) writePump(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = sub.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = sub.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards anything clients send and unregisters the subscriber once the connection
// fails.
func (h *Hub) readPump(sub *subscriber) {
	defer func() {
		select {
		case h.unregister <- sub:
		case <-h.done:
		}

		_ = sub.conn.Close()
	}()

	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Info("subscriber disconnected", zap.Error(err))
			}

			return
		}
	}
}
