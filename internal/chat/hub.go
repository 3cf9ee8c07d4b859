// Package chat relays assistant conversations to connected socket clients.
package chat

import (
	"sync"

	"telephysio/pkg/metrics"

	"go.uber.org/zap"
)

// Client is one connected socket. Outbound frames are queued on a buffered
// channel that a single writer drains.
type Client struct {
	ID   string
	send chan []byte
}

func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = 16
	}
	return &Client{ID: id, send: make(chan []byte, buffer)}
}

// Outbound is closed when the hub drops the client.
func (c *Client) Outbound() <-chan []byte {
	return c.send
}

// WritePump hands queued frames to write until the queue is closed or write
// fails.
func (c *Client) WritePump(write func([]byte) error) error {
	for frame := range c.send {
		if err := write(frame); err != nil {
			return err
		}
	}
	return nil
}

// Hub tracks connected clients. A client whose queue is full is dropped
// rather than allowed to stall everyone else.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	metrics.ChatClients.Inc()
	h.logger.Debug("Chat client connected", zap.String("client", c.ID))
}

// Unregister removes c and closes its queue. It is safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	metrics.ChatClients.Dec()
	h.logger.Debug("Chat client disconnected", zap.String("client", c.ID))
}

// Len reports the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues an event for every client.
func (h *Hub) Broadcast(event string, data interface{}) error {
	frame, err := encode(event, data)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.enqueueLocked(c, frame)
	}
	return nil
}

// SendTo queues an event for c alone.
func (h *Hub) SendTo(c *Client, event string, data interface{}) error {
	frame, err := encode(event, data)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		h.enqueueLocked(c, frame)
	}
	return nil
}

func (h *Hub) enqueueLocked(c *Client, frame []byte) {
	select {
	case c.send <- frame:
	default:
		h.logger.Warn("Dropping slow chat client", zap.String("client", c.ID))
		h.removeLocked(c)
	}
}

// Close drops every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}
