package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans activity events out to every connected feed client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// Client wraps one connection. gorilla/websocket allows at most one
// concurrent writer per connection, so every write goes through the
// client's own mutex.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *Client) write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(conn *websocket.Conn) *Client {
	c := &Client{conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.conn.Close()
}

// Broadcast sends the payload to all clients. Send failures are ignored;
// dead connections are reaped by their read loops.
func (h *Hub) Broadcast(payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.write(msg)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
