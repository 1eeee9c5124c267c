package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub tracks live websocket connections keyed by company ID. A company
// may hold several connections (multiple tabs/devices).
type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

type Client struct {
	CompanyID int64
	conn      *websocket.Conn
	send      chan []byte
	hub       *Hub
	closeOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]struct{}),
	}
}

// Register attaches a connection and starts its read/write pumps.
func (h *Hub) Register(companyID int64, conn *websocket.Conn) *Client {
	c := &Client{
		CompanyID: companyID,
		conn:      conn,
		send:      make(chan []byte, 16),
		hub:       h,
	}

	h.mu.Lock()
	if h.clients[companyID] == nil {
		h.clients[companyID] = make(map[*Client]struct{})
	}
	h.clients[companyID][c] = struct{}{}
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()

	return c
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if set, ok := h.clients[c.CompanyID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.CompanyID)
		}
	}
	h.mu.Unlock()
}

// Push sends a message to every connection of one company.
func (h *Hub) Push(companyID int64, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[companyID] {
		select {
		case c.send <- message:
		default:
			// Slow consumer, drop the message rather than block.
			log.Warn().Int64("company_id", companyID).Msg("ws send buffer full, dropping message")
		}
	}
}

// Broadcast sends a message to every connected company.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, set := range h.clients {
		for c := range set {
			select {
			case c.send <- message:
			default:
			}
		}
	}
}

// Online reports how many companies currently hold at least one connection.
func (h *Hub) Online() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.hub.unregister(c)
		close(c.send)
		c.conn.Close()
	})
}

func (c *Client) readPump() {
	defer c.close()
	for {
		// Inbound frames are ignored, the socket is push-only.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
