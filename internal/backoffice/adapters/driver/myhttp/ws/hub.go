package ws

import (
	"sync"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/mylogger"

	"github.com/gorilla/websocket"
)

var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub fans job events out to the connected clients of each driver. A driver
// may hold several connections; a driver with none simply misses the event.
type Hub struct {
	clients map[int64]map[*Client]bool
	mu      sync.RWMutex
	log     mylogger.Logger
}

func NewHub(log mylogger.Logger) *Hub {
	return &Hub{
		clients: make(map[int64]map[*Client]bool),
		log:     log,
	}
}

func (h *Hub) NotifyDriver(driverId int64, event dto.JobEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[driverId] {
		select {
		case client.egress <- event:
		default:
			// Slow consumer; drop rather than block the caller.
			h.log.Warn("dropping job event for slow websocket client", "driver_id", driverId)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.driverId] == nil {
		h.clients[client.driverId] = make(map[*Client]bool)
	}
	h.clients[client.driverId][client] = true
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[client.driverId]; ok {
		if conns[client] {
			client.conn.Close()
			// Unblocks the write loop. Safe here: sends in NotifyDriver hold
			// the same lock, and the membership check makes this run once.
			close(client.egress)
			delete(conns, client)
			if len(conns) == 0 {
				delete(h.clients, client.driverId)
			}
		}
	}
}
