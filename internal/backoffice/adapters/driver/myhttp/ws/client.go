package ws

import (
	"net/http"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"

	"github.com/gorilla/websocket"
)

type Client struct {
	conn     *websocket.Conn
	hub      *Hub
	egress   chan dto.JobEvent
	driverId int64
}

// ServeDriver upgrades the request and keeps the connection registered until
// either side closes it. The caller has already authenticated the driver.
func (h *Hub) ServeDriver(w http.ResponseWriter, r *http.Request, driver models.Driver) {
	log := h.log.Action("serveDriverWebsocket")

	conn, err := websocketUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("cannot upgrade connection", err)
		return
	}

	client := &Client{
		conn:     conn,
		hub:      h,
		egress:   make(chan dto.JobEvent, 8),
		driverId: driver.Id,
	}
	h.addClient(client)
	log.Info("driver connected", "driver_id", driver.Id)

	go client.readLoop()
	go client.writeLoop()
}

// readLoop discards inbound frames; the channel is push-only. Its real job is
// detecting the close.
func (c *Client) readLoop() {
	defer c.hub.removeClient(c)
	c.conn.SetReadLimit(1024)

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writeLoop() {
	defer c.hub.removeClient(c)

	for event := range c.egress {
		if err := c.conn.WriteJSON(event); err != nil {
			return
		}
	}
}
