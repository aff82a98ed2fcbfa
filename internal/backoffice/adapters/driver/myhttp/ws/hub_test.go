package ws

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"logistics-backoffice/internal/backoffice/core/domain/dto"
	"logistics-backoffice/internal/backoffice/core/domain/models"
	"logistics-backoffice/internal/mylogger"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, hub *Hub, driver models.Driver) (*websocket.Conn, func()) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeDriver(w, r, driver)
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, srv.Close
}

func waitForClient(t *testing.T, h *Hub, driverId int64) *Client {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.RLock()
		for client := range h.clients[driverId] {
			h.mu.RUnlock()
			return client
		}
		h.mu.RUnlock()
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("driver %d never registered", driverId)
	return nil
}

func waitForEmpty(t *testing.T, h *Hub) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.RLock()
		n := len(h.clients)
		h.mu.RUnlock()
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("hub still holds clients")
}

func TestHubDeliversEvents(t *testing.T) {
	hub := NewHub(mylogger.NewWithWriter(io.Discard, slog.LevelError, "test"))

	conn, closeSrv := dialHub(t, hub, models.Driver{Id: 7, Email: "driver@example.com"})
	defer closeSrv()
	defer conn.Close()

	waitForClient(t, hub, 7)
	hub.NotifyDriver(7, dto.JobEvent{EventId: "e1", JobId: 42, Action: "assign", Status: "assigned"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event dto.JobEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if event.JobId != 42 || event.Action != "assign" {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestHubReleasesClientOnDisconnect(t *testing.T) {
	hub := NewHub(mylogger.NewWithWriter(io.Discard, slog.LevelError, "test"))

	conn, closeSrv := dialHub(t, hub, models.Driver{Id: 7})
	defer closeSrv()

	client := waitForClient(t, hub, 7)

	conn.Close()
	waitForEmpty(t, hub)

	// The egress channel must be closed on removal, otherwise the write loop
	// blocks on it forever.
	select {
	case _, open := <-client.egress:
		if open {
			t.Error("egress delivered an event after removal")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("egress never closed after disconnect")
	}

	// Notifying a departed driver is a no-op.
	hub.NotifyDriver(7, dto.JobEvent{EventId: "e2", JobId: 42, Action: "complete", Status: "completed"})
}
