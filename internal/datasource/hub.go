package datasource

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub pushes settings and validation events to connected admin tabs so a
// mode switch in one tab resyncs the others.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
	next        int64
}

type Event struct {
	Type string `json:"type"`
	Mode Mode   `json:"mode,omitempty"`
	Data any    `json:"data,omitempty"`
}

const (
	EventModeChanged      = "mode_changed"
	EventValidationResult = "validation_result"
)

func NewHub() *Hub {
	return &Hub{connections: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	id := h.next
	h.next++
	h.connections[id] = conn
	return id
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, id)
	}
}

// Broadcast sends the event to every connected tab, dropping connections
// that fail to write.
func (h *Hub) Broadcast(ev Event) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, c := range h.connections {
		conns[id] = c
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(ev); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
