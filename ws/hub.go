package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mantiene las conexiones suscritas a cambios en la lista de documentos.
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	go h.readPump(conn)
	go h.writePump(client)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
}

func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// GetStats devuelve datos para el health check.
func (h *Hub) GetStats() map[string]interface{} {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	return map[string]interface{}{
		"connected_clients": len(h.Clients),
	}
}

// BroadcastDocumentListChanged avisa a los clientes que la lista de
// documentos cambió (p. ej. tras una subida exitosa).
func BroadcastDocumentListChanged() {
	H.Broadcast([]byte(`{"type": "document_list_changed"}`))
}

func (h *Hub) readPump(conn *websocket.Conn) {
	defer h.Unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(client *Client) {
	defer func() {
		client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
		client.Conn.Close()
	}()
	for msg := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
