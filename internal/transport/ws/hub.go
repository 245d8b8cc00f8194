package ws

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hub tracks connected WebSocket clients and fans post events out to
// all of them. There is no per-feed subscription: every connected
// client sees every change.
type Hub struct {
	// clients maps userID → client.
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	log *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		log:        log,
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if old, ok := h.clients[client.userID]; ok && old != client {
				// A newer connection replaces the old one; shut the
				// old one down so its write pump exits.
				close(old.send)
				close(old.done)
			}
			h.clients[client.userID] = client
			h.log.Infof("ws hub: user %s connected (%d total)", client.userID, len(h.clients))

		case client := <-h.unregister:
			// Only the currently registered client may remove the
			// entry; a replaced connection unregistering late must
			// not evict its successor.
			if h.clients[client.userID] == client {
				delete(h.clients, client.userID)
				close(client.send)
				close(client.done)
				h.log.Infof("ws hub: user %s disconnected (%d total)", client.userID, len(h.clients))
			}

		case data := <-h.broadcast:
			for _, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client buffer full - disconnect
					delete(h.clients, client.userID)
					close(client.send)
					close(client.done)
				}
			}
		}
	}
}

// Broadcast queues an already-encoded event for every connected client.
// It never blocks the caller on slow clients.
func (h *Hub) Broadcast(data []byte) {
	select {
	case h.broadcast <- data:
	default:
		h.log.Warn("ws hub: broadcast buffer full, dropping event")
	}
}
