package live

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub tracks every connected viewer and fans tournament events out to all of
// them. There is a single broadcast domain: one tournament, one viewer set.
type Hub struct {
	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			log.Printf("Viewer registered. Total viewers: %d", len(h.clients))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				client.closeSend()
				delete(h.clients, client)
				log.Printf("Viewer unregistered. Total viewers: %d", len(h.clients))
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				client.closeSend()
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Shutdown stops the run loop and closes every viewer's send channel.
func (h *Hub) Shutdown() {
	close(h.done)
}

// BroadcastEvent marshals the event once and enqueues it to every connected
// viewer. Best-effort: a viewer whose send buffer is full is skipped, a
// failed connection is cleaned up by its own pumps. A single event is fanned
// out under one read lock, so all viewers observe events in the same order.
func (h *Hub) BroadcastEvent(event interface{}) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshalling broadcast event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		client.Enqueue(messageBytes)
	}
}

// ViewerCount reports the number of currently connected viewers.
func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
