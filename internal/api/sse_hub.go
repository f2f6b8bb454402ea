package api

import (
	"encoding/json"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"underwrite/models"
)

// SSEClient represents a connected SSE client
type SSEClient struct {
	SessionID string
	Channel   chan models.SessionEvent
}

// SSEHub manages Server-Sent Events for real-time session updates
type SSEHub struct {
	clients    map[string]map[chan models.SessionEvent]bool
	clientsMu  sync.RWMutex
	register   chan SSEClient
	unregister chan SSEClient
	broadcast  chan models.SessionEvent
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	hub := &SSEHub{
		clients:    make(map[string]map[chan models.SessionEvent]bool),
		register:   make(chan SSEClient, 10),
		unregister: make(chan SSEClient, 10),
		broadcast:  make(chan models.SessionEvent, 100),
	}

	go hub.run()
	return hub
}

// run processes SSE hub operations
func (h *SSEHub) run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			if h.clients[client.SessionID] == nil {
				h.clients[client.SessionID] = make(map[chan models.SessionEvent]bool)
			}
			h.clients[client.SessionID][client.Channel] = true
			h.clientsMu.Unlock()

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if clients, exists := h.clients[client.SessionID]; exists {
				delete(clients, client.Channel)
				close(client.Channel)
				if len(clients) == 0 {
					delete(h.clients, client.SessionID)
				}
			}
			h.clientsMu.Unlock()

		case event := <-h.broadcast:
			h.clientsMu.RLock()
			if clients, exists := h.clients[event.SessionID]; exists {
				for clientChan := range clients {
					select {
					case clientChan <- event:
					default:
						// Client channel is full, skip
						log.Printf("[SSE] Client channel full for session %s, skipping event",
							event.SessionID)
					}
				}
			}
			h.clientsMu.RUnlock()
		}
	}
}

// Broadcast sends an event to all clients listening to a session
func (h *SSEHub) Broadcast(event models.SessionEvent) {
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[SSE] Broadcast channel full, dropping event: %s", event.EventType)
	}
}

// HandleSSE handles the Server-Sent Events endpoint for a single session
func (h *SSEHub) HandleSSE(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		c.JSON(400, gin.H{"error": "session id required"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	clientChan := make(chan models.SessionEvent, 10)

	select {
	case h.register <- SSEClient{SessionID: sessionID, Channel: clientChan}:
	default:
		c.JSON(500, gin.H{"error": "SSE hub registration failed"})
		return
	}

	defer func() {
		select {
		case h.unregister <- SSEClient{SessionID: sessionID, Channel: clientChan}:
		default:
			// Hub might be overloaded, just let the channel leak until GC
		}
	}()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case event := <-clientChan:
			eventJSON, err := json.Marshal(event)
			if err != nil {
				log.Printf("[SSE] Failed to marshal event: %v", err)
				return true
			}

			c.SSEvent("session", string(eventJSON))
			return true

		case <-time.After(30 * time.Second):
			// Send ping to keep connection alive
			c.SSEvent("ping", `{"status": "alive", "timestamp": "`+time.Now().Format(time.RFC3339)+`"}`)
			return true

		case <-ctx.Done():
			return false
		}
	})
}

// GetClientCount returns the number of active clients for a session
func (h *SSEHub) GetClientCount(sessionID string) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	if clients, exists := h.clients[sessionID]; exists {
		return len(clients)
	}
	return 0
}
