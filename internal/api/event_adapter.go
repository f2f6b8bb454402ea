package api

import (
	"underwrite/models"
)

// SSEEventBroadcaster adapts the SSEHub to the ports.EventPublisher interface
type SSEEventBroadcaster struct {
	sseHub *SSEHub
}

// NewSSEEventBroadcaster creates a new SSE event broadcaster
func NewSSEEventBroadcaster(sseHub *SSEHub) *SSEEventBroadcaster {
	return &SSEEventBroadcaster{sseHub: sseHub}
}

// Publish forwards a session event to any connected SSE clients
func (seb *SSEEventBroadcaster) Publish(event models.SessionEvent) {
	seb.sseHub.Broadcast(event)
}
