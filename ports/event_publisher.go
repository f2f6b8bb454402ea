package ports

import (
	"underwrite/models"
)

// EventPublisher broadcasts session lifecycle events to interested
// subscribers. Implementations must not block the caller.
type EventPublisher interface {
	Publish(event models.SessionEvent)
}
