package ports

import (
	"context"

	"underwrite/models"

	"github.com/google/uuid"
)

// SessionRepository defines the interface for underwriting session storage
type SessionRepository interface {
	// CreateSession persists a brand new session
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session by ID. Returns core.ErrSessionNotFound
	// when no row exists.
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)

	// SaveSession writes the session state back, bumping the version.
	// Returns core.ErrSessionConflict when the stored version no longer
	// matches the one the session was loaded with.
	SaveSession(ctx context.Context, session *models.Session) error

	// ListSessions returns sessions newest first, optionally limited
	ListSessions(ctx context.Context, limit int) ([]*models.Session, error)

	// ListOpenSessions returns only sessions still accepting answers
	ListOpenSessions(ctx context.Context) ([]*models.Session, error)
}
