package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"underwrite/domain/core"
	"underwrite/models"
	"underwrite/ports"

	"github.com/google/uuid"
)

// SessionRepositoryImpl implements SessionRepository in memory. Used by
// tests and by the API when no database is configured.
type SessionRepositoryImpl struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

// NewSessionRepository creates a new in-memory session repository
func NewSessionRepository() ports.SessionRepository {
	return &SessionRepositoryImpl{sessions: make(map[uuid.UUID]*models.Session)}
}

// CreateSession persists a brand new session
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied, err := copySession(session)
	if err != nil {
		return err
	}
	r.sessions[session.ID] = copied
	return nil
}

// GetSession retrieves a session by ID
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sessions[sessionID]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return copySession(stored)
}

// SaveSession writes the session state back with an optimistic version check
func (r *SessionRepositoryImpl) SaveSession(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[session.ID]
	if !ok {
		return core.ErrSessionNotFound
	}
	if stored.Version != session.Version {
		return core.ErrSessionConflict
	}

	session.Version++
	session.UpdatedAt = time.Now().UTC()
	copied, err := copySession(session)
	if err != nil {
		session.Version--
		return err
	}
	r.sessions[session.ID] = copied
	return nil
}

// ListSessions returns sessions newest first, optionally limited
func (r *SessionRepositoryImpl) ListSessions(ctx context.Context, limit int) ([]*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*models.Session, 0, len(r.sessions))
	for _, stored := range r.sessions {
		copied, err := copySession(stored)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, copied)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// ListOpenSessions returns only sessions still accepting answers
func (r *SessionRepositoryImpl) ListOpenSessions(ctx context.Context) ([]*models.Session, error) {
	sessions, err := r.ListSessions(ctx, 0)
	if err != nil {
		return nil, err
	}
	open := sessions[:0]
	for _, s := range sessions {
		if s.Open() {
			open = append(open, s)
		}
	}
	return open, nil
}

// copySession deep-copies through JSON so callers never share state with
// the stored aggregate
func copySession(session *models.Session) (*models.Session, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	var copied models.Session
	if err := json.Unmarshal(raw, &copied); err != nil {
		return nil, err
	}
	if copied.State.State == nil {
		copied.State = models.JSONBState{State: session.State.State}
	}
	return &copied, nil
}
