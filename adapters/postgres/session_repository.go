package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"underwrite/domain/core"
	"underwrite/models"
	"underwrite/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionRepositoryImpl implements SessionRepository for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// CreateSession persists a brand new session
func (r *SessionRepositoryImpl) CreateSession(ctx context.Context, session *models.Session) error {
	// JSONBState implements driver.Valuer, so it will be automatically converted
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO underwriting_sessions (id, state, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, session.ID, session.State, session.Version, session.CreatedAt, session.UpdatedAt)
	return err
}

// GetSession retrieves a session by ID
func (r *SessionRepositoryImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.GetContext(ctx, &session, `
		SELECT id, state, version, created_at, updated_at
		FROM underwriting_sessions
		WHERE id = $1
	`, sessionID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// SaveSession writes the session state back with an optimistic version check
func (r *SessionRepositoryImpl) SaveSession(ctx context.Context, session *models.Session) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE underwriting_sessions
		SET state = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4
	`, session.ID, session.State, now, session.Version)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either the row is gone or another writer got there first
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `
			SELECT EXISTS(SELECT 1 FROM underwriting_sessions WHERE id = $1)
		`, session.ID); err != nil {
			return err
		}
		if !exists {
			return core.ErrSessionNotFound
		}
		return core.ErrSessionConflict
	}

	session.Version++
	session.UpdatedAt = now
	return nil
}

// ListSessions returns sessions newest first, optionally limited
func (r *SessionRepositoryImpl) ListSessions(ctx context.Context, limit int) ([]*models.Session, error) {
	query := `
		SELECT id, state, version, created_at, updated_at
		FROM underwriting_sessions
		ORDER BY created_at DESC
	`

	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	return r.scanSessions(ctx, query, args...)
}

// ListOpenSessions returns only sessions still accepting answers
func (r *SessionRepositoryImpl) ListOpenSessions(ctx context.Context) ([]*models.Session, error) {
	return r.scanSessions(ctx, `
		SELECT id, state, version, created_at, updated_at
		FROM underwriting_sessions
		WHERE COALESCE((state->>'completed')::boolean, false) = false
		  AND COALESCE((state->>'declined')::boolean, false) = false
		ORDER BY created_at DESC
	`)
}

func (r *SessionRepositoryImpl) scanSessions(ctx context.Context, query string, args ...interface{}) ([]*models.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var session models.Session
		err := rows.Scan(
			&session.ID,
			&session.State,
			&session.Version,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}
