package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"underwrite/domain/applicant"

	"github.com/google/uuid"
)

// JSONBState is a custom type for the PostgreSQL JSONB column holding the
// full applicant state
type JSONBState struct {
	*applicant.State
}

// Value implements driver.Valuer interface
func (j JSONBState) Value() (driver.Value, error) {
	if j.State == nil {
		return nil, nil
	}
	return json.Marshal(j.State)
}

// Scan implements sql.Scanner interface
func (j *JSONBState) Scan(value interface{}) error {
	if value == nil {
		j.State = applicant.New()
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported state column type %T", value)
	}

	if len(bytes) == 0 {
		j.State = applicant.New()
		return nil
	}

	state := applicant.New()
	if err := json.Unmarshal(bytes, state); err != nil {
		return err
	}
	j.State = state
	return nil
}

// Session wraps one applicant walk with persistence bookkeeping. Version
// implements optimistic concurrency: a save only lands when the stored row
// still carries the version the session was loaded with.
type Session struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	State     JSONBState `json:"state" db:"state"`
	Version   int64      `json:"version" db:"version"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// NewSession creates a fresh session with an empty applicant state.
// IDs are UUIDv7 so storage order tracks creation order.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        newSessionID(),
		State:     JSONBState{State: applicant.New()},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newSessionID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Open reports whether the session still accepts answers
func (s *Session) Open() bool {
	return s.State.State != nil && !s.State.Completed && !s.State.Declined
}
