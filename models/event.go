package models

import (
	"time"
)

// Session event types emitted as a session progresses.
const (
	EventSessionStarted      = "session_started"
	EventAnswerRecorded      = "answer_recorded"
	EventDemographicsUpdated = "demographics_updated"
	EventIntakeApplied       = "intake_applied"
	EventSessionRecomputed   = "session_recomputed"
	EventSessionDeclined     = "session_declined"
	EventSessionCompleted    = "session_completed"
)

// SessionEvent describes a state change on an underwriting session.
type SessionEvent struct {
	SessionID  string                 `json:"session_id"`
	EventType  string                 `json:"event_type"`
	QuestionID string                 `json:"question_id,omitempty"`
	Plan       string                 `json:"plan,omitempty"`
	Declined   bool                   `json:"declined"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}
