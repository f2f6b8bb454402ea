package app

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"underwrite/domain/catalog"
	"underwrite/domain/underwriting"
	"underwrite/internal"
	"underwrite/internal/intake"
	"underwrite/models"
	"underwrite/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// recomputeWorkers bounds the fan-out of a bulk recompute
const recomputeWorkers = 8

// SessionService orchestrates underwriting sessions: it loads the aggregate,
// runs the domain engine against it, and persists the result. A per-session
// mutex serializes writers within this process; the repository version check
// catches writers in other processes.
type SessionService struct {
	repo   ports.SessionRepository
	logger *internal.Logger
	events ports.EventPublisher
	locks  sync.Map
}

// QuestionView is one askable question with its display text
type QuestionView struct {
	ID        catalog.ID `json:"id"`
	Text      string     `json:"text"`
	Mandatory bool       `json:"mandatory"`
}

// NewSessionService creates a session service
func NewSessionService(repo ports.SessionRepository, logger *internal.Logger) *SessionService {
	return &SessionService{repo: repo, logger: logger}
}

// SetEventPublisher attaches an optional publisher for session events
func (s *SessionService) SetEventPublisher(events ports.EventPublisher) {
	s.events = events
}

func (s *SessionService) publish(session *models.Session, eventType string, questionID catalog.ID) {
	if s.events == nil {
		return
	}
	event := models.SessionEvent{
		SessionID:  session.ID.String(),
		EventType:  eventType,
		QuestionID: string(questionID),
		Declined:   session.State.Declined,
		Timestamp:  time.Now().UTC(),
	}
	if session.State.CurrentPlan != nil {
		event.Plan = string(*session.State.CurrentPlan)
	}
	s.events.Publish(event)
}

func (s *SessionService) lock(id uuid.UUID) func() {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// StartSession creates and persists a fresh session with the cursor on the
// first mandatory question
func (s *SessionService) StartSession(ctx context.Context) (*models.Session, error) {
	session := models.NewSession()
	underwriting.Recompute(session.State.State)

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session started: %s", session.ID)
	s.publish(session, models.EventSessionStarted, "")
	return session, nil
}

// GetSession loads a session by ID
func (s *SessionService) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	return s.repo.GetSession(ctx, id)
}

// ListSessions returns sessions newest first, optionally limited
func (s *SessionService) ListSessions(ctx context.Context, limit int) ([]*models.Session, error) {
	return s.repo.ListSessions(ctx, limit)
}

// SubmitAnswer applies one answer to a session. Validation failures come
// back as domain errors; a decline triggered by the answer is recorded on
// the state and is not an error.
func (s *SessionService) SubmitAnswer(ctx context.Context, id uuid.UUID, questionID catalog.ID, payload json.RawMessage) (*models.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := underwriting.AnswerQuestion(session.State.State, questionID, payload); err != nil {
		return nil, err
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	switch {
	case session.State.Declined:
		s.logger.Info("session %s declined: %s", session.ID, session.State.DeclineReason)
		s.publish(session, models.EventSessionDeclined, questionID)
	case session.State.Completed:
		s.logger.Info("session %s completed, plan %v", session.ID, session.State.CurrentPlan)
		s.publish(session, models.EventSessionCompleted, questionID)
	default:
		s.logger.Debug("session %s answered %s, floor %s", session.ID, questionID, session.State.PlanFloor)
		s.publish(session, models.EventAnswerRecorded, questionID)
	}
	return session, nil
}

// UpdateDemographics records demographic fields on a session. It never runs
// rules; follow it with RecomputeSession to fold a changed BMI back in.
func (s *SessionService) UpdateDemographics(ctx context.Context, id uuid.UUID, d underwriting.Demographics) (*models.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := underwriting.UpdateDemographics(session.State.State, d); err != nil {
		return nil, err
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.publish(session, models.EventDemographicsUpdated, "")
	return session, nil
}

// ApplyIntake extracts demographics and early answers from a free-form
// message and folds them into the session
func (s *SessionService) ApplyIntake(ctx context.Context, id uuid.UUID, message string) (*models.Session, intake.Application, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, intake.Application{}, err
	}

	application, err := intake.Apply(session.State.State, message)
	if err != nil {
		return nil, application, err
	}
	if application.Empty() {
		return session, application, nil
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, application, err
	}

	s.logger.Info("session %s intake answered %v", session.ID, application.Answered)
	s.publish(session, models.EventIntakeApplied, "")
	return session, application, nil
}

// AvailableQuestions lists what may be asked now, with display text
func (s *SessionService) AvailableQuestions(ctx context.Context, id uuid.UUID) ([]QuestionView, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := underwriting.AvailableQuestions(session.State.State)
	views := make([]QuestionView, 0, len(ids))
	for _, qid := range ids {
		q, ok := catalog.Get(qid)
		if !ok {
			continue
		}
		views = append(views, QuestionView{ID: qid, Text: q.Text, Mandatory: q.Mandatory})
	}
	return views, nil
}

// RecomputeSession replays the session's full answer history so late or
// changed information settles into a consistent eligibility picture
func (s *SessionService) RecomputeSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	unlock := s.lock(id)
	defer unlock()

	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	underwriting.Recompute(session.State.State)

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Debug("session %s recomputed, floor %s", session.ID, session.State.PlanFloor)
	s.publish(session, models.EventSessionRecomputed, "")
	return session, nil
}

// RecomputeAll replays every open session, bounded by a small worker pool.
// Used after a rulebook change so in-flight sessions pick it up.
func (s *SessionService) RecomputeAll(ctx context.Context) (int, error) {
	sessions, err := s.repo.ListOpenSessions(ctx)
	if err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(recomputeWorkers)

	for _, session := range sessions {
		id := session.ID
		g.Go(func() error {
			if _, err := s.RecomputeSession(ctx, id); err != nil {
				s.logger.Error("recompute of session %s failed: %v", id, err)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(sessions), nil
}
