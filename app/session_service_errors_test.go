package app

import (
	"context"
	"testing"

	"underwrite/domain/catalog"
	"underwrite/domain/core"
	"underwrite/internal"
	"underwrite/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessionRepository lets tests script storage failures
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) ListSessions(ctx context.Context, limit int) ([]*models.Session, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Session), args.Error(1)
}

func (m *MockSessionRepository) ListOpenSessions(ctx context.Context) ([]*models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Session), args.Error(1)
}

func TestSubmitAnswerUnknownSession(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewSessionService(repo, internal.NewLogger(internal.LogLevelError))

	id := uuid.New()
	repo.On("GetSession", mock.Anything, id).Return(nil, core.ErrSessionNotFound)

	_, err := svc.SubmitAnswer(context.Background(), id, catalog.Sex, []byte(`{"sex":"male"}`))
	assert.ErrorIs(t, err, core.ErrSessionNotFound)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
}

func TestSubmitAnswerSurfacesSaveConflict(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewSessionService(repo, internal.NewLogger(internal.LogLevelError))

	session := models.NewSession()
	repo.On("GetSession", mock.Anything, session.ID).Return(session, nil)
	repo.On("SaveSession", mock.Anything, session).Return(core.ErrSessionConflict)

	_, err := svc.SubmitAnswer(context.Background(), session.ID, catalog.Sex, []byte(`{"sex":"male"}`))
	assert.ErrorIs(t, err, core.ErrSessionConflict)
	repo.AssertExpectations(t)
}

func TestSubmitAnswerInvalidPayloadSkipsSave(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewSessionService(repo, internal.NewLogger(internal.LogLevelError))

	session := models.NewSession()
	repo.On("GetSession", mock.Anything, session.ID).Return(session, nil)

	_, err := svc.SubmitAnswer(context.Background(), session.ID, catalog.Sex, []byte(`{"tobacco":true}`))
	assert.Error(t, err)
	assert.True(t, core.IsValidationError(err))
	repo.AssertNotCalled(t, "SaveSession", mock.Anything, mock.Anything)
}

func TestRecomputeAllListFailure(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewSessionService(repo, internal.NewLogger(internal.LogLevelError))

	repo.On("ListOpenSessions", mock.Anything).Return(nil, assert.AnError)

	count, err := svc.RecomputeAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, count)
}
