package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"underwrite/app"
	"underwrite/domain/catalog"
	"underwrite/domain/core"
	"underwrite/domain/underwriting"
	"underwrite/internal"
	"underwrite/models"
)

// SessionHandler handles underwriting session requests
type SessionHandler struct {
	sessions *app.SessionService
	logger   *internal.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *app.SessionService, logger *internal.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

// CreateSessionRequest optionally seeds a new session from a free-form
// applicant message
type CreateSessionRequest struct {
	Message string `json:"message"`
}

// SubmitAnswerRequest carries one answer payload for a question
type SubmitAnswerRequest struct {
	QuestionID string          `json:"questionId" binding:"required"`
	Answer     json.RawMessage `json:"answer" binding:"required"`
}

// IntakeRequest carries a free-form applicant message
type IntakeRequest struct {
	Message string `json:"message" binding:"required"`
}

// SessionResponse is the wire shape of a session
type SessionResponse struct {
	ID        string           `json:"id"`
	Version   int64            `json:"version"`
	State     *json.RawMessage `json:"state"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
}

func sessionResponse(session *models.Session) (SessionResponse, error) {
	raw, err := json.Marshal(session.State.State)
	if err != nil {
		return SessionResponse{}, err
	}
	state := json.RawMessage(raw)
	return SessionResponse{
		ID:        session.ID.String(),
		Version:   session.Version,
		State:     &state,
		CreatedAt: session.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: session.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

func (sh *SessionHandler) respondSession(c *gin.Context, status int, session *models.Session) {
	resp, err := sessionResponse(session)
	if err != nil {
		sh.logger.Error("marshal session %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode session"})
		return
	}
	c.JSON(status, resp)
}

// respondDomainError maps engine errors onto HTTP statuses
func (sh *SessionHandler) respondDomainError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, core.ErrSessionClosed), errors.Is(err, core.ErrSessionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case core.IsValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		sh.logger.Error("session request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (sh *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// CreateSession starts a new session, applying an intake message when given
func (sh *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	session, err := sh.sessions.StartSession(c.Request.Context())
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}

	if req.Message != "" {
		session, _, err = sh.sessions.ApplyIntake(c.Request.Context(), session.ID, req.Message)
		if err != nil {
			sh.respondDomainError(c, err)
			return
		}
	}

	sh.respondSession(c, http.StatusCreated, session)
}

// GetSession returns a session by id
func (sh *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sh.sessionID(c)
	if !ok {
		return
	}

	session, err := sh.sessions.GetSession(c.Request.Context(), id)
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}
	sh.respondSession(c, http.StatusOK, session)
}

// ListSessions returns sessions newest first
func (sh *SessionHandler) ListSessions(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	sessions, err := sh.sessions.ListSessions(c.Request.Context(), limit)
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}

	responses := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		resp, err := sessionResponse(session)
		if err != nil {
			sh.logger.Error("marshal session %s: %v", session.ID, err)
			continue
		}
		responses = append(responses, resp)
	}
	c.JSON(http.StatusOK, gin.H{"sessions": responses, "count": len(responses)})
}

// SubmitAnswer records one answer against a session
func (sh *SessionHandler) SubmitAnswer(c *gin.Context) {
	id, ok := sh.sessionID(c)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionId and answer are required"})
		return
	}

	session, err := sh.sessions.SubmitAnswer(c.Request.Context(), id, catalog.ID(req.QuestionID), req.Answer)
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}
	sh.respondSession(c, http.StatusOK, session)
}

// UpdateDemographics sets age, height and weight on a session
func (sh *SessionHandler) UpdateDemographics(c *gin.Context) {
	id, ok := sh.sessionID(c)
	if !ok {
		return
	}

	var req underwriting.Demographics
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := sh.sessions.UpdateDemographics(c.Request.Context(), id, req)
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}
	sh.respondSession(c, http.StatusOK, session)
}

// ApplyIntake folds a free-form applicant message into a session
func (sh *SessionHandler) ApplyIntake(c *gin.Context) {
	id, ok := sh.sessionID(c)
	if !ok {
		return
	}

	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	session, application, err := sh.sessions.ApplyIntake(c.Request.Context(), id, req.Message)
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}

	resp, err := sessionResponse(session)
	if err != nil {
		sh.logger.Error("marshal session %s: %v", session.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":  resp,
		"answered": application.Answered,
	})
}

// AvailableQuestions lists what may be asked on a session right now
func (sh *SessionHandler) AvailableQuestions(c *gin.Context) {
	id, ok := sh.sessionID(c)
	if !ok {
		return
	}

	questions, err := sh.sessions.AvailableQuestions(c.Request.Context(), id)
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions, "count": len(questions)})
}

// RecomputeSession replays one session's answer history
func (sh *SessionHandler) RecomputeSession(c *gin.Context) {
	id, ok := sh.sessionID(c)
	if !ok {
		return
	}

	session, err := sh.sessions.RecomputeSession(c.Request.Context(), id)
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}
	sh.respondSession(c, http.StatusOK, session)
}

// RecomputeAll replays every open session
func (sh *SessionHandler) RecomputeAll(c *gin.Context) {
	count, err := sh.sessions.RecomputeAll(c.Request.Context())
	if err != nil {
		sh.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recomputed": count})
}
