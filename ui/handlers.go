package ui

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"underwrite/domain/catalog"
	"underwrite/domain/core"
	"underwrite/internal/analytics"
	"underwrite/models"
)

// sessionRow is one line of the console's session book
type sessionRow struct {
	ID        string
	Status    string
	Plan      string
	Floor     string
	Age       string
	BMI       string
	Answered  int
	UpdatedAt string
}

func sessionStatus(s *models.Session) string {
	switch {
	case s.State.Declined:
		return "DECLINED"
	case s.State.Completed:
		return "COMPLETED"
	default:
		return "OPEN"
	}
}

func sessionPlan(s *models.Session) string {
	if s.State.Declined {
		return "Decline"
	}
	if s.State.CurrentPlan != nil {
		return string(*s.State.CurrentPlan)
	}
	if s.State.RecommendedPlan != nil {
		return string(*s.State.RecommendedPlan)
	}
	return "—"
}

func toRow(s *models.Session) sessionRow {
	row := sessionRow{
		ID:        s.ID.String(),
		Status:    sessionStatus(s),
		Plan:      sessionPlan(s),
		Floor:     string(s.State.PlanFloor),
		Age:       "—",
		BMI:       "—",
		Answered:  len(s.State.QuestionsAnswered),
		UpdatedAt: s.UpdatedAt.Format("2006-01-02 15:04"),
	}
	if s.State.Age != nil {
		row.Age = itoa(*s.State.Age)
	}
	if s.State.BMI != nil {
		row.BMI = ftoa(*s.State.BMI)
	}
	return row
}

// handleIndex renders the session book
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListSessions(r.Context(), 200)
	if err != nil {
		a.logger.Error("list sessions: %v", err)
		http.Error(w, "Failed to load sessions", http.StatusInternalServerError)
		return
	}

	rows := make([]sessionRow, 0, len(sessions))
	open, completed, declined := 0, 0, 0
	for _, s := range sessions {
		rows = append(rows, toRow(s))
		switch sessionStatus(s) {
		case "OPEN":
			open++
		case "COMPLETED":
			completed++
		case "DECLINED":
			declined++
		}
	}

	a.renderTemplate(w, "index.html", map[string]interface{}{
		"Rows":      rows,
		"Total":     len(rows),
		"Open":      open,
		"Completed": completed,
		"Declined":  declined,
	})
}

// answeredQuestion pairs a question with its recorded payload for display
type answeredQuestion struct {
	ID   string
	Text string
}

// handleSessionDetail renders one session with its rendered report
func (a *App) handleSessionDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	session, err := a.sessions.GetSession(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		a.logger.Error("get session %s: %v", id, err)
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	answered := make([]answeredQuestion, 0, len(session.State.QuestionsAnswered))
	for _, qid := range session.State.QuestionsAnswered {
		text := ""
		if q, ok := catalog.Get(qid); ok {
			text = q.Text
		}
		answered = append(answered, answeredQuestion{ID: string(qid), Text: text})
	}

	current := ""
	if session.State.CurrentQuestion != nil {
		current = string(*session.State.CurrentQuestion)
	}

	reportHTML := template.HTML(renderMarkdown(buildSessionReport(session)))

	a.renderTemplate(w, "session.html", map[string]interface{}{
		"Row":             toRow(session),
		"Session":         session,
		"State":           session.State.State,
		"Answered":        answered,
		"CurrentQuestion": current,
		"Report":          reportHTML,
	})
}

// handleAnalytics renders the portfolio analytics page
func (a *App) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	report, err := a.portfolioReport(r)
	if err != nil {
		a.logger.Error("analytics: %v", err)
		http.Error(w, "Failed to build analytics", http.StatusInternalServerError)
		return
	}
	a.renderTemplate(w, "analytics.html", report)
}

// handleAnalyticsJSON serves the portfolio report as JSON
func (a *App) handleAnalyticsJSON(w http.ResponseWriter, r *http.Request) {
	report, err := a.portfolioReport(r)
	if err != nil {
		a.logger.Error("analytics: %v", err)
		http.Error(w, "Failed to build analytics", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		a.logger.Error("encode analytics: %v", err)
	}
}

func (a *App) portfolioReport(r *http.Request) (*analytics.Report, error) {
	sessions, err := a.sessions.ListSessions(r.Context(), 0)
	if err != nil {
		return nil, err
	}
	return analytics.BuildReport(sessions)
}

// handleRecompute replays one session and returns to its detail page
func (a *App) handleRecompute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	if _, err := a.sessions.RecomputeSession(r.Context(), id); err != nil {
		if core.IsNotFoundError(err) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		a.logger.Error("recompute session %s: %v", id, err)
		http.Error(w, "Failed to recompute session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/sessions/"+id.String(), http.StatusSeeOther)
}

// handleSessionReport serves the raw markdown underwriting report
func (a *App) handleSessionReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session id", http.StatusBadRequest)
		return
	}

	session, err := a.sessions.GetSession(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		a.logger.Error("get session %s: %v", id, err)
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(buildSessionReport(session)))
}
