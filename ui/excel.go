package ui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"underwrite/domain/catalog"
	"underwrite/domain/core"
	"underwrite/models"
)

// exportHeaders is the column layout of the session export workbook
var exportHeaders = []string{
	"Session ID", "Status", "Plan", "Plan Floor", "Decline Reason",
	"Age", "Height (cm)", "Weight (kg)", "BMI", "Rate Type",
	"Questions Asked", "Questions Answered", "Started At", "Updated At",
}

// handleExcelExport streams the session book as an xlsx workbook
func (a *App) handleExcelExport(w http.ResponseWriter, r *http.Request) {
	sessions, err := a.sessions.ListSessions(r.Context(), 0)
	if err != nil {
		a.logger.Error("export sessions: %v", err)
		http.Error(w, "Failed to load sessions", http.StatusInternalServerError)
		return
	}

	f, err := buildSessionWorkbook(sessions)
	if err != nil {
		a.logger.Error("build workbook: %v", err)
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("sessions-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := f.Write(w); err != nil {
		a.logger.Error("write workbook: %v", err)
	}

	// An export directory keeps a copy of every book pulled for audit
	if a.exportDir != "" {
		if err := f.SaveAs(filepath.Join(a.exportDir, filename)); err != nil {
			a.logger.Error("save workbook copy: %v", err)
		}
	}
}

// handleSessionExcel streams one session's decision detail as a workbook
func (a *App) handleSessionExcel(w http.ResponseWriter, r *http.Request) {
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

	f, err := buildDecisionWorkbook(session)
	if err != nil {
		a.logger.Error("build decision workbook: %v", err)
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="session-`+session.ID.String()+`.xlsx"`)

	if err := f.Write(w); err != nil {
		a.logger.Error("write decision workbook: %v", err)
	}
}

// buildDecisionWorkbook renders one session: the decision summary on Sheet1
// and the per-question answer trail on an Answers sheet
func buildDecisionWorkbook(session *models.Session) (*excelize.File, error) {
	f := excelize.NewFile()
	state := session.State.State

	summary := [][2]interface{}{
		{"Session ID", session.ID.String()},
		{"Status", sessionStatus(session)},
		{"Plan", sessionPlan(session)},
		{"Plan Floor", string(state.PlanFloor)},
		{"Decline Reason", state.DeclineReason},
		{"Rate Type", string(state.RateType)},
		{"Questions Asked", len(state.QuestionsAsked)},
		{"Questions Answered", len(state.QuestionsAnswered)},
		{"Started At", state.StartedAt.String()},
		{"Updated At", session.UpdatedAt.Format("2006-01-02 15:04:05")},
	}
	if state.Age != nil {
		summary = append(summary, [2]interface{}{"Age", *state.Age})
	}
	if state.BMI != nil {
		summary = append(summary, [2]interface{}{"BMI", *state.BMI})
	}
	for row, pair := range summary {
		keyCell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Sheet1", keyCell, pair[0]); err != nil {
			return nil, err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, row+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Sheet1", valueCell, pair[1]); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Answers"); err != nil {
		return nil, err
	}
	for col, header := range []string{"Question", "Text", "Answer"} {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Answers", cell, header); err != nil {
			return nil, err
		}
	}

	// The answer set marshals keyed by question id, which gives the trail
	// column its JSON without a per-type switch.
	encoded, err := json.Marshal(state.Answers)
	if err != nil {
		return nil, err
	}
	var byID map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &byID); err != nil {
		return nil, err
	}

	for i, qid := range state.QuestionsAnswered {
		text := ""
		if q, ok := catalog.Get(qid); ok {
			text = q.Text
		}
		values := []interface{}{string(qid), text, string(byID[string(qid)])}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue("Answers", cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// buildSessionWorkbook renders sessions onto Sheet1, one row each
func buildSessionWorkbook(sessions []*models.Session) (*excelize.File, error) {
	f := excelize.NewFile()

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue("Sheet1", cell, header); err != nil {
			return nil, err
		}
	}

	for i, session := range sessions {
		state := session.State.State
		values := []interface{}{
			session.ID.String(),
			sessionStatus(session),
			sessionPlan(session),
			string(state.PlanFloor),
			state.DeclineReason,
			nil, nil, nil, nil,
			string(state.RateType),
			len(state.QuestionsAsked),
			len(state.QuestionsAnswered),
			state.StartedAt.String(),
			session.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if state.Age != nil {
			values[5] = *state.Age
		}
		if state.HeightCM != nil {
			values[6] = *state.HeightCM
		}
		if state.WeightKG != nil {
			values[7] = *state.WeightKG
		}
		if state.BMI != nil {
			values[8] = *state.BMI
		}

		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
