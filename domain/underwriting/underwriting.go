// Package underwriting is the engine's external surface. Every mutation of
// a session state goes through one of its operations, which validate the
// request, run the rulebook, and keep the availability cursor and
// completion status consistent.
package underwriting

import (
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/core"
	"underwrite/domain/replay"
	"underwrite/domain/router"
	"underwrite/domain/rules"
)

// Demographics carries the optional demographic updates. Nil fields are
// left untouched.
type Demographics struct {
	Age      *int     `json:"age,omitempty"`
	HeightCM *float64 `json:"height,omitempty"`
	WeightKG *float64 `json:"weight,omitempty"`
}

// AnswerQuestion validates and applies one answer. The order of checks is
// fixed: closed session, unknown question, already answered, prerequisites,
// askability, payload shape. A decline caused by the answer is a normal
// return, not an error; callers read it off the state.
func AnswerQuestion(s *applicant.State, id catalog.ID, payload []byte) error {
	if s.Completed || s.Declined {
		return core.ErrSessionClosed
	}
	if !catalog.Exists(id) {
		return core.NewUnknownQuestionError(string(id))
	}
	if s.HasAnswered(id) {
		return core.ErrAlreadyAnswered
	}
	var missing []string
	for _, dep := range catalog.Prerequisites(id) {
		if !s.HasAnswered(dep) {
			missing = append(missing, string(dep))
		}
	}
	if len(missing) > 0 {
		return core.NewPrerequisiteError(string(id), missing)
	}
	if !router.CanAsk(s, id) {
		return core.ErrNotAskable
	}

	if err := s.RecordAnswer(id, payload); err != nil {
		return err
	}
	rules.Apply(s, rules.Evaluate(s, id))

	advance(s)
	return nil
}

// UpdateDemographics records demographic fields and refreshes derived BMI.
// No rules run; a changed BMI reaches the lattice through the next answer
// or an explicit Recompute.
func UpdateDemographics(s *applicant.State, d Demographics) error {
	if s.Completed || s.Declined {
		return core.ErrSessionClosed
	}
	s.SetDemographics(d.Age, d.HeightCM, d.WeightKG)
	advance(s)
	return nil
}

// AvailableQuestions lists what may be asked now, mandatory first, then
// queued follow-ups, then at most one fallback.
func AvailableQuestions(s *applicant.State) []catalog.ID {
	return router.Available(s)
}

// Recompute replays the whole answer history. It is valid on any session,
// open or closed; a completed session whose history no longer exhausts the
// questionnaire reopens.
func Recompute(s *applicant.State) {
	replay.Recompute(s)
}

// advance moves the cursor to the next askable question, completing the
// session when none remains.
func advance(s *applicant.State) {
	if s.Declined {
		return
	}
	if next, ok := router.Next(s); ok {
		s.CurrentQuestion = &next
		return
	}
	s.CurrentQuestion = nil
	if !s.Completed {
		s.MarkCompleted()
	}
}
