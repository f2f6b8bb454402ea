// Package replay rebuilds a session's eligibility from its answer history.
// It is the single mechanism for retroactive consistency: when a late
// answer changes what an earlier rule would have concluded, replaying the
// history folds every rule over the final answer set so order artifacts
// cannot survive.
package replay

import (
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/router"
	"underwrite/domain/rules"
)

// Recompute resets the lattice bookkeeping and refolds every recorded
// answer, in original answer order, through the evaluator and applier.
// A decline short-circuits the fold; the session is then closed exactly as
// it would have been live. Recompute is idempotent: replaying a replayed
// session changes nothing.
func Recompute(s *applicant.State) {
	order := make([]catalog.ID, len(s.QuestionsAnswered))
	copy(order, s.QuestionsAnswered)

	s.ResetEligibility()

	for _, id := range order {
		if !s.Answers.Has(id) {
			continue
		}
		result := rules.Evaluate(s, id)
		rules.Apply(s, result)
		if s.Declined {
			return
		}
	}

	// Conditions the applicant mentioned stay relevant across replays, so
	// their matching questions rejoin the queue behind rule follow-ups.
	s.EnqueueFollowUps(catalog.QuestionsForConditions(s.MentionedConditions))

	s.NormalizeEligibility()

	// Re-derive the cursor: the head of the availability list, or
	// completion when nothing askable remains.
	if next, ok := router.Next(s); ok {
		s.CurrentQuestion = &next
	} else {
		s.CurrentQuestion = nil
		s.MarkCompleted()
	}
}
