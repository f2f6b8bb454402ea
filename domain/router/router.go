// Package router decides which questions a session may be asked next.
// Ordering is mandatory questions first, then the follow-up queue, then a
// single fallback question so progress never stalls.
package router

import (
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
)

// CanAsk reports whether id may be asked right now: the session is open,
// the question is unanswered, its prerequisites are met, and it can still
// worsen the outcome.
func CanAsk(s *applicant.State, id catalog.ID) bool {
	if s.Declined {
		return false
	}
	if catalog.IsMandatory(id) {
		return !s.HasAnswered(id)
	}
	if s.HasAnswered(id) {
		return false
	}
	for _, dep := range catalog.Prerequisites(id) {
		if !s.HasAnswered(dep) {
			return false
		}
	}
	return s.PlanRelevant(id)
}

// Available lists the askable questions: every unanswered mandatory
// question, then askable queued follow-ups, then at most one fallback.
// A declined session has nothing left to ask.
func Available(s *applicant.State) []catalog.ID {
	if s.Declined {
		return nil
	}

	var available []catalog.ID
	seen := make(map[catalog.ID]bool)

	for _, id := range catalog.MandatoryOrder() {
		if !s.HasAnswered(id) && CanAsk(s, id) {
			available = append(available, id)
			seen[id] = true
		}
	}

	for _, id := range s.FollowUpQueue {
		if seen[id] || s.HasAnswered(id) {
			continue
		}
		if CanAsk(s, id) {
			available = append(available, id)
			seen[id] = true
		}
	}

	if fallback, ok := nextFallback(s, seen); ok {
		available = append(available, fallback)
	}

	return available
}

// NextFollowUp returns the first queued follow-up whose prerequisites are
// satisfied.
func NextFollowUp(s *applicant.State) (catalog.ID, bool) {
	for _, id := range s.FollowUpQueue {
		if CanAsk(s, id) {
			return id, true
		}
	}
	return "", false
}

// Next returns the single question to ask now: the head of Available.
func Next(s *applicant.State) (catalog.ID, bool) {
	available := Available(s)
	if len(available) == 0 {
		return "", false
	}
	return available[0], true
}

func nextFallback(s *applicant.State, seen map[catalog.ID]bool) (catalog.ID, bool) {
	for _, id := range catalog.FallbackOrder() {
		if seen[id] {
			continue
		}
		if CanAsk(s, id) {
			return id, true
		}
	}
	return "", false
}
