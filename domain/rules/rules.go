// Package rules evaluates each answered question against the underwriting
// rulebook. Evaluation reads the full session state, because several rules
// combine answers across questions, and yields a Result the applier folds
// back into the state. Missing cross-question answers count as their zero
// values so an early answer never tightens on speculation.
package rules

import (
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/tier"
)

// Result is one rule evaluation outcome. At most one of Decline and Filter
// is meaningful; follow-ups ride along either way.
type Result struct {
	// Filter, when set, removes tiers better than it from eligibility and
	// raises the floor to it.
	Filter *tier.Tier
	// Decline ends the session with DeclineReason.
	Decline       bool
	DeclineReason string
	// FollowUps are queued for later asking.
	FollowUps []catalog.ID
}

func filter(t tier.Tier) Result { return Result{Filter: &t} }

func filterWith(t tier.Tier, followUps []catalog.ID) Result {
	return Result{Filter: &t, FollowUps: followUps}
}

func decline(reason string) Result {
	return Result{Decline: true, DeclineReason: reason}
}

// Evaluate runs the rule for id against the recorded answer in s. Questions
// without a rule (sex, unknown ids) return the zero Result.
func Evaluate(s *applicant.State, id catalog.ID) Result {
	switch id {
	case catalog.Tobacco:
		return evaluateTobacco(s)
	case catalog.BodyMass:
		return evaluateBodyMass(s)
	case catalog.Occupation:
		return evaluateOccupation(s)
	case catalog.Alcohol:
		return evaluateAlcohol(s)
	case catalog.Marijuana:
		return evaluateMarijuana(s)
	case catalog.IllicitDrugs:
		return evaluateIllicitDrugs(s)
	case catalog.Treatment:
		return evaluateTreatment(s)
	case catalog.DUI:
		return evaluateDUI(s)
	case catalog.Criminal:
		return evaluateCriminal(s)
	case catalog.PendingMedical:
		return evaluatePendingMedical(s)
	case catalog.Cardiovascular:
		return evaluateCardiovascular(s)
	case catalog.Diabetes:
		return evaluateDiabetes(s)
	case catalog.Cancer:
		return evaluateCancer(s)
	case catalog.ImmuneDisorder:
		return evaluateImmuneDisorder(s)
	case catalog.Respiratory:
		return evaluateRespiratory(s)
	case catalog.Genitourinary:
		return evaluateGenitourinary(s)
	case catalog.Neurological:
		return evaluateNeurological(s)
	case catalog.MentalHealth:
		return evaluateMentalHealth(s)
	case catalog.Digestive:
		return evaluateDigestive(s)
	case catalog.Endocrine:
		return evaluateEndocrine(s)
	case catalog.Neuromuscular:
		return evaluateNeuromuscular(s)
	case catalog.Arthritis:
		return evaluateArthritis(s)
	case catalog.ExtremeSports:
		return evaluateExtremeSports(s)
	case catalog.FamilyHistory:
		return evaluateFamilyHistory(s)
	case catalog.HighRiskTravel:
		return evaluateTravel(s)
	}
	return Result{}
}

// Apply folds a rule result into the session state. Declines absorb; plan
// filters narrow eligibility and tighten the floor; follow-ups enqueue.
// The recommendation is refreshed last so it stays clamped to the floor.
func Apply(s *applicant.State, r Result) {
	if r.Decline {
		s.ApplyDecline(r.DeclineReason)
		return
	}
	if r.Filter != nil {
		s.FilterEligible(*r.Filter)
		s.TightenFloor(tier.Outcome(*r.Filter))
	}
	if len(r.FollowUps) > 0 {
		s.EnqueueFollowUps(r.FollowUps)
	}
	s.UpdateRecommended()
}

// Shared cross-question reads. All tolerate missing answers.

func hasAnyMentalHealth(s *applicant.State) bool {
	return s.Answers.HasSevereMentalHealth() || s.Answers.HasModerateMentalHealth()
}

// drugUseWithoutDUIOrHeavyDrinking mirrors the q6 combination rule: yes to
// illicit drugs combined with either no DUI on record or 21+ drinks a week.
func drugUseWithoutDUIOrHeavyDrinking(s *applicant.State) bool {
	if !s.Answers.UsedIllicitDrugs() {
		return false
	}
	noDUI := s.Answers.Q8 == nil || !s.Answers.Q8.DUI
	return noDUI || s.Answers.DrinksPerWeek() >= alcoholHigh
}

func duiOrHeavyDrinking(s *applicant.State) bool {
	return s.Answers.HasDUI() || s.Answers.DrinksPerWeek() >= alcoholHigh
}

func bmi(s *applicant.State) float64 {
	if s.BMI == nil {
		return 0
	}
	return *s.BMI
}

func age(s *applicant.State) int {
	if s.Age == nil {
		return 0
	}
	return *s.Age
}
