// Package applicant holds the mutable underwriting session state: the
// applicant's demographics, recorded answers, eligibility lattice position
// and question bookkeeping. State transitions here are pure; rule
// evaluation lives in the rules package and ordering in the router.
package applicant

import (
	"math"
	"strings"

	"underwrite/domain/answer"
	"underwrite/domain/catalog"
	"underwrite/domain/core"
	"underwrite/domain/tier"
)

// RateType distinguishes smoker from non-smoker pricing.
type RateType string

const (
	Smoker    RateType = "SMOKER"
	NonSmoker RateType = "NON_SMOKER"
)

// State is the full per-applicant session state. It serializes as a single
// JSON document, which is also how it is persisted.
type State struct {
	Age      *int     `json:"age,omitempty"`
	HeightCM *float64 `json:"height,omitempty"`
	WeightKG *float64 `json:"weight,omitempty"`
	BMI      *float64 `json:"bmi,omitempty"`

	RateType RateType `json:"rateType,omitempty"`

	Answers answer.Answers `json:"answers"`

	EligiblePlans   []tier.Tier   `json:"eligiblePlans"`
	RecommendedPlan *tier.Outcome `json:"recommendedPlan,omitempty"`
	CurrentPlan     *tier.Outcome `json:"currentPlan,omitempty"`
	PlanFloor       tier.Outcome  `json:"planFloor"`
	Declined        bool          `json:"declined"`
	DeclineReason   string        `json:"declineReason,omitempty"`

	QuestionsAsked    []catalog.ID `json:"questionsAsked"`
	QuestionsAnswered []catalog.ID `json:"questionsAnswered"`
	FollowUpQueue     []catalog.ID `json:"followUpQueue"`
	CurrentQuestion   *catalog.ID  `json:"currentQuestion,omitempty"`
	Completed         bool         `json:"completed"`

	MentionedConditions []string `json:"mentionedConditions,omitempty"`

	StartedAt   core.Timestamp  `json:"startedAt"`
	CompletedAt *core.Timestamp `json:"completedAt,omitempty"`
}

// New returns a fresh session state with the full lattice eligible and the
// floor at the best tier.
func New() *State {
	all := tier.All()
	best := tier.Outcome(tier.BestTier())
	return &State{
		EligiblePlans:     all,
		RecommendedPlan:   &best,
		PlanFloor:         tier.Outcome(tier.BestTier()),
		QuestionsAsked:    []catalog.ID{},
		QuestionsAnswered: []catalog.ID{},
		FollowUpQueue:     []catalog.ID{},
		StartedAt:         core.Now(),
	}
}

// CalculateBMI computes body mass index from height in cm and weight in kg,
// rounded to one decimal place.
func CalculateBMI(heightCM, weightKG float64) float64 {
	m := heightCM / 100
	return math.Round(weightKG/(m*m)*10) / 10
}

// SetDemographics records whichever demographic fields are present and
// recalculates BMI when both height and weight are known. Demographics
// never run rules; only answering q2 moves the lattice.
func (s *State) SetDemographics(age *int, heightCM, weightKG *float64) {
	if age != nil {
		s.Age = age
	}
	if heightCM != nil {
		s.HeightCM = heightCM
	}
	if weightKG != nil {
		s.WeightKG = weightKG
	}
	if s.HeightCM != nil && s.WeightKG != nil && *s.HeightCM > 0 {
		bmi := CalculateBMI(*s.HeightCM, *s.WeightKG)
		s.BMI = &bmi
	}
}

// AddMentionedConditions folds newly detected conditions into the session,
// lowercased and deduplicated.
func (s *State) AddMentionedConditions(conditions []string) {
	seen := make(map[string]bool, len(s.MentionedConditions))
	for _, c := range s.MentionedConditions {
		seen[c] = true
	}
	for _, c := range conditions {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		s.MentionedConditions = append(s.MentionedConditions, c)
		seen[c] = true
	}
}

// AgeAtLeast reports whether the applicant's age is known and >= n.
func (s *State) AgeAtLeast(n int) bool {
	return s.Age != nil && *s.Age >= n
}

// IsSmoker reports smoker rating.
func (s *State) IsSmoker() bool { return s.RateType == Smoker }

// IsFemale reports whether the sex answer is recorded as female.
func (s *State) IsFemale() bool {
	return s.Answers.Sex != nil && s.Answers.Sex.Sex == answer.Female
}

// HasAnswered reports whether id is in the answered log.
func (s *State) HasAnswered(id catalog.ID) bool {
	for _, a := range s.QuestionsAnswered {
		if a == id {
			return true
		}
	}
	return false
}

// RecordAnswer validates and stores the payload for id, then performs the
// answer bookkeeping: the answered log grows, the follow-up queue drops the
// question, the pinned current question clears, and the derived fields
// (BMI, rate type) refresh. Rule evaluation is the caller's next step.
func (s *State) RecordAnswer(id catalog.ID, raw []byte) error {
	if err := s.Answers.Record(id, raw); err != nil {
		return err
	}
	if !s.HasAnswered(id) {
		s.QuestionsAnswered = append(s.QuestionsAnswered, id)
	}
	s.MarkAsked(id)
	s.RemoveFromQueue(id)
	s.CurrentQuestion = nil

	switch id {
	case catalog.BodyMass:
		if s.Answers.Q2 != nil && s.Answers.Q2.BMI > 0 {
			bmi := s.Answers.Q2.BMI
			s.BMI = &bmi
		}
	case catalog.Tobacco:
		if s.Answers.Q1 != nil && s.Answers.Q1.Tobacco {
			s.RateType = Smoker
		} else {
			s.RateType = NonSmoker
		}
	case catalog.Marijuana:
		if s.Answers.Q5 != nil && s.Answers.Q5.MixedWithTobacco != nil && *s.Answers.Q5.MixedWithTobacco {
			s.RateType = Smoker
		}
	}
	return nil
}

// MarkAsked appends id to the asked log if absent.
func (s *State) MarkAsked(id catalog.ID) {
	for _, a := range s.QuestionsAsked {
		if a == id {
			return
		}
	}
	s.QuestionsAsked = append(s.QuestionsAsked, id)
}

// RemoveFromQueue drops id from the follow-up queue.
func (s *State) RemoveFromQueue(id catalog.ID) {
	out := s.FollowUpQueue[:0]
	for _, q := range s.FollowUpQueue {
		if q != id {
			out = append(out, q)
		}
	}
	s.FollowUpQueue = out
}

// EnqueueFollowUps appends follow-ups that are unanswered, not already
// queued, and still able to worsen the outcome. Order is preserved.
func (s *State) EnqueueFollowUps(ids []catalog.ID) {
	queued := make(map[catalog.ID]bool, len(s.FollowUpQueue))
	for _, q := range s.FollowUpQueue {
		queued[q] = true
	}
	for _, id := range ids {
		if id == "" || queued[id] || s.HasAnswered(id) {
			continue
		}
		if !s.PlanRelevant(id) {
			continue
		}
		s.FollowUpQueue = append(s.FollowUpQueue, id)
		queued[id] = true
	}
}

// effectiveBaseline is the plan the applicant would land on if nothing else
// worsened: the floor when set, else decline, else the best eligible tier.
func (s *State) effectiveBaseline() (tier.Outcome, bool) {
	if s.PlanFloor != "" {
		return s.PlanFloor, true
	}
	if s.Declined {
		return tier.Decline, true
	}
	if best, ok := tier.Best(s.EligiblePlans); ok {
		return tier.Outcome(best), true
	}
	if s.RecommendedPlan != nil {
		return *s.RecommendedPlan, true
	}
	return "", false
}

// PlanRelevant reports whether answering id could still worsen the result.
// Mandatory questions are always relevant; a declined session makes every
// remaining question moot.
func (s *State) PlanRelevant(id catalog.ID) bool {
	if catalog.IsMandatory(id) {
		return true
	}
	if s.Declined {
		return false
	}
	q, ok := catalog.Get(id)
	if !ok {
		// No metadata, err on the side of asking.
		return true
	}
	if q.WorstOutcome == nil {
		return false
	}
	impact := *q.WorstOutcome
	// A rule that reads other questions' answers cannot be trusted to the
	// static worst case until those answers exist.
	for _, cc := range q.CrossChecks {
		if !s.HasAnswered(cc) {
			impact = tier.Decline
			break
		}
	}

	baseline, ok := s.effectiveBaseline()
	if !ok {
		return true
	}
	if baseline == tier.Decline {
		return false
	}
	if baseline == tier.Outcome(tier.WorstTier()) {
		return impact == tier.Decline
	}
	if impact == tier.Decline {
		return true
	}
	return tier.Rank(impact) > tier.Rank(baseline)
}

// TightenFloor raises the floor to o when o is strictly worse. The floor
// never relaxes.
func (s *State) TightenFloor(o tier.Outcome) {
	if o == "" {
		return
	}
	current := s.PlanFloor
	if current == "" {
		current = tier.Outcome(tier.BestTier())
	}
	s.PlanFloor = tier.Tighten(current, o)
}

// FilterEligible removes tiers better than min from the eligible set.
func (s *State) FilterEligible(min tier.Tier) {
	s.EligiblePlans = tier.FilterAtOrWorse(s.EligiblePlans, min)
}

// UpdateRecommended recomputes the recommended plan as the best eligible
// tier clamped to the floor.
func (s *State) UpdateRecommended() {
	eligible := s.EligiblePlans
	if s.PlanFloor != "" && s.PlanFloor != tier.Decline {
		eligible = tier.FilterAtOrWorse(eligible, tier.Tier(s.PlanFloor))
	}
	best, ok := tier.Best(eligible)
	if !ok {
		s.RecommendedPlan = nil
		return
	}
	recommended := tier.Outcome(best)
	if s.PlanFloor != "" && s.PlanFloor != tier.Decline && tier.Rank(recommended) < tier.Rank(s.PlanFloor) {
		recommended = s.PlanFloor
	}
	s.RecommendedPlan = &recommended
}

// NormalizeEligibility reconciles the eligible set and recommendation with
// the floor after any state change. A declined session is left alone.
func (s *State) NormalizeEligibility() {
	if s.Declined {
		return
	}
	if s.PlanFloor != "" && s.PlanFloor != tier.Decline {
		s.FilterEligible(tier.Tier(s.PlanFloor))
	}
	s.UpdateRecommended()
}

// ApplyDecline moves the session to the absorbing declined outcome.
func (s *State) ApplyDecline(reason string) {
	now := core.Now()
	decline := tier.Decline
	s.Declined = true
	s.DeclineReason = reason
	s.EligiblePlans = []tier.Tier{}
	s.FollowUpQueue = []catalog.ID{}
	s.CurrentPlan = &decline
	s.RecommendedPlan = &decline
	s.PlanFloor = tier.Decline
	s.Completed = true
	s.CompletedAt = &now
}

// MarkCompleted finalizes a non-declined session. The current plan lands on
// the floor when one was set, otherwise the best still-eligible tier.
func (s *State) MarkCompleted() {
	now := core.Now()
	s.Completed = true
	s.CompletedAt = &now

	var best *tier.Outcome
	if b, ok := tier.Best(s.EligiblePlans); ok {
		o := tier.Outcome(b)
		best = &o
	}
	if s.PlanFloor != "" {
		floor := s.PlanFloor
		s.CurrentPlan = &floor
	} else {
		s.CurrentPlan = best
		if best != nil {
			s.PlanFloor = *best
		}
	}
	s.RecommendedPlan = best
}

// ResetEligibility returns the lattice bookkeeping to its initial position
// while keeping answers, demographics and the asked log. Replay uses this
// before refolding the answer history.
func (s *State) ResetEligibility() {
	all := tier.All()
	best := tier.Outcome(tier.BestTier())
	s.EligiblePlans = all
	s.RecommendedPlan = &best
	s.PlanFloor = tier.Outcome(tier.BestTier())
	s.CurrentPlan = nil
	s.CurrentQuestion = nil
	s.Declined = false
	s.DeclineReason = ""
	s.FollowUpQueue = []catalog.ID{}
	s.Completed = false
	s.CompletedAt = nil
}
