// Package catalog holds the static underwriting question metadata: which
// questions exist, which are mandatory, what must be answered before them,
// how bad each one's worst case can get, and which follow-ups an affirmative
// answer schedules. The tables are pure data; behavior lives in the rules,
// router and replay packages.
package catalog

import (
	"underwrite/domain/tier"
)

// ID identifies a question in the catalog.
type ID string

const (
	Sex            ID = "sex" // demographic gate, no plan impact
	Tobacco        ID = "q1"
	BodyMass       ID = "q2"
	Occupation     ID = "q3"
	Alcohol        ID = "q4"
	Marijuana      ID = "q5"
	IllicitDrugs   ID = "q6"
	Treatment      ID = "q7"
	DUI            ID = "q8"
	Criminal       ID = "q9"
	PendingMedical ID = "q10"
	Cardiovascular ID = "q11"
	Diabetes       ID = "q12"
	Cancer         ID = "q13"
	ImmuneDisorder ID = "q14"
	Respiratory    ID = "q15"
	Genitourinary  ID = "q16"
	Neurological   ID = "q17"
	MentalHealth   ID = "q18"
	Digestive      ID = "q19"
	Endocrine      ID = "q20"
	Neuromuscular  ID = "q21"
	Arthritis      ID = "q22"
	ExtremeSports  ID = "q23"
	FamilyHistory  ID = "q24"
	HighRiskTravel ID = "q25"
)

func (id ID) String() string { return string(id) }

// Question is one immutable catalog entry.
type Question struct {
	ID        ID
	Mandatory bool
	// Prerequisites must all be answered before this question may be asked.
	Prerequisites []ID
	// WorstOutcome is the worst result this question alone can force.
	// nil means the question can never move the outcome.
	WorstOutcome *tier.Outcome
	// CrossChecks lists non-prerequisite questions whose answers this
	// question's rule reads. While any of them is unanswered the question
	// is treated as decline-capable so it is never pruned early. During
	// evaluation missing cross-check answers count as their zero values.
	CrossChecks []ID
	// FollowUps are scheduled when the rule asks for them.
	FollowUps []ID
	// Topics are keywords the intake layer matches mentioned conditions
	// against.
	Topics []string
	// Text is the canonical wording handed to the conversational layer.
	Text string
}

func outcome(o tier.Outcome) *tier.Outcome { return &o }

// mandatoryOrder is the fixed order mandatory questions are offered in.
var mandatoryOrder = []ID{Sex, Tobacco, BodyMass}

// fallbackOrder is the deterministic order used to pick a single fallback
// question when neither mandatory nor queued questions remain.
var fallbackOrder = []ID{
	Occupation, Alcohol, Marijuana, IllicitDrugs, Treatment, DUI, Criminal,
	PendingMedical, Cardiovascular, Diabetes, Cancer, ImmuneDisorder,
	Respiratory, Genitourinary, Neurological, MentalHealth, Digestive,
	Endocrine, Neuromuscular, Arthritis, ExtremeSports, FamilyHistory,
	HighRiskTravel,
}

// MandatoryOrder returns the mandatory questions in ask order.
func MandatoryOrder() []ID {
	out := make([]ID, len(mandatoryOrder))
	copy(out, mandatoryOrder)
	return out
}

// FallbackOrder returns the non-mandatory questions in fallback ask order.
func FallbackOrder() []ID {
	out := make([]ID, len(fallbackOrder))
	copy(out, fallbackOrder)
	return out
}

// Get looks up a question definition.
func Get(id ID) (Question, bool) {
	q, ok := questions[id]
	return q, ok
}

// Exists reports whether id names a catalog entry.
func Exists(id ID) bool {
	_, ok := questions[id]
	return ok
}

// IsMandatory reports whether id is one of the always-asked questions.
func IsMandatory(id ID) bool {
	q, ok := questions[id]
	return ok && q.Mandatory
}

// WorstOutcome returns the static worst-case outcome for id, or nil when
// the question cannot affect the result (or is unknown).
func WorstOutcome(id ID) *tier.Outcome {
	q, ok := questions[id]
	if !ok {
		return nil
	}
	return q.WorstOutcome
}

// Prerequisites returns the prerequisite ids for id.
func Prerequisites(id ID) []ID {
	return questions[id].Prerequisites
}

// CrossChecks returns the non-prerequisite cross-question reads for id.
func CrossChecks(id ID) []ID {
	return questions[id].CrossChecks
}

// FollowUps returns the follow-up ids a positive answer to id may schedule.
func FollowUps(id ID) []ID {
	return questions[id].FollowUps
}
