// Package intake pulls demographics and early lifestyle answers out of
// free-form applicant messages, so a chatty opener like "I'm 30, male,
// non-smoker, 175cm and 75kg" pre-fills the walk before the first question
// is asked.
package intake

import (
	"encoding/json"

	"underwrite/domain/answer"
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/replay"
	"underwrite/domain/router"
	"underwrite/domain/rules"
)

// Application reports what one message changed on the state
type Application struct {
	Answered     []catalog.ID
	Conditions   []string
	Demographics Demographics
}

// Empty reports whether the message changed nothing
func (a Application) Empty() bool {
	return len(a.Answered) == 0 &&
		len(a.Conditions) == 0 &&
		a.Demographics.Sex == nil &&
		a.Demographics.Age == nil &&
		a.Demographics.Height == nil &&
		a.Demographics.Weight == nil
}

// Apply extracts whatever the message volunteers and folds it into the
// state: demographics first, then any answerable questions, then a full
// recompute so eligibility and the cursor reflect the new information.
func Apply(s *applicant.State, message string) (Application, error) {
	extraction := Extract(message, s)

	app := Application{}

	if extraction.Demographics.Age != nil {
		s.SetDemographics(extraction.Demographics.Age, nil, nil)
		app.Demographics.Age = extraction.Demographics.Age
	}
	if extraction.Demographics.Height != nil {
		s.SetDemographics(nil, extraction.Demographics.Height, nil)
		app.Demographics.Height = extraction.Demographics.Height
	}
	if extraction.Demographics.Weight != nil {
		s.SetDemographics(nil, nil, extraction.Demographics.Weight)
		app.Demographics.Weight = extraction.Demographics.Weight
	}

	if extraction.Demographics.Sex != nil && !s.HasAnswered(catalog.Sex) {
		raw, err := json.Marshal(answer.SexAnswer{Sex: *extraction.Demographics.Sex})
		if err != nil {
			return app, err
		}
		if err := s.RecordAnswer(catalog.Sex, raw); err != nil {
			return app, err
		}
		app.Demographics.Sex = extraction.Demographics.Sex
		app.Answered = append(app.Answered, catalog.Sex)
	}

	for _, extracted := range extraction.Answers {
		if s.HasAnswered(extracted.ID) {
			continue
		}
		if !router.CanAsk(s, extracted.ID) {
			continue
		}

		if err := s.RecordAnswer(extracted.ID, extracted.Payload); err != nil {
			return app, err
		}
		rules.Apply(s, rules.Evaluate(s, extracted.ID))

		app.Answered = append(app.Answered, extracted.ID)
	}

	// Mentioned conditions persist on the state; the replay pass below
	// queues their matching questions.
	if len(extraction.Conditions) > 0 {
		s.AddMentionedConditions(extraction.Conditions)
		app.Conditions = extraction.Conditions
	}

	if app.Empty() {
		return app, nil
	}

	replay.Recompute(s)
	return app, nil
}
