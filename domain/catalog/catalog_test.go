package catalog

import (
	"testing"

	"underwrite/domain/tier"
)

func TestMandatoryOrder(t *testing.T) {
	got := MandatoryOrder()
	want := []ID{Sex, Tobacco, BodyMass}
	if len(got) != len(want) {
		t.Fatalf("mandatory order length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mandatory[%d] = %s, want %s", i, got[i], want[i])
		}
		if !IsMandatory(got[i]) {
			t.Errorf("%s not flagged mandatory", got[i])
		}
	}
}

func TestFallbackOrderCoversNonMandatory(t *testing.T) {
	got := FallbackOrder()
	if len(got) != len(questions)-len(mandatoryOrder) {
		t.Fatalf("fallback order has %d entries, want %d", len(got), len(questions)-len(mandatoryOrder))
	}
	for _, id := range got {
		if IsMandatory(id) {
			t.Errorf("mandatory question %s in fallback order", id)
		}
		if !Exists(id) {
			t.Errorf("fallback order names unknown question %s", id)
		}
	}
	if got[0] != Occupation || got[len(got)-1] != HighRiskTravel {
		t.Errorf("fallback order = %v, want q3..q25", got)
	}
}

func TestPrerequisitesExist(t *testing.T) {
	for id, q := range questions {
		for _, p := range q.Prerequisites {
			if !Exists(p) {
				t.Errorf("%s prerequisite %s not in catalog", id, p)
			}
		}
		for _, c := range q.CrossChecks {
			if !Exists(c) {
				t.Errorf("%s cross-check %s not in catalog", id, c)
			}
		}
		for _, f := range q.FollowUps {
			if !Exists(f) {
				t.Errorf("%s follow-up %s not in catalog", id, f)
			}
		}
	}
}

func TestWorstOutcomes(t *testing.T) {
	declines := []ID{IllicitDrugs, Treatment, Criminal, Cardiovascular}
	for _, id := range declines {
		o := WorstOutcome(id)
		if o == nil || *o != tier.Decline {
			t.Errorf("%s worst outcome = %v, want DECLINE", id, o)
		}
	}
	for _, id := range []ID{Sex, Tobacco} {
		if WorstOutcome(id) != nil {
			t.Errorf("%s should have no worst outcome", id)
		}
	}
	if o := WorstOutcome(Endocrine); o == nil || *o != tier.Outcome(tier.Signature) {
		t.Errorf("q20 worst outcome = %v, want Signature", o)
	}
	if WorstOutcome(ID("nope")) != nil {
		t.Error("unknown id should have nil worst outcome")
	}
}

func TestPrerequisiteGraphIsAcyclic(t *testing.T) {
	const (
		white = iota
		gray
		black
	)
	color := make(map[ID]int)
	var visit func(ID) bool
	visit = func(id ID) bool {
		switch color[id] {
		case gray:
			return false
		case black:
			return true
		}
		color[id] = gray
		for _, p := range Prerequisites(id) {
			if !visit(p) {
				return false
			}
		}
		color[id] = black
		return true
	}
	for id := range questions {
		if !visit(id) {
			t.Fatalf("prerequisite cycle through %s", id)
		}
	}
}

func TestQuestionsForCondition(t *testing.T) {
	cases := []struct {
		condition string
		want      ID
	}{
		{"type 2 diabetes", Diabetes},
		{"heart attack", Cardiovascular},
		{"sleep apnea", Respiratory},
		{"DUI", DUI},
		{"Skydiving", ExtremeSports},
	}
	for _, tc := range cases {
		got := QuestionsForCondition(tc.condition)
		found := false
		for _, id := range got {
			if id == tc.want {
				found = true
			}
		}
		if !found {
			t.Errorf("QuestionsForCondition(%q) = %v, missing %s", tc.condition, got, tc.want)
		}
	}
	if QuestionsForCondition("  ") != nil {
		t.Error("blank condition should match nothing")
	}
}

func TestConditionsInText(t *testing.T) {
	got := ConditionsInText("I was diagnosed with type 2 diabetes last year and I have asthma.")

	want := map[string]bool{"diabetes": true, "type 2 diabetes": true, "asthma": true}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected condition %q", c)
		}
		delete(want, c)
	}
	for c := range want {
		t.Errorf("condition %q not detected", c)
	}
}

func TestConditionsInTextWholeWords(t *testing.T) {
	// "ms" is a topic keyword but must not fire inside other words
	if got := ConditionsInText("the forms arrived yesterday"); got != nil {
		t.Errorf("ConditionsInText = %v, want nothing", got)
	}
	if got := ConditionsInText("I have MS."); len(got) != 1 || got[0] != "ms" {
		t.Errorf("ConditionsInText = %v, want [ms]", got)
	}
}

func TestQuestionsForConditionsDedupes(t *testing.T) {
	got := QuestionsForConditions([]string{"diabetes", "pre-diabetes", "insulin"})
	count := 0
	for _, id := range got {
		if id == Diabetes {
			count++
		}
	}
	if count != 1 {
		t.Errorf("q12 appears %d times, want 1", count)
	}
}
