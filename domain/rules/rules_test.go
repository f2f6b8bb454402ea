package rules

import (
	"fmt"
	"testing"

	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/tier"
)

func mustAnswer(t *testing.T, s *applicant.State, id catalog.ID, raw string) {
	t.Helper()
	if err := s.RecordAnswer(id, []byte(raw)); err != nil {
		t.Fatalf("answer %s: %v", id, err)
	}
}

// answerAndApply mimics one engine step: record, evaluate, apply.
func answerAndApply(t *testing.T, s *applicant.State, id catalog.ID, raw string) Result {
	t.Helper()
	mustAnswer(t, s, id, raw)
	r := Evaluate(s, id)
	Apply(s, r)
	return r
}

func wantFilter(t *testing.T, r Result, want tier.Tier) {
	t.Helper()
	if r.Decline {
		t.Fatalf("declined (%s), want filter %s", r.DeclineReason, want)
	}
	if r.Filter == nil {
		t.Fatalf("no filter, want %s", want)
	}
	if *r.Filter != want {
		t.Fatalf("filter = %s, want %s", *r.Filter, want)
	}
}

func TestBodyMassBands(t *testing.T) {
	cases := []struct {
		bmi  float64
		want tier.Tier
	}{
		{16.5, tier.GuaranteedPlus},
		{17.0, tier.GuaranteedPlus},
		{24.5, tier.Day1},
		{38.0, tier.Day1},
		{38.1, tier.Day1Plus},
		{40.0, tier.Day1Plus},
		{40.1, tier.Signature},
		{43.0, tier.Signature},
		{43.1, tier.DeferredPlus},
		{44.0, tier.DeferredPlus},
		{44.1, tier.GuaranteedPlus},
		{52.3, tier.GuaranteedPlus},
	}
	for _, tc := range cases {
		s := applicant.New()
		mustAnswer(t, s, catalog.BodyMass, fmt.Sprintf(`{"bmi":%.1f}`, tc.bmi))
		wantFilter(t, Evaluate(s, catalog.BodyMass), tc.want)
	}
}

func TestAverageBuildStaysDay1(t *testing.T) {
	s := applicant.New()
	h, w := 175.0, 75.0
	s.SetDemographics(nil, &h, &w)
	if s.BMI == nil || *s.BMI != 24.5 {
		t.Fatalf("BMI = %v, want 24.5", s.BMI)
	}
	r := answerAndApply(t, s, catalog.BodyMass, `{"bmi":24.5}`)
	wantFilter(t, r, tier.Day1)
	if s.PlanFloor != tier.Outcome(tier.Day1) {
		t.Errorf("floor = %s, want Day1", s.PlanFloor)
	}
}

func TestWeightLossOverridesBand(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":24.5,"weightLoss":true}`)
	wantFilter(t, Evaluate(s, catalog.BodyMass), tier.DeferredPlus)
}

func TestAlcoholBands(t *testing.T) {
	cases := []struct {
		drinks int
		want   tier.Tier
	}{
		{5, tier.Day1},
		{13, tier.Day1},
		{14, tier.Day1Plus},
		{15, tier.Day1Plus},
		{20, tier.Day1Plus},
		{21, tier.Signature},
		{25, tier.Signature},
		{28, tier.Signature},
		{29, tier.GuaranteedPlus},
	}
	for _, tc := range cases {
		s := applicant.New()
		mustAnswer(t, s, catalog.Alcohol, fmt.Sprintf(`{"alcohol":true,"drinksPerWeek":%d}`, tc.drinks))
		r := Evaluate(s, catalog.Alcohol)
		wantFilter(t, r, tc.want)
		if len(r.FollowUps) == 0 {
			t.Errorf("drinks=%d: drinking must queue follow-ups", tc.drinks)
		}
	}
}

func TestAlcoholHighBandGradedByMentalHealth(t *testing.T) {
	// 21-28 drinks with severe mental health lands at Guaranteed+.
	s := applicant.New()
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":true}`)
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":true,"drinksPerWeek":25}`)
	wantFilter(t, Evaluate(s, catalog.Alcohol), tier.GuaranteedPlus)

	// Moderate only lands at Deferred+.
	s = applicant.New()
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":false,"moderateMentalHealth":true}`)
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":true,"drinksPerWeek":25}`)
	wantFilter(t, Evaluate(s, catalog.Alcohol), tier.DeferredPlus)
}

func TestNoAlcoholStaysDay1(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	r := Evaluate(s, catalog.Alcohol)
	wantFilter(t, r, tier.Day1)
	if len(r.FollowUps) != 0 {
		t.Error("no drinking, no follow-ups")
	}
}

func TestMarijuanaFrequencyAndAge(t *testing.T) {
	cases := []struct {
		age, freq int
		want      tier.Tier
	}{
		{22, 2, tier.Day1Plus},
		{30, 2, tier.Day1},
		{22, 5, tier.Signature},
		{30, 5, tier.Day1Plus},
		{22, 10, tier.DeferredPlus},
		{30, 10, tier.Signature},
		{30, 15, tier.GuaranteedPlus},
	}
	for _, tc := range cases {
		s := applicant.New()
		a := tc.age
		s.SetDemographics(&a, nil, nil)
		mustAnswer(t, s, catalog.Marijuana, fmt.Sprintf(`{"marijuana":true,"frequencyPerWeek":%d}`, tc.freq))
		wantFilter(t, Evaluate(s, catalog.Marijuana), tc.want)
	}
}

func TestIllicitDrugDeclines(t *testing.T) {
	// Use within a year declines regardless of anything else.
	s := applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":true,"lastUseYears":0.5}`)
	r := Evaluate(s, catalog.IllicitDrugs)
	if !r.Decline || r.DeclineReason != ReasonRecentDrugUse {
		t.Fatalf("got %+v, want recent-use decline", r)
	}

	// 1-2 years with a mental health condition declines.
	s = applicant.New()
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":true}`)
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":true,"lastUseYears":1.5}`)
	r = Evaluate(s, catalog.IllicitDrugs)
	if !r.Decline || r.DeclineReason != ReasonDrugsWithMentalHealth {
		t.Fatalf("got %+v, want mental-health decline", r)
	}

	// 1-2 years with 21+ drinks declines.
	s = applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":true,"drinksPerWeek":22}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":true,"lastUseYears":1.5}`)
	r = Evaluate(s, catalog.IllicitDrugs)
	if !r.Decline || r.DeclineReason != ReasonDrugsWithAlcohol {
		t.Fatalf("got %+v, want alcohol-combination decline", r)
	}

	// 1-2 years clean otherwise is Guaranteed+.
	s = applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":true,"lastUseYears":1.5}`)
	wantFilter(t, Evaluate(s, catalog.IllicitDrugs), tier.GuaranteedPlus)
}

func TestIllicitDrugOlderUse(t *testing.T) {
	// 5-10 years, experimental single use stays Day1.
	s := applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":true,"lastUseYears":7,"onlyExperimental":true,"totalUses":1}`)
	wantFilter(t, Evaluate(s, catalog.IllicitDrugs), tier.Day1)

	// 10+ years is Day1.
	s = applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":true,"lastUseYears":12}`)
	wantFilter(t, Evaluate(s, catalog.IllicitDrugs), tier.Day1)
}

func TestTreatmentDeclines(t *testing.T) {
	// Alcohol-only treatment while still drinking declines.
	s := applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":true,"drinksPerWeek":5}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":false}`)
	mustAnswer(t, s, catalog.Treatment, `{"treatment":true,"alcoholOnly":true,"lastTreatmentYears":3}`)
	r := Evaluate(s, catalog.Treatment)
	if !r.Decline || r.DeclineReason != ReasonAlcoholTreatment {
		t.Fatalf("got %+v, want alcohol-treatment decline", r)
	}

	// Drug treatment with admitted drug use declines.
	s = applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":true,"lastUseYears":6}`)
	mustAnswer(t, s, catalog.Treatment, `{"treatment":true,"lastTreatmentYears":3}`)
	r = Evaluate(s, catalog.Treatment)
	if !r.Decline || r.DeclineReason != ReasonDrugTreatment {
		t.Fatalf("got %+v, want drug-treatment decline", r)
	}

	// Clean history grades by years since treatment.
	s = applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":false}`)
	mustAnswer(t, s, catalog.IllicitDrugs, `{"illicitDrugs":false}`)
	mustAnswer(t, s, catalog.Treatment, `{"treatment":true,"alcoholOnly":true,"lastTreatmentYears":6}`)
	wantFilter(t, Evaluate(s, catalog.Treatment), tier.Day1Plus)
}

func TestDUIOverSeventyOne(t *testing.T) {
	s := applicant.New()
	a := 75
	s.SetDemographics(&a, nil, nil)
	r := answerAndApply(t, s, catalog.DUI, `{"dui":true}`)
	wantFilter(t, r, tier.GuaranteedPlus)
	if s.PlanFloor != tier.Outcome(tier.GuaranteedPlus) {
		t.Errorf("floor = %s, want Guaranteed+", s.PlanFloor)
	}
}

func TestCriminalDeclines(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.Criminal, `{"criminal":true,"multipleCharges":true}`)
	r := Evaluate(s, catalog.Criminal)
	if !r.Decline || r.DeclineReason != ReasonMultipleCharges {
		t.Fatalf("got %+v, want multiple-charges decline", r)
	}

	s = applicant.New()
	mustAnswer(t, s, catalog.Criminal, `{"criminal":true,"incarcerated6MonthsPlus":true}`)
	r = Evaluate(s, catalog.Criminal)
	if !r.Decline || r.DeclineReason != ReasonRecentIncarceration {
		t.Fatalf("got %+v, want incarceration decline", r)
	}

	// Single charge graded by years since sentence completion.
	cases := []struct {
		years string
		want  tier.Tier
	}{
		{"1", tier.GuaranteedPlus},
		{"4", tier.DeferredPlus},
		{"5", tier.DeferredPlus},
		{"7", tier.Signature},
	}
	for _, tc := range cases {
		s = applicant.New()
		mustAnswer(t, s, catalog.Criminal, `{"criminal":true,"sentenceCompletedYears":`+tc.years+`}`)
		wantFilter(t, Evaluate(s, catalog.Criminal), tc.want)
	}
}

func TestHeartDiseaseBMIDecline(t *testing.T) {
	// BMI exactly 44.0 with heart disease declines; the BMI band alone
	// would only have reached Deferred+.
	s := applicant.New()
	answerAndApply(t, s, catalog.BodyMass, `{"bmi":44.0}`)
	if s.Declined {
		t.Fatal("BMI band alone must not decline")
	}
	r := Evaluate(s, catalog.Cardiovascular)
	if r.Decline {
		t.Fatal("unanswered q11 must not evaluate")
	}
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":true,"stable":false}`)
	r = Evaluate(s, catalog.Cardiovascular)
	if !r.Decline || r.DeclineReason != ReasonHeartDiseaseHighBMI {
		t.Fatalf("got %+v, want BMI decline", r)
	}
	Apply(s, r)
	if !s.Declined || s.PlanFloor != tier.Decline {
		t.Error("decline not absorbed into state")
	}
}

func TestHeartDiseaseUnstable(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":30}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":true,"stable":false}`)
	wantFilter(t, Evaluate(s, catalog.Cardiovascular), tier.DeferredPlus)

	// A smoker in the same position is Guaranteed+.
	s = applicant.New()
	mustAnswer(t, s, catalog.Tobacco, `{"tobacco":true}`)
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":30}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":true,"stable":false}`)
	wantFilter(t, Evaluate(s, catalog.Cardiovascular), tier.GuaranteedPlus)
}

func TestHeartDiseaseStableGrading(t *testing.T) {
	// Stable, diagnosed long ago, recent follow-up, low BMI, older non-smoker.
	s := applicant.New()
	a := 55
	s.SetDemographics(&a, nil, nil)
	mustAnswer(t, s, catalog.Tobacco, `{"tobacco":false}`)
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":28}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":true,"stable":true,"diagnosedYears":6,"lastFollowUpYears":1}`)
	wantFilter(t, Evaluate(s, catalog.Cardiovascular), tier.GuaranteedPlus)

	// Same but follow-up 2+ years ago lands Deferred+.
	s = applicant.New()
	s.SetDemographics(&a, nil, nil)
	mustAnswer(t, s, catalog.Tobacco, `{"tobacco":false}`)
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":28}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":true,"stable":true,"diagnosedYears":6,"lastFollowUpYears":3}`)
	wantFilter(t, Evaluate(s, catalog.Cardiovascular), tier.DeferredPlus)
}

func TestDiabetesType1(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":42}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":false}`)
	mustAnswer(t, s, catalog.Diabetes, `{"diabetes":true,"type1":true}`)
	wantFilter(t, Evaluate(s, catalog.Diabetes), tier.GuaranteedPlus)

	// Controlled type 1 at normal BMI grades to Deferred+ on high HbA1c.
	s = applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":25}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":false}`)
	mustAnswer(t, s, catalog.Diabetes, `{"diabetes":true,"type1":true,"hba1c":8.1}`)
	wantFilter(t, Evaluate(s, catalog.Diabetes), tier.DeferredPlus)
}

func TestDiabetesOnMedicationBMIGrading(t *testing.T) {
	cases := []struct {
		bmi  string
		want tier.Tier
	}{
		{"38.5", tier.DeferredPlus},
		{"37.0", tier.Signature},
		{"25.0", tier.Day1Plus},
	}
	for _, tc := range cases {
		s := applicant.New()
		a := 45
		s.SetDemographics(&a, nil, nil)
		mustAnswer(t, s, catalog.BodyMass, `{"bmi":`+tc.bmi+`}`)
		mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":false}`)
		mustAnswer(t, s, catalog.Diabetes, `{"diabetes":true,"onMedication":true,"hba1c":8.0}`)
		wantFilter(t, Evaluate(s, catalog.Diabetes), tc.want)
	}
}

func TestRespiratoryLadder(t *testing.T) {
	// COPD on oxygen is Guaranteed+.
	s := applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":25}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":false}`)
	mustAnswer(t, s, catalog.Respiratory, `{"respiratory":true,"oxygenTherapy":true}`)
	wantFilter(t, Evaluate(s, catalog.Respiratory), tier.GuaranteedPlus)

	// Sleep apnea with daily treatment and CAD is Signature.
	s = applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":25}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":true,"stable":true,"diagnosedYears":6,"lastFollowUpYears":1}`)
	mustAnswer(t, s, catalog.Respiratory, `{"respiratory":false,"sleepApnea":true,"sleepApneaDailyTreatment":true}`)
	wantFilter(t, Evaluate(s, catalog.Respiratory), tier.Signature)

	// Severe asthma in a smoker is Deferred+.
	s = applicant.New()
	mustAnswer(t, s, catalog.Tobacco, `{"tobacco":true}`)
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":25}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":false}`)
	mustAnswer(t, s, catalog.Respiratory, `{"respiratory":false,"asthma":true,"asthmaSeverity":"severe"}`)
	wantFilter(t, Evaluate(s, catalog.Respiratory), tier.DeferredPlus)
}

func TestMentalHealthGrading(t *testing.T) {
	// Severe with 3+ medications is Deferred+.
	s := applicant.New()
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":true,"medicationsCount":3}`)
	wantFilter(t, Evaluate(s, catalog.MentalHealth), tier.DeferredPlus)

	// Severe alone is Signature.
	s = applicant.New()
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":true}`)
	wantFilter(t, Evaluate(s, catalog.MentalHealth), tier.Signature)

	// Combined with heavy drinking everything collapses to Guaranteed+.
	s = applicant.New()
	mustAnswer(t, s, catalog.Alcohol, `{"alcohol":true,"drinksPerWeek":24}`)
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":false,"moderateMentalHealth":true}`)
	wantFilter(t, Evaluate(s, catalog.MentalHealth), tier.GuaranteedPlus)

	// Moderate alone is Day1+.
	s = applicant.New()
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":false,"moderateMentalHealth":true}`)
	wantFilter(t, Evaluate(s, catalog.MentalHealth), tier.Day1Plus)
}

func TestDigestiveUnderweight(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":17.5}`)
	mustAnswer(t, s, catalog.Digestive, `{"digestive":true}`)
	wantFilter(t, Evaluate(s, catalog.Digestive), tier.GuaranteedPlus)

	// Long-standing Crohn's with surveillance and no flares is Day1+.
	s = applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":24}`)
	mustAnswer(t, s, catalog.Digestive, `{"digestive":true,"crohnsUC":true,"followUpYears":1,"surgeries":0,"flareLast12Months":false}`)
	wantFilter(t, Evaluate(s, catalog.Digestive), tier.Day1Plus)
}

func TestArthritisComorbidity(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":30}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":false}`)
	mustAnswer(t, s, catalog.Diabetes, `{"diabetes":true,"onMedication":true,"hba1c":6}`)
	mustAnswer(t, s, catalog.Genitourinary, `{"everDiagnosed":false}`)
	mustAnswer(t, s, catalog.Arthritis, `{"arthritis":true}`)
	wantFilter(t, Evaluate(s, catalog.Arthritis), tier.GuaranteedPlus)

	// Without comorbidities, medication alone grades by age.
	s = applicant.New()
	a := 35
	s.SetDemographics(&a, nil, nil)
	mustAnswer(t, s, catalog.BodyMass, `{"bmi":30}`)
	mustAnswer(t, s, catalog.Cardiovascular, `{"heartDisease":false}`)
	mustAnswer(t, s, catalog.Diabetes, `{"diabetes":false}`)
	mustAnswer(t, s, catalog.Genitourinary, `{"everDiagnosed":false}`)
	mustAnswer(t, s, catalog.Arthritis, `{"arthritis":true,"onMedication":true}`)
	wantFilter(t, Evaluate(s, catalog.Arthritis), tier.Signature)
}

func TestSimpleLadders(t *testing.T) {
	cases := []struct {
		id   catalog.ID
		raw  string
		want tier.Tier
	}{
		{catalog.PendingMedical, `{"pendingSymptoms":true,"pendingTests":false}`, tier.GuaranteedPlus},
		{catalog.PendingMedical, `{"pendingSymptoms":false,"pendingTests":false}`, tier.Day1},
		{catalog.Cancer, `{"cancer":true}`, tier.DeferredPlus},
		{catalog.ImmuneDisorder, `{"immuneDisorder":true}`, tier.GuaranteedPlus},
		{catalog.Endocrine, `{"endocrine":true}`, tier.Signature},
		{catalog.ExtremeSports, `{"extremeSports":true,"highestRisk":true}`, tier.GuaranteedPlus},
		{catalog.ExtremeSports, `{"extremeSports":true,"moderateRisk":true}`, tier.Signature},
		{catalog.ExtremeSports, `{"extremeSports":true}`, tier.Day1Plus},
		{catalog.FamilyHistory, `{"familyHistory":true,"hereditary":true}`, tier.DeferredPlus},
		{catalog.FamilyHistory, `{"familyHistory":true,"multipleBefore60":true,"oneBefore50":true}`, tier.Signature},
		{catalog.HighRiskTravel, `{"highRiskTravel":true}`, tier.GuaranteedPlus},
		{catalog.HighRiskTravel, `{"highRiskTravel":false,"resideOutside6Months":true}`, tier.Day1Plus},
	}
	for _, tc := range cases {
		s := applicant.New()
		mustAnswer(t, s, tc.id, tc.raw)
		wantFilter(t, Evaluate(s, tc.id), tc.want)
	}
}

func TestNeurologicalSeizures(t *testing.T) {
	s := applicant.New()
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":false}`)
	mustAnswer(t, s, catalog.Neurological, `{"neurological":true,"seizures":true,"seizuresLast12Months":0}`)
	wantFilter(t, Evaluate(s, catalog.Neurological), tier.Day1Plus)

	mustAnswer(t, s, catalog.Neurological, `{"neurological":true,"seizures":true,"seizuresLast12Months":2,"multipleMedications":true}`)
	wantFilter(t, Evaluate(s, catalog.Neurological), tier.DeferredPlus)

	mustAnswer(t, s, catalog.Neurological, `{"neurological":true,"seizures":true,"seizuresLast12Months":8}`)
	wantFilter(t, Evaluate(s, catalog.Neurological), tier.GuaranteedPlus)
}

func TestNeuromuscular(t *testing.T) {
	s := applicant.New()
	a := 45
	s.SetDemographics(&a, nil, nil)
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":false}`)
	mustAnswer(t, s, catalog.Neuromuscular, `{"neuromuscular":true}`)
	wantFilter(t, Evaluate(s, catalog.Neuromuscular), tier.GuaranteedPlus)

	s = applicant.New()
	a = 30
	s.SetDemographics(&a, nil, nil)
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":false}`)
	mustAnswer(t, s, catalog.Neuromuscular, `{"neuromuscular":true,"ambulatoryIssues":true}`)
	wantFilter(t, Evaluate(s, catalog.Neuromuscular), tier.DeferredPlus)

	// Severe mental health under the age cutoff compares tiers, not ages.
	s = applicant.New()
	a = 30
	s.SetDemographics(&a, nil, nil)
	mustAnswer(t, s, catalog.MentalHealth, `{"severeMentalHealth":true}`)
	mustAnswer(t, s, catalog.Neuromuscular, `{"neuromuscular":true}`)
	wantFilter(t, Evaluate(s, catalog.Neuromuscular), tier.Signature)
}

func TestApplyNarrowsAndClamps(t *testing.T) {
	s := applicant.New()
	answerAndApply(t, s, catalog.BodyMass, `{"bmi":39}`)
	if s.PlanFloor != tier.Outcome(tier.Day1Plus) {
		t.Fatalf("floor = %s, want Day1+", s.PlanFloor)
	}
	if s.RecommendedPlan == nil || *s.RecommendedPlan != tier.Outcome(tier.Day1Plus) {
		t.Fatalf("recommended = %v, want Day1+", s.RecommendedPlan)
	}
	// A later better answer never relaxes the floor.
	answerAndApply(t, s, catalog.Endocrine, `{"endocrine":false}`)
	if s.PlanFloor != tier.Outcome(tier.Day1Plus) {
		t.Errorf("floor relaxed to %s", s.PlanFloor)
	}
}

func TestEvaluateWithoutAnswerIsNoOp(t *testing.T) {
	s := applicant.New()
	for _, id := range append(catalog.MandatoryOrder(), catalog.FallbackOrder()...) {
		r := Evaluate(s, id)
		if r.Decline || r.Filter != nil || len(r.FollowUps) != 0 {
			t.Errorf("Evaluate(%s) on empty state = %+v, want zero result", id, r)
		}
	}
}
