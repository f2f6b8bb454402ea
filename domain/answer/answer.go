// Package answer defines the typed answer payload for every catalog
// question. Each question has its own struct so the rules can read
// cross-question fields without reflection, and the whole set serializes
// as one JSON object keyed by question id.
package answer

import "underwrite/domain/catalog"

// Sex is the demographic gate answer.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

func (s Sex) Valid() bool { return s == Male || s == Female }

type SexAnswer struct {
	Sex Sex `json:"sex"`
}

type Tobacco struct {
	Tobacco bool `json:"tobacco"`
}

type BodyMass struct {
	BMI                float64  `json:"bmi"`
	WeightLoss         *bool    `json:"weightLoss,omitempty"`
	Pregnancy          *bool    `json:"pregnancy,omitempty"`
	BirthLast6Months   *bool    `json:"birthLast6Months,omitempty"`
	PrePregnancyWeight *float64 `json:"prePregnancyWeight,omitempty"`
}

type Occupation struct {
	Working                bool    `json:"working"`
	HighRiskOccupation     *bool   `json:"highRiskOccupation,omitempty"`
	ModerateRiskOccupation *bool   `json:"moderateRiskOccupation,omitempty"`
	Institutionalized      *bool   `json:"institutionalized,omitempty"`
	OccupationDescription  *string `json:"occupationDescription,omitempty"`
}

type Alcohol struct {
	Alcohol       bool `json:"alcohol"`
	DrinksPerWeek *int `json:"drinksPerWeek,omitempty"`
}

type Marijuana struct {
	Marijuana        bool `json:"marijuana"`
	MixedWithTobacco *bool `json:"mixedWithTobacco,omitempty"`
	FrequencyPerWeek *int  `json:"frequencyPerWeek,omitempty"`
}

type IllicitDrugs struct {
	IllicitDrugs     bool     `json:"illicitDrugs"`
	LastUseYears     *float64 `json:"lastUseYears,omitempty"`
	DrugTypes        []string `json:"drugTypes,omitempty"`
	OnlyExperimental *bool    `json:"onlyExperimental,omitempty"`
	TotalUses        *int     `json:"totalUses,omitempty"`
}

type Treatment struct {
	Treatment         bool     `json:"treatment"`
	AlcoholOnly       *bool    `json:"alcoholOnly,omitempty"`
	LastTreatmentYears *float64 `json:"lastTreatmentYears,omitempty"`
}

type DUI struct {
	DUI          bool  `json:"dui"`
	MultipleDUIs *bool `json:"multipleDUIs,omitempty"`
}

type Criminal struct {
	Criminal                bool     `json:"criminal"`
	MultipleCharges         *bool    `json:"multipleCharges,omitempty"`
	Incarcerated6MonthsPlus *bool    `json:"incarcerated6MonthsPlus,omitempty"`
	SentenceCompletedYears  *float64 `json:"sentenceCompletedYears,omitempty"`
}

type PendingMedical struct {
	PendingSymptoms bool `json:"pendingSymptoms"`
	PendingTests    bool `json:"pendingTests"`
}

type Cardiovascular struct {
	HeartDisease     bool     `json:"heartDisease"`
	Stable           *bool    `json:"stable,omitempty"`
	DiagnosedYears   *float64 `json:"diagnosedYears,omitempty"`
	LastFollowUpYears *float64 `json:"lastFollowUpYears,omitempty"`
}

type Diabetes struct {
	Diabetes      bool     `json:"diabetes"`
	Type1         *bool    `json:"type1,omitempty"`
	Gestational   *bool    `json:"gestational,omitempty"`
	Complications *bool    `json:"complications,omitempty"`
	HbA1c         *float64 `json:"hba1c,omitempty"`
	OnMedication  *bool    `json:"onMedication,omitempty"`
}

type Cancer struct {
	Cancer bool `json:"cancer"`
}

type ImmuneDisorder struct {
	ImmuneDisorder bool `json:"immuneDisorder"`
}

// AsthmaSeverity grades Q15 asthma.
type AsthmaSeverity string

const (
	AsthmaMild     AsthmaSeverity = "mild"
	AsthmaModerate AsthmaSeverity = "moderate"
	AsthmaSevere   AsthmaSeverity = "severe"
)

func (s AsthmaSeverity) Valid() bool {
	switch s {
	case AsthmaMild, AsthmaModerate, AsthmaSevere:
		return true
	}
	return false
}

type Respiratory struct {
	Respiratory             bool            `json:"respiratory"`
	OxygenTherapy           *bool           `json:"oxygenTherapy,omitempty"`
	SleepApnea              *bool           `json:"sleepApnea,omitempty"`
	SleepApneaDailyTreatment *bool           `json:"sleepApneaDailyTreatment,omitempty"`
	Asthma                  *bool           `json:"asthma,omitempty"`
	AsthmaSeverity          *AsthmaSeverity `json:"asthmaSeverity,omitempty"`
}

type Genitourinary struct {
	EverDiagnosed       bool  `json:"everDiagnosed"`
	DiagnosedLast2Years *bool `json:"diagnosedLast2Years,omitempty"`
	FollowUpNormal      *bool `json:"followUpNormal,omitempty"`
	AbnormalPap         *bool `json:"abnormalPap,omitempty"`
	ElevatedPSA         *bool `json:"elevatedPSA,omitempty"`
}

type Neurological struct {
	Neurological        bool  `json:"neurological"`
	Seizures            *bool `json:"seizures,omitempty"`
	SeizuresLast12Months *int  `json:"seizuresLast12Months,omitempty"`
	MultipleMedications *bool `json:"multipleMedications,omitempty"`
}

type MentalHealth struct {
	SevereMentalHealth   bool  `json:"severeMentalHealth"`
	ModerateMentalHealth *bool `json:"moderateMentalHealth,omitempty"`
	MedicationsCount     *int  `json:"medicationsCount,omitempty"`
}

type Digestive struct {
	Digestive        bool     `json:"digestive"`
	CrohnsUC         *bool    `json:"crohnsUC,omitempty"`
	FollowUpYears    *float64 `json:"followUpYears,omitempty"`
	Surgeries        *int     `json:"surgeries,omitempty"`
	FlareLast12Months *bool    `json:"flareLast12Months,omitempty"`
}

type Endocrine struct {
	Endocrine bool `json:"endocrine"`
}

type Neuromuscular struct {
	Neuromuscular      bool  `json:"neuromuscular"`
	MSProgressive      *bool `json:"msProgressive,omitempty"`
	AmbulatoryIssues   *bool `json:"ambulatoryIssues,omitempty"`
	AttacksLast12Months *int  `json:"attacksLast12Months,omitempty"`
}

type Arthritis struct {
	Arthritis     bool  `json:"arthritis"`
	DailySymptoms *bool `json:"dailySymptoms,omitempty"`
	Surgery       *bool `json:"surgery,omitempty"`
	OnMedication  *bool `json:"onMedication,omitempty"`
}

type ExtremeSports struct {
	ExtremeSports bool  `json:"extremeSports"`
	HighestRisk   *bool `json:"highestRisk,omitempty"`
	ModerateRisk  *bool `json:"moderateRisk,omitempty"`
}

type FamilyHistory struct {
	FamilyHistory    bool  `json:"familyHistory"`
	Hereditary       *bool `json:"hereditary,omitempty"`
	MultipleBefore60 *bool `json:"multipleBefore60,omitempty"`
	OneBefore50      *bool `json:"oneBefore50,omitempty"`
}

type Travel struct {
	HighRiskTravel      bool  `json:"highRiskTravel"`
	ResideOutside6Months *bool `json:"resideOutside6Months,omitempty"`
}

// Answers collects every recorded answer. Unanswered questions are nil.
type Answers struct {
	Sex *SexAnswer      `json:"sex,omitempty"`
	Q1  *Tobacco        `json:"q1,omitempty"`
	Q2  *BodyMass       `json:"q2,omitempty"`
	Q3  *Occupation     `json:"q3,omitempty"`
	Q4  *Alcohol        `json:"q4,omitempty"`
	Q5  *Marijuana      `json:"q5,omitempty"`
	Q6  *IllicitDrugs   `json:"q6,omitempty"`
	Q7  *Treatment      `json:"q7,omitempty"`
	Q8  *DUI            `json:"q8,omitempty"`
	Q9  *Criminal       `json:"q9,omitempty"`
	Q10 *PendingMedical `json:"q10,omitempty"`
	Q11 *Cardiovascular `json:"q11,omitempty"`
	Q12 *Diabetes       `json:"q12,omitempty"`
	Q13 *Cancer         `json:"q13,omitempty"`
	Q14 *ImmuneDisorder `json:"q14,omitempty"`
	Q15 *Respiratory    `json:"q15,omitempty"`
	Q16 *Genitourinary  `json:"q16,omitempty"`
	Q17 *Neurological   `json:"q17,omitempty"`
	Q18 *MentalHealth   `json:"q18,omitempty"`
	Q19 *Digestive      `json:"q19,omitempty"`
	Q20 *Endocrine      `json:"q20,omitempty"`
	Q21 *Neuromuscular  `json:"q21,omitempty"`
	Q22 *Arthritis      `json:"q22,omitempty"`
	Q23 *ExtremeSports  `json:"q23,omitempty"`
	Q24 *FamilyHistory  `json:"q24,omitempty"`
	Q25 *Travel         `json:"q25,omitempty"`
}

// Has reports whether an answer is recorded for id.
func (a *Answers) Has(id catalog.ID) bool {
	switch id {
	case catalog.Sex:
		return a.Sex != nil
	case catalog.Tobacco:
		return a.Q1 != nil
	case catalog.BodyMass:
		return a.Q2 != nil
	case catalog.Occupation:
		return a.Q3 != nil
	case catalog.Alcohol:
		return a.Q4 != nil
	case catalog.Marijuana:
		return a.Q5 != nil
	case catalog.IllicitDrugs:
		return a.Q6 != nil
	case catalog.Treatment:
		return a.Q7 != nil
	case catalog.DUI:
		return a.Q8 != nil
	case catalog.Criminal:
		return a.Q9 != nil
	case catalog.PendingMedical:
		return a.Q10 != nil
	case catalog.Cardiovascular:
		return a.Q11 != nil
	case catalog.Diabetes:
		return a.Q12 != nil
	case catalog.Cancer:
		return a.Q13 != nil
	case catalog.ImmuneDisorder:
		return a.Q14 != nil
	case catalog.Respiratory:
		return a.Q15 != nil
	case catalog.Genitourinary:
		return a.Q16 != nil
	case catalog.Neurological:
		return a.Q17 != nil
	case catalog.MentalHealth:
		return a.Q18 != nil
	case catalog.Digestive:
		return a.Q19 != nil
	case catalog.Endocrine:
		return a.Q20 != nil
	case catalog.Neuromuscular:
		return a.Q21 != nil
	case catalog.Arthritis:
		return a.Q22 != nil
	case catalog.ExtremeSports:
		return a.Q23 != nil
	case catalog.FamilyHistory:
		return a.Q24 != nil
	case catalog.HighRiskTravel:
		return a.Q25 != nil
	}
	return false
}

// DrinksPerWeek reads q4's weekly drink count, zero when unanswered.
func (a *Answers) DrinksPerWeek() int {
	if a.Q4 == nil || a.Q4.DrinksPerWeek == nil {
		return 0
	}
	return *a.Q4.DrinksPerWeek
}

// HasSevereMentalHealth reads q18, false when unanswered.
func (a *Answers) HasSevereMentalHealth() bool {
	return a.Q18 != nil && a.Q18.SevereMentalHealth
}

// HasModerateMentalHealth reads q18, false when unanswered.
func (a *Answers) HasModerateMentalHealth() bool {
	return a.Q18 != nil && a.Q18.ModerateMentalHealth != nil && *a.Q18.ModerateMentalHealth
}

// HasHeartDisease reads q11, false when unanswered.
func (a *Answers) HasHeartDisease() bool {
	return a.Q11 != nil && a.Q11.HeartDisease
}

// UsedIllicitDrugs reads q6, false when unanswered.
func (a *Answers) UsedIllicitDrugs() bool {
	return a.Q6 != nil && a.Q6.IllicitDrugs
}

// HasDUI reads q8, false when unanswered.
func (a *Answers) HasDUI() bool {
	return a.Q8 != nil && a.Q8.DUI
}

// HasDiabetes reads q12, false when unanswered.
func (a *Answers) HasDiabetes() bool {
	return a.Q12 != nil && a.Q12.Diabetes
}

// HasGenitourinaryHistory reads q16, false when unanswered.
func (a *Answers) HasGenitourinaryHistory() bool {
	if a.Q16 == nil {
		return false
	}
	if a.Q16.EverDiagnosed {
		return true
	}
	return a.Q16.DiagnosedLast2Years != nil && *a.Q16.DiagnosedLast2Years
}
