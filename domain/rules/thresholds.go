package rules

// Alcohol consumption thresholds, standard drinks per week.
const (
	alcoholLow      = 14 // below this stays Day1
	alcoholModerate = 20 // 14-20 is Day1+
	alcoholHigh     = 21 // 21-28 is Signature, worse with mental health
	alcoholVeryHigh = 28 // above this is Guaranteed+
)

// Marijuana use thresholds, times per week.
const (
	marijuanaLowMin      = 1
	marijuanaLowMax      = 3
	marijuanaModerateMin = 4
	marijuanaModerateMax = 7
	marijuanaHighMin     = 8
	marijuanaHighMax     = 14
	marijuanaVeryHighMin = 15
)

// Years-since thresholds.
const (
	q6DrugUseDecline        = 1.0 // last use under a year declines outright
	q6DrugUseGuaranteedPlus = 2.0
	q6DrugUseSignature      = 5.0
	q6DrugUseDay1Plus       = 10.0

	q7TreatmentGuaranteedPlus = 1.0
	q7TreatmentDeferredPlus   = 2.0
	q7TreatmentSignature      = 5.0
	q7TreatmentDay1Plus       = 10.0

	q9SentenceGuaranteedPlus = 3.0
	q9SentenceDeferredPlus   = 5.0

	q11DiagnosisDeferredPlus = 3.0
	q11FollowUpRecent        = 2.0

	q19FollowUp = 2.0
)

// Age thresholds.
const (
	ageMarijuana25   = 25
	ageDiabetesMin   = 18
	ageDiabetesMax   = 24
	ageDUI71         = 71
	ageNeuromuscular = 40
	ageArthritis     = 40
)

// BMI thresholds tied to specific conditions.
const (
	q11BMIDecline      = 44.0 // heart disease at or above this declines
	q11BMISignature    = 40.0
	q12BMIGuaranteed   = 40.0
	q12BMIDeferredMin  = 38.0
	q12BMIDeferredMax  = 39.0
	q12BMISignatureMin = 36.0
	q12BMISignatureMax = 37.9
	q12BMIDay1PlusMin  = 18.0
	q12BMIDay1PlusMax  = 36.0
	q19BMIGuaranteed   = 18.0
	q19BMISignatureMin = 18.0
	q19BMISignatureMax = 20.0
	q22BMIGuaranteed   = 43.0
)

const q12HbA1cHigh = 7.5

// Seizure counts in the last 12 months.
const (
	seizuresLowMin      = 1
	seizuresLowMax      = 3
	seizuresModerateMin = 4
	seizuresModerateMax = 6
)

// Decline reasons surfaced to the applicant record.
const (
	ReasonRecentDrugUse         = "Recent illicit drug use (< 1 year)"
	ReasonDrugsWithMentalHealth = "Illicit drug use with mental health conditions (1-2 years)"
	ReasonDrugsWithAlcohol      = "Illicit drug use with high alcohol consumption (21+ drinks/week) (1-2 years)"
	ReasonAlcoholTreatment      = "Alcohol treatment with current alcohol use"
	ReasonDrugTreatment         = "Drug treatment with recent drug use"
	ReasonMultipleCharges       = "Multiple criminal charges (2 or more times) or charges/sentencing currently pending"
	ReasonRecentIncarceration   = "Recent incarceration (6+ months)"
	ReasonHeartDiseaseHighBMI   = "Heart disease with BMI >= 44.0"
)
