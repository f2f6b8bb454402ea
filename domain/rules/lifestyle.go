package rules

import (
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/tier"
)

// evaluateTobacco never moves the lattice; the smoker rate derived from q1
// feeds other rules instead.
func evaluateTobacco(_ *applicant.State) Result {
	return Result{}
}

func evaluateBodyMass(s *applicant.State) Result {
	a := s.Answers.Q2
	if a == nil {
		return Result{}
	}
	b := a.BMI

	min := tier.Day1
	switch {
	case b <= 17.0:
		min = tier.GuaranteedPlus
	case b >= 17.1 && b <= 38.0:
		min = tier.Day1
	case b >= 38.1 && b <= 40.0:
		min = tier.Day1Plus
	case b >= 40.1 && b <= 43.0:
		min = tier.Signature
	case b >= 43.1 && b <= 44.0:
		min = tier.DeferredPlus
	case b >= 44.1:
		min = tier.GuaranteedPlus
	}

	// Losing more than 10% of body weight in the past year overrides the band.
	if a.WeightLoss != nil && *a.WeightLoss {
		min = tier.DeferredPlus
	}

	return filter(min)
}

func evaluateOccupation(s *applicant.State) Result {
	a := s.Answers.Q3
	if a == nil {
		return Result{}
	}
	if !a.Working {
		if a.Institutionalized != nil && *a.Institutionalized {
			return filter(tier.GuaranteedPlus)
		}
		return filter(tier.Day1)
	}
	if a.HighRiskOccupation != nil && *a.HighRiskOccupation {
		return filter(tier.DeferredPlus)
	}
	if a.ModerateRiskOccupation != nil && *a.ModerateRiskOccupation {
		return filter(tier.Signature)
	}
	return filter(tier.Day1)
}

func evaluateAlcohol(s *applicant.State) Result {
	a := s.Answers.Q4
	if a == nil {
		return Result{}
	}
	if !a.Alcohol {
		return filter(tier.Day1)
	}
	followUps := catalog.FollowUps(catalog.Alcohol)

	drinks := 0
	if a.DrinksPerWeek != nil {
		drinks = *a.DrinksPerWeek
	}
	switch {
	case drinks < alcoholLow:
		return filterWith(tier.Day1, followUps)
	case drinks <= alcoholModerate:
		return filterWith(tier.Day1Plus, followUps)
	case drinks >= alcoholHigh && drinks <= alcoholVeryHigh:
		// In the 21-28 band the mental health answer grades the outcome.
		if s.Answers.HasSevereMentalHealth() {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		if s.Answers.HasModerateMentalHealth() {
			return filterWith(tier.DeferredPlus, followUps)
		}
		return filterWith(tier.Signature, followUps)
	default:
		return filterWith(tier.GuaranteedPlus, followUps)
	}
}

func evaluateMarijuana(s *applicant.State) Result {
	a := s.Answers.Q5
	if a == nil {
		return Result{}
	}
	if !a.Marijuana {
		return filter(tier.Day1)
	}

	freq := 0
	if a.FrequencyPerWeek != nil {
		freq = *a.FrequencyPerWeek
	}
	young := age(s) <= ageMarijuana25

	switch {
	case freq >= marijuanaVeryHighMin:
		return filter(tier.GuaranteedPlus)
	case freq >= marijuanaHighMin && freq <= marijuanaHighMax:
		if young {
			return filter(tier.DeferredPlus)
		}
		return filter(tier.Signature)
	case freq >= marijuanaModerateMin && freq <= marijuanaModerateMax:
		if young {
			return filter(tier.Signature)
		}
		return filter(tier.Day1Plus)
	case freq >= marijuanaLowMin && freq <= marijuanaLowMax:
		if young {
			return filter(tier.Day1Plus)
		}
		return filter(tier.Day1)
	}
	return filter(tier.Day1)
}

func evaluateIllicitDrugs(s *applicant.State) Result {
	a := s.Answers.Q6
	if a == nil {
		return Result{}
	}
	if !a.IllicitDrugs {
		return filter(tier.Day1)
	}
	followUps := catalog.FollowUps(catalog.IllicitDrugs)

	lastUse := 0.0
	if a.LastUseYears != nil {
		lastUse = *a.LastUseYears
	}
	if lastUse < q6DrugUseDecline {
		return decline(ReasonRecentDrugUse)
	}

	mentalHealth := hasAnyMentalHealth(s)
	heavyDrinking := s.Answers.DrinksPerWeek() >= alcoholHigh

	switch {
	case lastUse < q6DrugUseGuaranteedPlus:
		if mentalHealth {
			return decline(ReasonDrugsWithMentalHealth)
		}
		if heavyDrinking {
			return decline(ReasonDrugsWithAlcohol)
		}
		return filterWith(tier.GuaranteedPlus, followUps)
	case lastUse < q6DrugUseSignature:
		if mentalHealth || heavyDrinking {
			return filterWith(tier.DeferredPlus, followUps)
		}
		return filterWith(tier.Signature, followUps)
	case lastUse < q6DrugUseDay1Plus:
		if a.OnlyExperimental != nil && *a.OnlyExperimental {
			if a.TotalUses != nil && *a.TotalUses == 1 {
				return filterWith(tier.Day1, followUps)
			}
			return filterWith(tier.Day1Plus, followUps)
		}
		if mentalHealth || heavyDrinking {
			return filterWith(tier.Signature, followUps)
		}
		return filterWith(tier.Day1Plus, followUps)
	}
	return filterWith(tier.Day1, followUps)
}

// treatmentLadder grades q7 by years since the last treatment.
func treatmentLadder(years float64) Result {
	switch {
	case years < q7TreatmentGuaranteedPlus:
		return filter(tier.GuaranteedPlus)
	case years < q7TreatmentDeferredPlus:
		return filter(tier.DeferredPlus)
	case years < q7TreatmentSignature:
		return filter(tier.Signature)
	case years < q7TreatmentDay1Plus:
		return filter(tier.Day1Plus)
	}
	return filter(tier.Day1)
}

func evaluateTreatment(s *applicant.State) Result {
	a := s.Answers.Q7
	if a == nil {
		return Result{}
	}
	if !a.Treatment {
		return filter(tier.Day1)
	}

	years := 0.0
	if a.LastTreatmentYears != nil {
		years = *a.LastTreatmentYears
	}

	if a.AlcoholOnly != nil && *a.AlcoholOnly {
		// Alcohol treatment combined with current drinking declines.
		if s.Answers.Q4 != nil && s.Answers.Q4.Alcohol {
			return decline(ReasonAlcoholTreatment)
		}
		return treatmentLadder(years)
	}

	// Drug treatment combined with admitted drug use declines.
	if s.Answers.UsedIllicitDrugs() {
		return decline(ReasonDrugTreatment)
	}
	return treatmentLadder(years)
}

func evaluateDUI(s *applicant.State) Result {
	a := s.Answers.Q8
	if a == nil {
		return Result{}
	}
	if !a.DUI {
		return filter(tier.Day1)
	}
	followUps := catalog.FollowUps(catalog.DUI)

	if s.AgeAtLeast(ageDUI71 + 1) {
		return filterWith(tier.GuaranteedPlus, followUps)
	}
	if duiOrHeavyDrinking(s) {
		return filterWith(tier.GuaranteedPlus, followUps)
	}
	if a.MultipleDUIs != nil && *a.MultipleDUIs {
		return filterWith(tier.GuaranteedPlus, followUps)
	}
	return filterWith(tier.Day1Plus, followUps)
}

func evaluateCriminal(s *applicant.State) Result {
	a := s.Answers.Q9
	if a == nil {
		return Result{}
	}
	if !a.Criminal {
		return filter(tier.Day1)
	}
	if a.MultipleCharges != nil && *a.MultipleCharges {
		return decline(ReasonMultipleCharges)
	}
	if a.Incarcerated6MonthsPlus != nil && *a.Incarcerated6MonthsPlus {
		return decline(ReasonRecentIncarceration)
	}

	years := 0.0
	if a.SentenceCompletedYears != nil {
		years = *a.SentenceCompletedYears
	}
	switch {
	case years < q9SentenceGuaranteedPlus:
		return filter(tier.GuaranteedPlus)
	case years <= q9SentenceDeferredPlus:
		return filter(tier.DeferredPlus)
	}
	return filter(tier.Signature)
}
