package rules

import (
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/tier"
)

func evaluatePendingMedical(s *applicant.State) Result {
	a := s.Answers.Q10
	if a == nil {
		return Result{}
	}
	if a.PendingSymptoms || a.PendingTests {
		return filter(tier.GuaranteedPlus)
	}
	return filter(tier.Day1)
}

func evaluateCardiovascular(s *applicant.State) Result {
	a := s.Answers.Q11
	if a == nil {
		return Result{}
	}
	if !a.HeartDisease {
		return filter(tier.Day1)
	}
	followUps := catalog.FollowUps(catalog.Cardiovascular)

	b := bmi(s)
	// The inclusive 44.0 bound here is the only decline triggered by BMI.
	if b >= q11BMIDecline {
		return decline(ReasonHeartDiseaseHighBMI)
	}

	stable := a.Stable != nil && *a.Stable
	if !stable {
		if s.IsSmoker() {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		return filterWith(tier.DeferredPlus, followUps)
	}

	diagnosed := 0.0
	if a.DiagnosedYears != nil {
		diagnosed = *a.DiagnosedYears
	}
	youngOrSmoker := age(s) < ageNeuromuscular || s.IsSmoker()

	if diagnosed <= q11DiagnosisDeferredPlus {
		if youngOrSmoker {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		return filterWith(tier.DeferredPlus, followUps)
	}

	lastFollowUp := 0.0
	if a.LastFollowUpYears != nil {
		lastFollowUp = *a.LastFollowUpYears
	}
	if lastFollowUp < q11FollowUpRecent {
		if b < q11BMISignature {
			if youngOrSmoker {
				return filterWith(tier.DeferredPlus, followUps)
			}
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		return filterWith(tier.GuaranteedPlus, followUps)
	}
	if b < q11BMISignature {
		if youngOrSmoker {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		return filterWith(tier.DeferredPlus, followUps)
	}
	return filterWith(tier.GuaranteedPlus, followUps)
}

func evaluateDiabetes(s *applicant.State) Result {
	a := s.Answers.Q12
	if a == nil {
		return Result{}
	}
	if !a.Diabetes {
		return filter(tier.Day1)
	}
	followUps := catalog.FollowUps(catalog.Diabetes)

	b := bmi(s)
	hasCAD := s.Answers.HasHeartDisease()
	pregnant := s.Answers.Q2 != nil && s.Answers.Q2.Pregnancy != nil && *s.Answers.Q2.Pregnancy
	hba1c := 0.0
	if a.HbA1c != nil {
		hba1c = *a.HbA1c
	}

	if a.Type1 != nil && *a.Type1 {
		if b > q12BMIGuaranteed || hasCAD {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		if a.Complications != nil && *a.Complications {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		if hba1c >= q12HbA1cHigh {
			return filterWith(tier.DeferredPlus, followUps)
		}
		return filterWith(tier.GuaranteedPlus, followUps)
	}

	gestational := a.Gestational != nil && *a.Gestational
	if s.IsFemale() && gestational && pregnant {
		if b > q12BMIGuaranteed || hasCAD {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		if hba1c <= q12HbA1cHigh {
			return filterWith(tier.Signature, followUps)
		}
		return filterWith(tier.DeferredPlus, followUps)
	}

	if a.OnMedication != nil && *a.OnMedication {
		ag := age(s)
		if (ag >= ageDiabetesMin && ag <= ageDiabetesMax) || hasCAD {
			return filterWith(tier.DeferredPlus, followUps)
		}
		if b > q12BMIGuaranteed {
			return filterWith(tier.GuaranteedPlus, followUps)
		}
		if hba1c >= q12HbA1cHigh {
			switch {
			case b >= q12BMIDeferredMin && b <= q12BMIDeferredMax:
				return filterWith(tier.DeferredPlus, followUps)
			case b >= q12BMISignatureMin && b <= q12BMISignatureMax:
				return filterWith(tier.Signature, followUps)
			case b >= q12BMIDay1PlusMin && b <= q12BMIDay1PlusMax:
				return filterWith(tier.Day1Plus, followUps)
			}
			return filterWith(tier.DeferredPlus, followUps)
		}
		return filterWith(tier.Day1Plus, followUps)
	}

	return filter(tier.Day1)
}

func evaluateCancer(s *applicant.State) Result {
	a := s.Answers.Q13
	if a == nil {
		return Result{}
	}
	if !a.Cancer {
		return filter(tier.Day1)
	}
	return filter(tier.DeferredPlus)
}

func evaluateImmuneDisorder(s *applicant.State) Result {
	a := s.Answers.Q14
	if a == nil {
		return Result{}
	}
	if !a.ImmuneDisorder {
		return filter(tier.Day1)
	}
	return filter(tier.GuaranteedPlus)
}

func evaluateRespiratory(s *applicant.State) Result {
	a := s.Answers.Q15
	if a == nil {
		return Result{}
	}
	hasCAD := s.Answers.HasHeartDisease()

	if a.Respiratory {
		if a.OxygenTherapy != nil && *a.OxygenTherapy {
			return filter(tier.GuaranteedPlus)
		}
		if hasCAD || s.IsSmoker() {
			return filter(tier.GuaranteedPlus)
		}
		return filter(tier.DeferredPlus)
	}

	if a.SleepApnea != nil && *a.SleepApnea {
		if a.SleepApneaDailyTreatment != nil && *a.SleepApneaDailyTreatment {
			if hasCAD {
				return filter(tier.Signature)
			}
			return filter(tier.Day1Plus)
		}
		if hasCAD {
			return filter(tier.DeferredPlus)
		}
		return filter(tier.Signature)
	}

	if a.Asthma != nil && *a.Asthma {
		if a.AsthmaSeverity != nil && *a.AsthmaSeverity == "severe" {
			if s.IsSmoker() {
				return filter(tier.DeferredPlus)
			}
			return filter(tier.Signature)
		}
		return filter(tier.Day1Plus)
	}

	return filter(tier.Day1)
}

func evaluateGenitourinary(s *applicant.State) Result {
	a := s.Answers.Q16
	if a == nil {
		return Result{}
	}
	diagnosedRecently := a.DiagnosedLast2Years != nil && *a.DiagnosedLast2Years
	var followUps []catalog.ID
	if a.EverDiagnosed || diagnosedRecently {
		followUps = catalog.FollowUps(catalog.Genitourinary)
	}

	if a.EverDiagnosed {
		return filterWith(tier.DeferredPlus, followUps)
	}
	if diagnosedRecently {
		if a.FollowUpNormal != nil && *a.FollowUpNormal {
			return filterWith(tier.Day1Plus, followUps)
		}
		return filterWith(tier.DeferredPlus, followUps)
	}
	return filter(tier.Day1)
}

func evaluateNeurological(s *applicant.State) Result {
	a := s.Answers.Q17
	if a == nil {
		return Result{}
	}
	if !a.Neurological {
		return filter(tier.Day1)
	}

	mentalHealth := hasAnyMentalHealth(s)

	seizuresOnly := a.Seizures != nil && *a.Seizures
	if !seizuresOnly {
		if mentalHealth {
			return filter(tier.GuaranteedPlus)
		}
		return filter(tier.DeferredPlus)
	}

	count := 0
	if a.SeizuresLast12Months != nil {
		count = *a.SeizuresLast12Months
	}
	multipleMeds := a.MultipleMedications != nil && *a.MultipleMedications

	switch {
	case count == 0:
		if mentalHealth {
			return filter(tier.Signature)
		}
		return filter(tier.Day1Plus)
	case count >= seizuresLowMin && count <= seizuresLowMax:
		if multipleMeds {
			if mentalHealth {
				return filter(tier.GuaranteedPlus)
			}
			return filter(tier.DeferredPlus)
		}
		return filter(tier.Signature)
	case count >= seizuresModerateMin && count <= seizuresModerateMax:
		if multipleMeds {
			return filter(tier.GuaranteedPlus)
		}
		return filter(tier.DeferredPlus)
	}
	return filter(tier.GuaranteedPlus)
}

func evaluateMentalHealth(s *applicant.State) Result {
	a := s.Answers.Q18
	if a == nil {
		return Result{}
	}
	moderate := a.ModerateMentalHealth != nil && *a.ModerateMentalHealth
	var followUps []catalog.ID
	if a.SevereMentalHealth || moderate {
		followUps = catalog.FollowUps(catalog.MentalHealth)
	}

	if drugUseWithoutDUIOrHeavyDrinking(s) || duiOrHeavyDrinking(s) {
		return filterWith(tier.GuaranteedPlus, followUps)
	}

	if a.SevereMentalHealth {
		if a.MedicationsCount != nil && *a.MedicationsCount >= 3 {
			return filterWith(tier.DeferredPlus, followUps)
		}
		return filterWith(tier.Signature, followUps)
	}

	if moderate {
		return filterWith(tier.Day1Plus, followUps)
	}

	return filterWith(tier.Day1, followUps)
}

func evaluateDigestive(s *applicant.State) Result {
	a := s.Answers.Q19
	if a == nil {
		return Result{}
	}
	if !a.Digestive {
		return filter(tier.Day1)
	}

	b := bmi(s)
	if b < q19BMIGuaranteed {
		return filter(tier.GuaranteedPlus)
	}

	if a.CrohnsUC == nil || !*a.CrohnsUC {
		return filter(tier.DeferredPlus)
	}

	followUpYears := 0.0
	if a.FollowUpYears != nil {
		followUpYears = *a.FollowUpYears
	}
	if followUpYears >= q19FollowUp {
		return filter(tier.DeferredPlus)
	}

	surgeries := 0
	if a.Surgeries != nil {
		surgeries = *a.Surgeries
	}
	flare := a.FlareLast12Months != nil && *a.FlareLast12Months
	if surgeries >= 2 || flare {
		return filter(tier.Signature)
	}

	if b >= q19BMISignatureMin && b <= q19BMISignatureMax {
		return filter(tier.Signature)
	}
	return filter(tier.Day1Plus)
}

func evaluateEndocrine(s *applicant.State) Result {
	a := s.Answers.Q20
	if a == nil {
		return Result{}
	}
	if !a.Endocrine {
		return filter(tier.Day1)
	}
	return filter(tier.Signature)
}

func evaluateNeuromuscular(s *applicant.State) Result {
	a := s.Answers.Q21
	if a == nil {
		return Result{}
	}
	if !a.Neuromuscular {
		return filter(tier.Day1)
	}
	if a.MSProgressive != nil && *a.MSProgressive {
		return filter(tier.GuaranteedPlus)
	}

	// The q18 answer maps to a tier; anything worse than Signature there
	// pushes this one to Guaranteed+.
	mentalHealthTier := tier.Day1
	if s.Answers.HasSevereMentalHealth() {
		mentalHealthTier = tier.Signature
	} else if s.Answers.HasModerateMentalHealth() {
		mentalHealthTier = tier.Day1Plus
	}
	if age(s) > ageNeuromuscular || tier.WorseThan(tier.Outcome(mentalHealthTier), tier.Outcome(tier.Signature)) {
		return filter(tier.GuaranteedPlus)
	}

	attacks := 0
	if a.AttacksLast12Months != nil {
		attacks = *a.AttacksLast12Months
	}
	ambulatory := a.AmbulatoryIssues != nil && *a.AmbulatoryIssues
	if ambulatory || attacks > 2 {
		return filter(tier.DeferredPlus)
	}
	return filter(tier.Signature)
}

func evaluateArthritis(s *applicant.State) Result {
	a := s.Answers.Q22
	if a == nil {
		return Result{}
	}
	if !a.Arthritis {
		return filter(tier.Day1)
	}

	if s.Answers.HasDiabetes() || s.Answers.HasGenitourinaryHistory() || bmi(s) > q22BMIGuaranteed {
		return filter(tier.GuaranteedPlus)
	}

	daily := a.DailySymptoms != nil && *a.DailySymptoms
	surgery := a.Surgery != nil && *a.Surgery
	if daily || surgery {
		return filter(tier.Signature)
	}

	if a.OnMedication != nil && *a.OnMedication {
		if age(s) < ageArthritis {
			return filter(tier.Signature)
		}
		return filter(tier.Day1Plus)
	}
	return filter(tier.Day1)
}
