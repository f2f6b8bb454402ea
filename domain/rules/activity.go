package rules

import (
	"underwrite/domain/applicant"
	"underwrite/domain/tier"
)

func evaluateExtremeSports(s *applicant.State) Result {
	a := s.Answers.Q23
	if a == nil {
		return Result{}
	}
	if !a.ExtremeSports {
		return filter(tier.Day1)
	}
	if a.HighestRisk != nil && *a.HighestRisk {
		return filter(tier.GuaranteedPlus)
	}
	if a.ModerateRisk != nil && *a.ModerateRisk {
		return filter(tier.Signature)
	}
	return filter(tier.Day1Plus)
}

func evaluateFamilyHistory(s *applicant.State) Result {
	a := s.Answers.Q24
	if a == nil {
		return Result{}
	}
	if !a.FamilyHistory {
		return filter(tier.Day1)
	}
	if a.Hereditary != nil && *a.Hereditary {
		return filter(tier.DeferredPlus)
	}
	if a.MultipleBefore60 != nil && *a.MultipleBefore60 {
		if a.OneBefore50 != nil && *a.OneBefore50 {
			return filter(tier.Signature)
		}
		return filter(tier.Day1Plus)
	}
	return filter(tier.Day1)
}

func evaluateTravel(s *applicant.State) Result {
	a := s.Answers.Q25
	if a == nil {
		return Result{}
	}
	if !a.HighRiskTravel {
		if a.ResideOutside6Months != nil && *a.ResideOutside6Months {
			return filter(tier.Day1Plus)
		}
		return filter(tier.Day1)
	}
	return filter(tier.GuaranteedPlus)
}
