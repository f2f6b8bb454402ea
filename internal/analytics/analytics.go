// Package analytics summarizes a book of underwriting sessions for the
// audit console: outcome mix, decline reasons, and the shape of the
// applicant population.
package analytics

import (
	"math"
	"sort"

	"underwrite/domain/tier"
	"underwrite/models"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is a summary of one numeric applicant attribute
type Distribution struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// NormalFit carries a fitted normal model plus the modeled share of
// applicants past the heavy-BMI underwriting bands
type NormalFit struct {
	Mu          float64 `json:"mu"`
	Sigma       float64 `json:"sigma"`
	TailAbove40 float64 `json:"tailAbove40"`
	TailAbove44 float64 `json:"tailAbove44"`
}

// ReasonCount is one decline reason with its occurrence count
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Report is the portfolio summary the audit console renders
type Report struct {
	Sessions  int `json:"sessions"`
	Open      int `json:"open"`
	Completed int `json:"completed"`
	Declined  int `json:"declined"`

	PlanCounts     map[tier.Outcome]int `json:"planCounts"`
	DeclineReasons []ReasonCount        `json:"declineReasons"`

	BMI            Distribution `json:"bmi"`
	Age            Distribution `json:"age"`
	QuestionsAsked Distribution `json:"questionsAsked"`

	// BMITierCorrelation is the Pearson correlation between applicant BMI
	// and the rank of the plan they ended on. Zero when fewer than two
	// sessions carry both values.
	BMITierCorrelation float64 `json:"bmiTierCorrelation"`

	BMIFit *NormalFit `json:"bmiFit,omitempty"`
}

// Describe computes summary statistics for one attribute. An empty slice
// yields the zero Distribution rather than an error.
func Describe(data []float64) (Distribution, error) {
	d := Distribution{Count: len(data)}
	if len(data) == 0 {
		return d, nil
	}

	var err error
	if d.Mean, err = stats.Mean(data); err != nil {
		return d, err
	}
	if d.StdDev, err = stats.StandardDeviation(data); err != nil {
		return d, err
	}
	if d.Min, err = stats.Min(data); err != nil {
		return d, err
	}
	if d.Max, err = stats.Max(data); err != nil {
		return d, err
	}
	if d.Median, err = stats.Median(data); err != nil {
		return d, err
	}
	// stats.Percentile rejects samples this small; fall back to the range.
	if len(data) < 4 {
		d.Q25, d.Q75 = d.Min, d.Max
		return d, nil
	}
	if d.Q25, err = stats.Percentile(data, 25); err != nil {
		return d, err
	}
	if d.Q75, err = stats.Percentile(data, 75); err != nil {
		return d, err
	}
	return d, nil
}

// fitNormal models the BMI population as a normal distribution and reports
// the tail mass past the band edges that move applicants off Day1 pricing
func fitNormal(data []float64) *NormalFit {
	if len(data) < 2 {
		return nil
	}
	mu, sigma := stat.MeanStdDev(data, nil)
	if sigma == 0 || math.IsNaN(sigma) {
		return nil
	}
	dist := distuv.Normal{Mu: mu, Sigma: sigma}
	return &NormalFit{
		Mu:          mu,
		Sigma:       sigma,
		TailAbove40: dist.Survival(40),
		TailAbove44: dist.Survival(44),
	}
}

// outcomeOf picks the plan a settled session counts under. Open sessions
// carry only a provisional recommendation and stay out of the mix.
func outcomeOf(s *models.Session) (tier.Outcome, bool) {
	if s.State.State == nil {
		return "", false
	}
	if s.State.Declined {
		return tier.Decline, true
	}
	if !s.State.Completed {
		return "", false
	}
	if s.State.CurrentPlan != nil {
		return *s.State.CurrentPlan, true
	}
	if s.State.RecommendedPlan != nil {
		return *s.State.RecommendedPlan, true
	}
	return "", false
}

// BuildReport summarizes a book of sessions
func BuildReport(sessions []*models.Session) (*Report, error) {
	report := &Report{
		Sessions:   len(sessions),
		PlanCounts: make(map[tier.Outcome]int),
	}

	reasons := make(map[string]int)
	var bmis, ages, asked []float64
	var corrBMI, corrRank []float64

	for _, session := range sessions {
		state := session.State.State
		if state == nil {
			continue
		}

		switch {
		case state.Declined:
			report.Declined++
		case state.Completed:
			report.Completed++
		default:
			report.Open++
		}

		if state.Declined && state.DeclineReason != "" {
			reasons[state.DeclineReason]++
		}

		if outcome, ok := outcomeOf(session); ok {
			report.PlanCounts[outcome]++
			if state.BMI != nil {
				corrBMI = append(corrBMI, *state.BMI)
				corrRank = append(corrRank, float64(tier.Rank(outcome)))
			}
		}

		if state.BMI != nil {
			bmis = append(bmis, *state.BMI)
		}
		if state.Age != nil {
			ages = append(ages, float64(*state.Age))
		}
		asked = append(asked, float64(len(state.QuestionsAsked)))
	}

	var err error
	if report.BMI, err = Describe(bmis); err != nil {
		return nil, err
	}
	if report.Age, err = Describe(ages); err != nil {
		return nil, err
	}
	if report.QuestionsAsked, err = Describe(asked); err != nil {
		return nil, err
	}

	if len(corrBMI) >= 2 {
		corr := stat.Correlation(corrBMI, corrRank, nil)
		if !math.IsNaN(corr) {
			report.BMITierCorrelation = corr
		}
	}

	report.BMIFit = fitNormal(bmis)

	for reason, count := range reasons {
		report.DeclineReasons = append(report.DeclineReasons, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(report.DeclineReasons, func(i, j int) bool {
		if report.DeclineReasons[i].Count != report.DeclineReasons[j].Count {
			return report.DeclineReasons[i].Count > report.DeclineReasons[j].Count
		}
		return report.DeclineReasons[i].Reason < report.DeclineReasons[j].Reason
	})

	return report, nil
}
