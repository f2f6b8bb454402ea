// Package testkit generates synthetic underwriting portfolios by walking
// the real engine with randomized but plausible answers. It backs demo
// environments and the analytics fixtures.
package testkit

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"

	"underwrite/domain/answer"
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
	"underwrite/domain/underwriting"
	"underwrite/models"
)

// PortfolioConfig configures the synthetic portfolio generator
type PortfolioConfig struct {
	SessionCount int     `json:"session_count"`
	SmokerRate   float64 `json:"smoker_rate"`
	DrinkerRate  float64 `json:"drinker_rate"`
	RiskRate     float64 `json:"risk_rate"`
	AbandonRate  float64 `json:"abandon_rate"`
	MeanBMI      float64 `json:"mean_bmi"`
	StdDevBMI    float64 `json:"stddev_bmi"`
	Seed         int64   `json:"seed"`
}

// DefaultPortfolioConfig returns sensible defaults for a demo portfolio
func DefaultPortfolioConfig() PortfolioConfig {
	return PortfolioConfig{
		SessionCount: 200,
		SmokerRate:   0.18,
		DrinkerRate:  0.55,
		RiskRate:     0.06,
		AbandonRate:  0.15,
		MeanBMI:      27.0,
		StdDevBMI:    4.5,
		Seed:         42,
	}
}

// PortfolioGenerator produces synthetic sessions through the real engine
type PortfolioGenerator struct {
	config PortfolioConfig
	rng    *rand.Rand
}

// NewPortfolioGenerator creates a new portfolio generator
func NewPortfolioGenerator(config PortfolioConfig) *PortfolioGenerator {
	return &PortfolioGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateSessions generates a full synthetic portfolio
func (g *PortfolioGenerator) GenerateSessions() ([]*models.Session, error) {
	sessions := make([]*models.Session, 0, g.config.SessionCount)
	for i := 0; i < g.config.SessionCount; i++ {
		session, err := g.generateSession()
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// generateSession walks one applicant through the question flow
func (g *PortfolioGenerator) generateSession() (*models.Session, error) {
	session := models.NewSession()
	state := session.State.State

	age := 20 + g.rng.Intn(50)
	height := 150.0 + g.rng.Float64()*45
	bmi := g.config.MeanBMI + g.rng.NormFloat64()*g.config.StdDevBMI
	if bmi < 16 {
		bmi = 16
	}
	bmi = math.Round(bmi*10) / 10
	weight := math.Round(bmi * (height / 100) * (height / 100))

	if err := underwriting.UpdateDemographics(state, underwriting.Demographics{
		Age:      &age,
		HeightCM: &height,
		WeightKG: &weight,
	}); err != nil {
		return nil, err
	}
	underwriting.Recompute(state)

	// Some applicants walk away mid-flow
	maxSteps := 40
	if g.rng.Float64() < g.config.AbandonRate {
		maxSteps = 1 + g.rng.Intn(6)
	}

	for step := 0; step < maxSteps; step++ {
		if state.Declined || state.Completed || state.CurrentQuestion == nil {
			break
		}
		id := *state.CurrentQuestion
		payload, err := g.answerFor(id, state)
		if err != nil {
			return nil, err
		}
		if err := underwriting.AnswerQuestion(state, id, payload); err != nil {
			return nil, fmt.Errorf("answer %s: %w", id, err)
		}
	}

	return session, nil
}

func (g *PortfolioGenerator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func boolPtr(v bool) *bool       { return &v }
func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

// answerFor generates a plausible payload for one question. Most answers
// are clean; risk flags fire at the configured rates.
func (g *PortfolioGenerator) answerFor(id catalog.ID, state *applicant.State) ([]byte, error) {
	risky := g.chance(g.config.RiskRate)

	var v interface{}
	switch id {
	case catalog.Sex:
		sex := answer.Male
		if g.chance(0.5) {
			sex = answer.Female
		}
		v = answer.SexAnswer{Sex: sex}
	case catalog.Tobacco:
		v = answer.Tobacco{Tobacco: g.chance(g.config.SmokerRate)}
	case catalog.BodyMass:
		bmi := g.config.MeanBMI + g.rng.NormFloat64()*g.config.StdDevBMI
		if state.BMI != nil {
			bmi = *state.BMI
		}
		v = answer.BodyMass{BMI: math.Round(bmi*10) / 10}
	case catalog.Occupation:
		occ := answer.Occupation{Working: g.chance(0.9)}
		if occ.Working && risky {
			occ.HighRiskOccupation = boolPtr(true)
		}
		v = occ
	case catalog.Alcohol:
		a := answer.Alcohol{Alcohol: g.chance(g.config.DrinkerRate)}
		if a.Alcohol {
			a.DrinksPerWeek = intPtr(1 + g.rng.Intn(20))
		}
		v = a
	case catalog.Marijuana:
		m := answer.Marijuana{Marijuana: risky}
		if m.Marijuana {
			m.MixedWithTobacco = boolPtr(g.chance(0.3))
			m.FrequencyPerWeek = intPtr(1 + g.rng.Intn(6))
		}
		v = m
	case catalog.IllicitDrugs:
		d := answer.IllicitDrugs{IllicitDrugs: risky}
		if d.IllicitDrugs {
			d.LastUseYears = floatPtr(float64(g.rng.Intn(10)))
			d.OnlyExperimental = boolPtr(g.chance(0.5))
			d.TotalUses = intPtr(1 + g.rng.Intn(10))
		}
		v = d
	case catalog.Treatment:
		tr := answer.Treatment{Treatment: risky}
		if tr.Treatment {
			tr.AlcoholOnly = boolPtr(g.chance(0.6))
			tr.LastTreatmentYears = floatPtr(float64(g.rng.Intn(12)))
		}
		v = tr
	case catalog.DUI:
		d := answer.DUI{DUI: risky}
		if d.DUI {
			d.MultipleDUIs = boolPtr(g.chance(0.25))
		}
		v = d
	case catalog.Criminal:
		c := answer.Criminal{Criminal: risky}
		if c.Criminal {
			c.MultipleCharges = boolPtr(g.chance(0.3))
			c.Incarcerated6MonthsPlus = boolPtr(g.chance(0.3))
			c.SentenceCompletedYears = floatPtr(float64(g.rng.Intn(8)))
		}
		v = c
	case catalog.PendingMedical:
		v = answer.PendingMedical{
			PendingSymptoms: risky,
			PendingTests:    g.chance(g.config.RiskRate),
		}
	case catalog.Cardiovascular:
		cv := answer.Cardiovascular{HeartDisease: risky}
		if cv.HeartDisease {
			cv.Stable = boolPtr(g.chance(0.7))
			cv.DiagnosedYears = floatPtr(float64(1 + g.rng.Intn(10)))
			cv.LastFollowUpYears = floatPtr(g.rng.Float64() * 3)
		}
		v = cv
	case catalog.Diabetes:
		db := answer.Diabetes{Diabetes: risky}
		if db.Diabetes {
			db.Type1 = boolPtr(g.chance(0.2))
			db.Complications = boolPtr(g.chance(0.2))
			db.HbA1c = floatPtr(6.0 + g.rng.Float64()*4)
			db.OnMedication = boolPtr(g.chance(0.8))
		}
		v = db
	case catalog.Cancer:
		v = answer.Cancer{Cancer: risky}
	case catalog.ImmuneDisorder:
		v = answer.ImmuneDisorder{ImmuneDisorder: risky}
	case catalog.Respiratory:
		r := answer.Respiratory{Respiratory: risky}
		if r.Respiratory {
			r.Asthma = boolPtr(true)
			severity := answer.AsthmaMild
			if g.chance(0.3) {
				severity = answer.AsthmaModerate
			}
			r.AsthmaSeverity = &severity
		}
		v = r
	case catalog.Genitourinary:
		gu := answer.Genitourinary{EverDiagnosed: risky}
		if gu.EverDiagnosed {
			gu.DiagnosedLast2Years = boolPtr(g.chance(0.5))
			gu.FollowUpNormal = boolPtr(g.chance(0.8))
		}
		v = gu
	case catalog.Neurological:
		n := answer.Neurological{Neurological: risky}
		if n.Neurological {
			n.Seizures = boolPtr(g.chance(0.4))
			n.SeizuresLast12Months = intPtr(g.rng.Intn(3))
		}
		v = n
	case catalog.MentalHealth:
		mh := answer.MentalHealth{SevereMentalHealth: risky}
		if !mh.SevereMentalHealth && g.chance(0.15) {
			mh.ModerateMentalHealth = boolPtr(true)
			mh.MedicationsCount = intPtr(1 + g.rng.Intn(3))
		}
		v = mh
	case catalog.Digestive:
		dg := answer.Digestive{Digestive: risky}
		if dg.Digestive {
			dg.CrohnsUC = boolPtr(g.chance(0.5))
			dg.FollowUpYears = floatPtr(g.rng.Float64() * 5)
			dg.FlareLast12Months = boolPtr(g.chance(0.3))
		}
		v = dg
	case catalog.Endocrine:
		v = answer.Endocrine{Endocrine: risky}
	case catalog.Neuromuscular:
		nm := answer.Neuromuscular{Neuromuscular: risky}
		if nm.Neuromuscular {
			nm.AmbulatoryIssues = boolPtr(g.chance(0.3))
			nm.AttacksLast12Months = intPtr(g.rng.Intn(3))
		}
		v = nm
	case catalog.Arthritis:
		ar := answer.Arthritis{Arthritis: g.chance(0.12)}
		if ar.Arthritis {
			ar.DailySymptoms = boolPtr(g.chance(0.4))
			ar.OnMedication = boolPtr(g.chance(0.6))
		}
		v = ar
	case catalog.ExtremeSports:
		es := answer.ExtremeSports{ExtremeSports: risky}
		if es.ExtremeSports {
			es.ModerateRisk = boolPtr(true)
		}
		v = es
	case catalog.FamilyHistory:
		fh := answer.FamilyHistory{FamilyHistory: g.chance(0.2)}
		if fh.FamilyHistory {
			fh.Hereditary = boolPtr(g.chance(0.5))
			fh.MultipleBefore60 = boolPtr(g.chance(0.2))
			fh.OneBefore50 = boolPtr(g.chance(0.2))
		}
		v = fh
	case catalog.HighRiskTravel:
		t := answer.Travel{HighRiskTravel: risky}
		if t.HighRiskTravel {
			t.ResideOutside6Months = boolPtr(g.chance(0.3))
		}
		v = t
	default:
		return nil, fmt.Errorf("no generator for question %s", id)
	}

	return json.Marshal(v)
}
