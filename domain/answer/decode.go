package answer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"underwrite/domain/catalog"
	"underwrite/domain/core"
)

// decodeStrict unmarshals raw into dst rejecting unknown fields and type
// mismatches, so a payload shaped for a different question fails loudly.
func decodeStrict(id catalog.ID, raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return core.NewShapeError(string(id), err)
	}
	// Trailing garbage after the object is a shape error too.
	if dec.More() {
		return core.NewShapeError(string(id), fmt.Errorf("unexpected trailing data"))
	}
	return nil
}

func nonNegative(id catalog.ID, field string, v *int) error {
	if v != nil && *v < 0 {
		return core.NewShapeError(string(id), fmt.Errorf("%s must not be negative", field))
	}
	return nil
}

func nonNegativeF(id catalog.ID, field string, v *float64) error {
	if v != nil && *v < 0 {
		return core.NewShapeError(string(id), fmt.Errorf("%s must not be negative", field))
	}
	return nil
}

// Record decodes raw as the answer payload for id and stores it. The
// previous answer for id, if any, is overwritten; callers enforce their own
// re-answer policy before calling.
func (a *Answers) Record(id catalog.ID, raw []byte) error {
	switch id {
	case catalog.Sex:
		var v SexAnswer
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if !v.Sex.Valid() {
			return core.NewShapeError(string(id), fmt.Errorf("sex must be %q or %q", Male, Female))
		}
		a.Sex = &v
	case catalog.Tobacco:
		var v Tobacco
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q1 = &v
	case catalog.BodyMass:
		var v BodyMass
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if v.BMI <= 0 {
			return core.NewShapeError(string(id), fmt.Errorf("bmi must be positive"))
		}
		a.Q2 = &v
	case catalog.Occupation:
		var v Occupation
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q3 = &v
	case catalog.Alcohol:
		var v Alcohol
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegative(id, "drinksPerWeek", v.DrinksPerWeek); err != nil {
			return err
		}
		a.Q4 = &v
	case catalog.Marijuana:
		var v Marijuana
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegative(id, "frequencyPerWeek", v.FrequencyPerWeek); err != nil {
			return err
		}
		a.Q5 = &v
	case catalog.IllicitDrugs:
		var v IllicitDrugs
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegativeF(id, "lastUseYears", v.LastUseYears); err != nil {
			return err
		}
		if err := nonNegative(id, "totalUses", v.TotalUses); err != nil {
			return err
		}
		a.Q6 = &v
	case catalog.Treatment:
		var v Treatment
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegativeF(id, "lastTreatmentYears", v.LastTreatmentYears); err != nil {
			return err
		}
		a.Q7 = &v
	case catalog.DUI:
		var v DUI
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q8 = &v
	case catalog.Criminal:
		var v Criminal
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegativeF(id, "sentenceCompletedYears", v.SentenceCompletedYears); err != nil {
			return err
		}
		a.Q9 = &v
	case catalog.PendingMedical:
		var v PendingMedical
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q10 = &v
	case catalog.Cardiovascular:
		var v Cardiovascular
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q11 = &v
	case catalog.Diabetes:
		var v Diabetes
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegativeF(id, "hba1c", v.HbA1c); err != nil {
			return err
		}
		a.Q12 = &v
	case catalog.Cancer:
		var v Cancer
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q13 = &v
	case catalog.ImmuneDisorder:
		var v ImmuneDisorder
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q14 = &v
	case catalog.Respiratory:
		var v Respiratory
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if v.AsthmaSeverity != nil && !v.AsthmaSeverity.Valid() {
			return core.NewShapeError(string(id), fmt.Errorf("asthmaSeverity must be mild, moderate or severe"))
		}
		a.Q15 = &v
	case catalog.Genitourinary:
		var v Genitourinary
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q16 = &v
	case catalog.Neurological:
		var v Neurological
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegative(id, "seizuresLast12Months", v.SeizuresLast12Months); err != nil {
			return err
		}
		a.Q17 = &v
	case catalog.MentalHealth:
		var v MentalHealth
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegative(id, "medicationsCount", v.MedicationsCount); err != nil {
			return err
		}
		a.Q18 = &v
	case catalog.Digestive:
		var v Digestive
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegative(id, "surgeries", v.Surgeries); err != nil {
			return err
		}
		a.Q19 = &v
	case catalog.Endocrine:
		var v Endocrine
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q20 = &v
	case catalog.Neuromuscular:
		var v Neuromuscular
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		if err := nonNegative(id, "attacksLast12Months", v.AttacksLast12Months); err != nil {
			return err
		}
		a.Q21 = &v
	case catalog.Arthritis:
		var v Arthritis
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q22 = &v
	case catalog.ExtremeSports:
		var v ExtremeSports
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q23 = &v
	case catalog.FamilyHistory:
		var v FamilyHistory
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q24 = &v
	case catalog.HighRiskTravel:
		var v Travel
		if err := decodeStrict(id, raw, &v); err != nil {
			return err
		}
		a.Q25 = &v
	default:
		return core.NewUnknownQuestionError(string(id))
	}
	return nil
}
