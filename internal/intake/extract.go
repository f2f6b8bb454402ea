package intake

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"underwrite/domain/answer"
	"underwrite/domain/applicant"
	"underwrite/domain/catalog"
)

// Demographics holds demographic values pulled out of a free-form message.
// Nil fields were not mentioned or did not change.
type Demographics struct {
	Sex    *answer.Sex
	Age    *int
	Height *float64
	Weight *float64
}

// ExtractedAnswer pairs a question with the payload built from the message
type ExtractedAnswer struct {
	ID      catalog.ID
	Payload json.RawMessage
}

// Extraction is the raw result of scanning one message
type Extraction struct {
	Demographics Demographics
	Answers      []ExtractedAnswer
	Conditions   []string
}

// directIDs are the questions intake answers from the message itself; their
// topic keywords are not treated as mentioned conditions.
var directIDs = map[catalog.ID]bool{
	catalog.Sex:        true,
	catalog.Tobacco:    true,
	catalog.BodyMass:   true,
	catalog.Occupation: true,
	catalog.Alcohol:    true,
}

// extractConditions reports condition keywords whose questions go beyond
// what intake answers directly, skipping ones already on the state.
func extractConditions(message string, s *applicant.State) []string {
	known := make(map[string]bool, len(s.MentionedConditions))
	for _, c := range s.MentionedConditions {
		known[c] = true
	}

	var out []string
	for _, condition := range catalog.ConditionsInText(message) {
		if known[condition] {
			continue
		}
		indirect := false
		for _, id := range catalog.QuestionsForCondition(condition) {
			if !directIDs[id] {
				indirect = true
				break
			}
		}
		if indirect {
			out = append(out, condition)
		}
	}
	return out
}

var nonSmokerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bnon[-\s]?smoker\b`),
	regexp.MustCompile(`\bdo(?:es)?n['’]?t smoke\b`),
	regexp.MustCompile(`\bdo not smoke\b`),
	regexp.MustCompile(`\bnever smoke\b`),
	regexp.MustCompile(`\bno tobacco\b`),
	regexp.MustCompile(`\bnon[-\s]?tobacco\b`),
}

var smokerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsmoker\b`),
	regexp.MustCompile(`\bi smoke\b`),
	regexp.MustCompile(`\bi vape\b`),
	regexp.MustCompile(`\bus(?:e|ing) tobacco\b`),
	regexp.MustCompile(`\bsmoking\b`),
}

var negativeWorkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bnot working\b`),
	regexp.MustCompile(`\bunemployed\b`),
	regexp.MustCompile(`\bbetween jobs\b`),
	regexp.MustCompile(`\bstay[-\s]?at[-\s]?home\b`),
	regexp.MustCompile(`\bnot employed\b`),
	regexp.MustCompile(`\bno job\b`),
	regexp.MustCompile(`\bretired\b`),
}

var institutionalizedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bhospital\b`),
	regexp.MustCompile(`\bnursing (?:facility|home)\b`),
	regexp.MustCompile(`\bassisted living\b`),
	regexp.MustCompile(`\bspecialized center\b`),
	regexp.MustCompile(`\bbedridden\b`),
	regexp.MustCompile(`\bwheelchair\b`),
}

var alcoholNegativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bdo(?:es)?n['’]?t drink\b`),
	regexp.MustCompile(`\bdo not drink\b`),
	regexp.MustCompile(`\bno alcohol\b`),
	regexp.MustCompile(`\bi (?:rarely|never) drink\b`),
}

// RE2 has no lookahead, so the self-report pattern captures a trailing unit
// and the caller rejects the match when one is present.
var agePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:i am|i['’]?m)\s*(\d{1,3})\b(\s*(?:cm|mm|kg|lbs|pounds))?`),
	regexp.MustCompile(`\bage\s*(\d{1,3})\b`),
	regexp.MustCompile(`\b(\d{1,3})\s*(?:years?|yrs?)\s*old\b`),
}

var (
	malePattern            = regexp.MustCompile(`\b(?:male|man)\b`)
	femalePattern          = regexp.MustCompile(`\b(?:female|woman)\b`)
	heightPattern          = regexp.MustCompile(`\b(\d{2,3})\s*(?:cm|centimet(?:er|re)s?)\b`)
	weightPattern          = regexp.MustCompile(`\b(\d{2,3})\s*(?:kg|kilograms?)\b`)
	drinksPerWeekPattern   = regexp.MustCompile(`\b(\d{1,2})\s*(?:drink|drinks)\b(?:[^\n]*?\bper\b|\bper\b)\s*\bweek\b`)
	drinksMentionPattern   = regexp.MustCompile(`\b(?:i drink|alcohol)\b`)
	perWeekPattern         = regexp.MustCompile(`\bper week\b`)
	worksPattern           = regexp.MustCompile(`\bwork\b`)
	notWorkPattern         = regexp.MustCompile(`\bnot work\b`)
)

var occupationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)work(?:ing)? as (?:an?|the)?\s+([a-z\s-]{2,60})`),
	regexp.MustCompile(`(?i)i (?:am|was|became) (?:an?|the)?\s+([a-z\s-]{2,60})`),
	regexp.MustCompile(`(?i)i['’]?m (?:an?|the)?\s+([a-z\s-]{2,60})`),
}

// Extract scans a free-form message for demographics and for answers to the
// lifestyle questions that people volunteer up front. Values already on the
// state are not reported again.
func Extract(message string, s *applicant.State) Extraction {
	var out Extraction
	normalized := normalizeWhitespace(message)
	lowercase := strings.ToLower(normalized)

	if age, ok := extractAge(lowercase); ok {
		if s.Age == nil || *s.Age != age {
			out.Demographics.Age = &age
		}
	}

	if sex, ok := extractSex(lowercase); ok {
		if s.Answers.Sex == nil || s.Answers.Sex.Sex != sex {
			out.Demographics.Sex = &sex
		}
	}

	if height, ok := extractHeight(lowercase); ok {
		if s.HeightCM == nil || *s.HeightCM != height {
			out.Demographics.Height = &height
		}
	}

	if weight, ok := extractWeight(lowercase); ok {
		if s.WeightKG == nil || *s.WeightKG != weight {
			out.Demographics.Weight = &weight
		}
	}

	if !s.HasAnswered(catalog.Tobacco) {
		if tobacco, ok := extractTobaccoUsage(lowercase); ok {
			out.Answers = append(out.Answers, mustExtractedAnswer(catalog.Tobacco, answer.Tobacco{Tobacco: tobacco}))
		}
	}

	if !s.HasAnswered(catalog.Occupation) {
		if employment, ok := extractEmploymentInfo(normalized); ok {
			out.Answers = append(out.Answers, mustExtractedAnswer(catalog.Occupation, employment))
		}
	}

	if !s.HasAnswered(catalog.Alcohol) {
		if alcohol, ok := extractAlcoholUsage(lowercase); ok {
			out.Answers = append(out.Answers, mustExtractedAnswer(catalog.Alcohol, alcohol))
		}
	}

	heightForBMI := s.HeightCM
	if out.Demographics.Height != nil {
		heightForBMI = out.Demographics.Height
	}
	weightForBMI := s.WeightKG
	if out.Demographics.Weight != nil {
		weightForBMI = out.Demographics.Weight
	}

	if !s.HasAnswered(catalog.BodyMass) && heightForBMI != nil && weightForBMI != nil {
		bmi := applicant.CalculateBMI(*heightForBMI, *weightForBMI)
		out.Answers = append(out.Answers, mustExtractedAnswer(catalog.BodyMass, answer.BodyMass{BMI: bmi}))
	}

	out.Conditions = extractConditions(lowercase, s)

	return out
}

func mustExtractedAnswer(id catalog.ID, v interface{}) ExtractedAnswer {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return ExtractedAnswer{ID: id, Payload: raw}
}

func extractAge(message string) (int, bool) {
	for _, pattern := range agePatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		if len(m) > 2 && m[2] != "" {
			// A unit followed the number, so it was a measurement
			continue
		}
		age, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if age >= 16 && age <= 110 {
			return age, true
		}
	}
	return 0, false
}

func extractSex(message string) (answer.Sex, bool) {
	if malePattern.MatchString(message) {
		if femalePattern.MatchString(message) {
			return "", false
		}
		return answer.Male, true
	}
	if femalePattern.MatchString(message) {
		return answer.Female, true
	}
	return "", false
}

func extractHeight(message string) (float64, bool) {
	m := heightPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	height, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if height >= 120 && height <= 230 {
		return float64(height), true
	}
	return 0, false
}

func extractWeight(message string) (float64, bool) {
	m := weightPattern.FindStringSubmatch(message)
	if m == nil {
		return 0, false
	}
	weight, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if weight >= 35 && weight <= 250 {
		return float64(weight), true
	}
	return 0, false
}

func extractTobaccoUsage(message string) (bool, bool) {
	for _, pattern := range nonSmokerPatterns {
		if pattern.MatchString(message) {
			return false, true
		}
	}
	for _, pattern := range smokerPatterns {
		if pattern.MatchString(message) {
			return true, true
		}
	}
	return false, false
}

func extractAlcoholUsage(message string) (answer.Alcohol, bool) {
	for _, pattern := range alcoholNegativePatterns {
		if pattern.MatchString(message) {
			return answer.Alcohol{Alcohol: false}, true
		}
	}

	if m := drinksPerWeekPattern.FindStringSubmatch(message); m != nil {
		if drinks, err := strconv.Atoi(m[1]); err == nil {
			return answer.Alcohol{Alcohol: true, DrinksPerWeek: &drinks}, true
		}
	}

	if drinksMentionPattern.MatchString(message) && perWeekPattern.MatchString(message) {
		return answer.Alcohol{Alcohol: true}, true
	}

	return answer.Alcohol{}, false
}

func extractEmploymentInfo(message string) (answer.Occupation, bool) {
	lowered := strings.ToLower(message)
	for _, pattern := range negativeWorkPatterns {
		if pattern.MatchString(lowered) {
			institutionalized := false
			for _, p := range institutionalizedPatterns {
				if p.MatchString(lowered) {
					institutionalized = true
					break
				}
			}
			out := answer.Occupation{Working: false}
			if institutionalized {
				out.Institutionalized = boolPtr(true)
			}
			return out, true
		}
	}

	occupation, found := extractOccupation(message)
	if !found {
		if worksPattern.MatchString(lowered) && !notWorkPattern.MatchString(lowered) {
			out := answer.Occupation{Working: true}
			if containsHighRiskKeyword(message) {
				out.HighRiskOccupation = boolPtr(true)
			} else if containsModerateRiskKeyword(message) {
				out.ModerateRiskOccupation = boolPtr(true)
			}
			return out, true
		}
		return answer.Occupation{}, false
	}

	out := answer.Occupation{Working: true, OccupationDescription: &occupation}
	switch determineOccupationRisk(occupation, message) {
	case "high":
		out.HighRiskOccupation = boolPtr(true)
	case "moderate":
		out.ModerateRiskOccupation = boolPtr(true)
	}
	return out, true
}

func extractOccupation(message string) (string, bool) {
	for _, pattern := range occupationPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}

		extracted := strings.TrimSpace(m[1])
		if extracted == "" {
			continue
		}

		truncated := strings.TrimSpace(occupationCleanup.Split(extracted, 2)[0])
		if truncated == "" {
			continue
		}

		clean := strings.TrimSpace(trailingAndPattern.ReplaceAllString(truncated, ""))
		if clean == "" {
			continue
		}

		return strings.ToLower(clean), true
	}
	return "", false
}

func determineOccupationRisk(occupation, message string) string {
	normalized := normalizeForMatch(occupation)

	if matchesNormalizedList(normalized, normalizedHighRisk) || containsHighRiskKeyword(message) {
		return "high"
	}

	if matchesNormalizedList(normalized, normalizedModerateRisk) || containsModerateRiskKeyword(message) {
		return "moderate"
	}

	if strings.Contains(normalized, "pilot") && !strings.Contains(normalized, "commercial") {
		return "moderate"
	}

	return "low"
}

func boolPtr(b bool) *bool { return &b }
