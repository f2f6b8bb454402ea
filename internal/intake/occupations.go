package intake

import (
	"regexp"
	"strings"
)

// Occupation watch lists for the occupation question. Matching is fuzzy in
// both directions so a short description still hits a longer list entry.
var HighRiskOccupations = []string{
	"commercial diving",
	"deep-sea construction",
	"salvage",
	"demolition diver",
	"marine harvesting",
	"oil rig",
	"cable laying",
	"pipe laying",
	"diplomat",
	"politician",
	"journalist travelling in high-risk countries",
	"military personnel deployed",
	"military personnel under order to deploy in the next 12 months",
	"stunt work",
	"exotic dancer",
	"adult film industry",
}

var ModerateRiskOccupations = []string{
	"working at heights over 30 ft (10m)",
	"offshore fishing",
	"underground mining",
	"offshore mining",
	"logging",
	"forestry (excluding log hauler)",
	"hydro lineman",
	"power lineman",
	"pilot (except on a scheduled commercial airline)",
}

var (
	normalizedHighRisk     = normalizeList(HighRiskOccupations)
	normalizedModerateRisk = normalizeList(ModerateRiskOccupations)
)

var (
	nonAlnumPattern    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	occupationCleanup  = regexp.MustCompile(`[,.;!?]`)
	trailingAndPattern = regexp.MustCompile(`(?i)\band\b.*$`)
)

func normalizeList(values []string) []string {
	normalized := make([]string, len(values))
	for i, v := range values {
		normalized[i] = normalizeForMatch(v)
	}
	return normalized
}

func normalizeWhitespace(value string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(value, " "))
}

func normalizeForMatch(value string) string {
	lowered := strings.ToLower(value)
	lowered = nonAlnumPattern.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(lowered, " "))
}

func matchesNormalizedList(target string, list []string) bool {
	if target == "" {
		return false
	}
	for _, entry := range list {
		if entry == "" {
			continue
		}
		if strings.Contains(target, entry) || strings.Contains(entry, target) {
			return true
		}
	}
	return false
}

func containsHighRiskKeyword(message string) bool {
	return matchesNormalizedList(normalizeForMatch(message), normalizedHighRisk)
}

func containsModerateRiskKeyword(message string) bool {
	return matchesNormalizedList(normalizeForMatch(message), normalizedModerateRisk)
}
