package catalog

import "strings"

// QuestionsForCondition returns the questions whose topic keywords match a
// mentioned condition. Matching is case-insensitive and bidirectional on
// substrings, so "type 2 diabetes" hits the "diabetes" topic and "heart"
// hits "heart disease". Results follow catalog order.
func QuestionsForCondition(condition string) []ID {
	needle := strings.ToLower(strings.TrimSpace(condition))
	if needle == "" {
		return nil
	}
	var out []ID
	for _, id := range append(MandatoryOrder(), fallbackOrder...) {
		q := questions[id]
		for _, topic := range q.Topics {
			if strings.Contains(needle, topic) || strings.Contains(topic, needle) {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

// ConditionsInText returns the topic keywords mentioned in a free-form
// message. Matching is on whole words so short topics do not fire inside
// unrelated text. Results follow catalog order without duplicates.
func ConditionsInText(text string) []string {
	lowered := strings.ToLower(text)
	seen := make(map[string]bool)
	var out []string
	for _, id := range append(MandatoryOrder(), fallbackOrder...) {
		for _, topic := range questions[id].Topics {
			if seen[topic] || !containsWord(lowered, topic) {
				continue
			}
			seen[topic] = true
			out = append(out, topic)
		}
	}
	return out
}

func containsWord(text, phrase string) bool {
	for from := 0; ; {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if (start == 0 || !isWordChar(text[start-1])) &&
			(end == len(text) || !isWordChar(text[end])) {
			return true
		}
		from = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

// QuestionsForConditions unions QuestionsForCondition over every condition,
// preserving catalog order and dropping duplicates.
func QuestionsForConditions(conditions []string) []ID {
	seen := make(map[ID]bool)
	for _, c := range conditions {
		for _, id := range QuestionsForCondition(c) {
			seen[id] = true
		}
	}
	var out []ID
	for _, id := range append(MandatoryOrder(), fallbackOrder...) {
		if seen[id] {
			out = append(out, id)
		}
	}
	return out
}
