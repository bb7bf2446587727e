package extract

import (
	"regexp"
	"strings"
)

var (
	summaryHeaderRe = regexp.MustCompile(`(?i)^(?:professional\s+)?(?:summary|profile|objective|about(?:\s+me)?)\s*:?$`)
	sectionHeaderRe = regexp.MustCompile(`(?i)^(?:work\s+)?(?:experience|education|skills|certifications?|projects|languages|references)\s*:?$`)

	metricRe = regexp.MustCompile(`\d+(?:\.\d+)?\s*(?:%|percent|x\b|k\b|m\b|million|billion|users|customers|clients)|\$\d`)
)

// Verbs that open accomplishment statements.
var achievementVerbs = []string{
	"achieved", "improved", "increased", "reduced", "grew", "launched",
	"delivered", "saved", "generated", "won", "led", "built", "created",
	"drove", "exceeded", "decreased", "accelerated", "expanded",
}

// extractSummary returns the text under a summary-style section header, or
// failing that the first substantial prose line near the top of the document.
func extractSummary(lines []string) string {
	for i, line := range lines {
		if !summaryHeaderRe.MatchString(line) {
			continue
		}
		var parts []string
		for j := i + 1; j < len(lines); j++ {
			l := lines[j]
			if l == "" && len(parts) > 0 {
				break
			}
			if l == "" {
				continue
			}
			if sectionHeaderRe.MatchString(l) || summaryHeaderRe.MatchString(l) {
				break
			}
			parts = append(parts, bulletRe.ReplaceAllString(l, ""))
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}

	// No header: take the first long prose line that is not contact info.
	for _, line := range headLines(lines, 15) {
		if len(line) >= 60 && !strings.Contains(line, "@") && strings.Contains(line, " ") {
			return line
		}
	}
	return ""
}

// extractAchievements collects bullet lines that open with an accomplishment
// verb or carry a quantified outcome.
func extractAchievements(lines []string) []string {
	var found []string
	for _, line := range lines {
		if !bulletRe.MatchString(line) || len(found) >= maxAchievements {
			continue
		}
		body := bulletRe.ReplaceAllString(line, "")
		lower := strings.ToLower(body)
		verbLed := false
		for _, v := range achievementVerbs {
			if strings.HasPrefix(lower, v+" ") {
				verbLed = true
				break
			}
		}
		if verbLed || metricRe.MatchString(lower) {
			found = append(found, body)
		}
	}
	return found
}
