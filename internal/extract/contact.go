package extract

import (
	"regexp"
	"strings"

	"github.com/jmorgan/talentmatch/internal/types"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Domestic first, then an international fallback.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{2,4}[-.\s]?\d{3,4}[-.\s]?\d{2,4}\b`),
	}

	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9_-]+`)

	locationRe = regexp.MustCompile(`^([A-Z][A-Za-z .'-]+),\s*([A-Z][A-Za-z .]{1,})$`)

	namePartRe = regexp.MustCompile(`^[A-Z][A-Za-z.'-]*$`)

	honorificRe = regexp.MustCompile(`^(?:Mr|Mrs|Ms|Dr|Prof)\.?\s+(.+)$`)
	nameLabelRe = regexp.MustCompile(`(?i)^name\s*:\s*(.+)$`)
)

// Words that disqualify a line from being read as a person's name.
var nameStopWords = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true,
	"profile": true, "summary": true, "objective": true, "contact": true,
	"experience": true, "education": true, "skills": true, "address": true,
	"phone": true, "email": true, "page": true, "confidential": true,
}

// nameMatcher inspects the document and returns a candidate name, or "" when
// the strategy does not apply. Matchers run in order and the first hit wins.
type nameMatcher func(lines []string) string

var nameMatchers = []nameMatcher{
	matchLabeledName,
	matchHonorificName,
	matchLeadingName,
}

func (e *Extractor) extractContact(text string, lines []string) types.ContactInfo {
	info := types.ContactInfo{
		Email:    emailRe.FindString(text),
		LinkedIn: strings.ToLower(linkedinRe.FindString(text)),
	}
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			info.Phone = strings.TrimSpace(m)
			break
		}
	}

	head := headLines(lines, 10)
	for _, m := range nameMatchers {
		if name := m(head); name != "" {
			info.Name = name
			break
		}
	}
	for _, line := range head {
		if m := locationRe.FindStringSubmatch(line); m != nil && !likelyName(line) {
			info.Location = line
			break
		}
	}
	return info
}

// matchLabeledName handles explicit "Name: Jane Doe" lines.
func matchLabeledName(lines []string) string {
	for _, line := range lines {
		if m := nameLabelRe.FindStringSubmatch(line); m != nil {
			candidate := strings.TrimSpace(m[1])
			if likelyName(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// matchHonorificName handles lines prefixed with a title such as "Dr. Jane Doe".
func matchHonorificName(lines []string) string {
	for _, line := range lines {
		if m := honorificRe.FindStringSubmatch(line); m != nil {
			candidate := strings.TrimSpace(m[1])
			if likelyName(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// matchLeadingName treats the first few non-empty lines as name candidates,
// which covers the common resume layout of a bare name at the top.
func matchLeadingName(lines []string) string {
	seen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		seen++
		if likelyName(line) {
			return line
		}
		if seen >= 3 {
			break
		}
	}
	return ""
}

// likelyName reports whether a line reads like a person's name: one to five
// capitalized parts with no digits and no resume boilerplate words. A single
// part must be at least three characters so initials and headers don't pass.
func likelyName(line string) bool {
	if strings.ContainsAny(line, "0123456789@/") {
		return false
	}
	parts := strings.Fields(line)
	if len(parts) < 1 || len(parts) > 5 {
		return false
	}
	if len(parts) == 1 && len(parts[0]) < 3 {
		return false
	}
	for _, p := range parts {
		if len(p) > 25 || !namePartRe.MatchString(p) {
			return false
		}
		if nameStopWords[strings.ToLower(strings.Trim(p, ".,"))] {
			return false
		}
	}
	return true
}

func headLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
