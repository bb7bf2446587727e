package taxonomy

import (
	"regexp"
	"strings"
	"sync"
)

// skillMatchWeight is the contribution of one industry-skill match relative to
// one industry-keyword match when scoring industries.
const skillMatchWeight = 0.5

// DetectIndustry scores the text against every industry's keyword and skill
// sets and returns the best-matching industry label. Ties break toward the
// industry that sorts first in the store's iteration order. Returns
// GeneralIndustry when nothing matches; it never fails.
func (s *Store) DetectIndustry(text string) string {
	textLower := strings.ToLower(text)

	best := GeneralIndustry
	bestScore := 0.0
	for _, industry := range s.Industries() {
		if industry == softSkillsKey {
			continue
		}
		score := s.industryScore(textLower, industry)
		if score > bestScore {
			bestScore = score
			best = industry
		}
	}
	return best
}

func (s *Store) industryScore(textLower, industry string) float64 {
	s.mu.RLock()
	keywords := s.keywords[industry]
	s.mu.RUnlock()

	score := 0.0
	for _, keyword := range keywords {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			score++
		}
	}
	for _, skill := range s.SkillsByIndustry(industry) {
		if MentionsSkill(textLower, strings.ToLower(skill)) {
			score += skillMatchWeight
		}
	}
	return score
}

// MentionsSkill reports whether the lowercased text mentions the lowercased
// skill. Short names like "go" or "r" need word boundaries or they match
// inside unrelated words.
func MentionsSkill(textLower, skill string) bool {
	if len(skill) <= 3 {
		re, err := shortSkillPattern(skill)
		if err != nil {
			return false
		}
		return re.MatchString(textLower)
	}
	return strings.Contains(textLower, skill)
}

var (
	shortSkillMu    sync.Mutex
	shortSkillCache = map[string]*regexp.Regexp{}
)

func shortSkillPattern(skill string) (*regexp.Regexp, error) {
	shortSkillMu.Lock()
	defer shortSkillMu.Unlock()
	if re, ok := shortSkillCache[skill]; ok {
		return re, nil
	}
	re, err := regexp.Compile(`(?:^|[^a-z0-9+#.])` + regexp.QuoteMeta(skill) + `(?:$|[^a-z0-9+#])`)
	if err != nil {
		return nil, err
	}
	shortSkillCache[skill] = re
	return re, nil
}
