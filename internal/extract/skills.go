package extract

import (
	"sort"
	"strings"

	"github.com/jmorgan/talentmatch/internal/taxonomy"
)

// extractSkills matches taxonomy skills against the text and groups the hits
// by taxonomy category. Skills from the detected industry are checked first so
// a skill shared across industries lands in the industry's own category.
func (e *Extractor) extractSkills(text, industry string) map[string][]string {
	lower := strings.ToLower(text)
	soft := softSkillSet(e.store)

	candidates := append(e.store.SkillsByIndustry(industry), e.store.AllSkills()...)

	found := map[string][]string{}
	seen := map[string]bool{}
	for _, skill := range candidates {
		key := strings.ToLower(skill)
		if seen[key] || soft[key] {
			continue
		}
		if !containsSkill(lower, key) {
			continue
		}
		seen[key] = true
		category := e.store.SkillCategory(skill, industry)
		found[category] = append(found[category], skill)
	}
	for category := range found {
		sort.Strings(found[category])
	}
	return found
}

// extractSoftSkills matches the soft-skill vocabulary against the text.
func (e *Extractor) extractSoftSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range e.store.SoftSkills() {
		if containsSkill(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	sort.Strings(found)
	return found
}

// containsSkill reports whether the lowercased text mentions the skill,
// applying the taxonomy's word-boundary rule for short names.
func containsSkill(lower, skill string) bool {
	return taxonomy.MentionsSkill(lower, skill)
}

func softSkillSet(store *taxonomy.Store) map[string]bool {
	set := map[string]bool{}
	for _, s := range store.SoftSkills() {
		set[strings.ToLower(s)] = true
	}
	return set
}

// Spoken languages recognized in a resume's language section, with the
// proficiency qualifiers that may follow them.
var (
	spokenLanguages = []string{
		"English", "Spanish", "French", "German", "Mandarin", "Cantonese",
		"Japanese", "Korean", "Portuguese", "Italian", "Russian", "Arabic",
		"Hindi", "Dutch",
	}
	proficiencyLevels = []string{
		"native", "fluent", "professional", "conversational", "intermediate",
		"basic",
	}
)

// extractLanguages finds spoken languages and any nearby proficiency
// qualifier, returning entries like "Spanish (fluent)".
func extractLanguages(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, lang := range spokenLanguages {
		key := strings.ToLower(lang)
		idx := strings.Index(lower, key)
		if idx < 0 {
			continue
		}
		entry := lang
		window := lower[idx:min(idx+len(key)+40, len(lower))]
		for _, level := range proficiencyLevels {
			if strings.Contains(window, level) {
				entry = lang + " (" + level + ")"
				break
			}
		}
		found = append(found, entry)
	}
	return found
}
