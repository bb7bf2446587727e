package match

import (
	"strings"
)

const industryBonusCap = 10

// scoreSkills blends required-skill coverage (80%) with preferred-skill
// coverage (20%) and adds a small bonus for skills relevant to the job's
// industry. No skill requirements at all scores a full 100.
func (s *Scorer) scoreSkills(resumeSkills, required, preferred []string, industry string) int {
	if len(required) == 0 && len(preferred) == 0 {
		return 100
	}
	held := skillSet(resumeSkills)

	requiredScore := 100.0
	if len(required) > 0 {
		requiredScore = coverage(held, required) * 100
	}
	preferredScore := 0.0
	if len(preferred) > 0 {
		preferredScore = coverage(held, preferred) * 100
	}

	var base float64
	if len(required) > 0 {
		base = requiredScore*0.8 + preferredScore*0.2
	} else {
		base = preferredScore
	}

	industrySkills := skillSet(s.store.SkillsByIndustry(industry))
	bonus := 0
	for skill := range held {
		if industrySkills[skill] {
			bonus += 2
		}
	}
	if bonus > industryBonusCap {
		bonus = industryBonusCap
	}

	score := int(base) + bonus
	if score > 100 {
		score = 100
	}
	return score
}

// matchingSkills returns the profile skills that appear in the job's combined
// skill lists, preserving the profile's order.
func matchingSkills(resumeSkills, jobSkills []string) []string {
	wanted := skillSet(jobSkills)
	var out []string
	for _, skill := range resumeSkills {
		if wanted[strings.ToLower(skill)] {
			out = append(out, skill)
		}
	}
	return out
}

// missingSkills returns the required skills the profile does not hold, in the
// requirement's original casing and order.
func missingSkills(resumeSkills, required []string) []string {
	held := skillSet(resumeSkills)
	var out []string
	for _, skill := range required {
		if !held[strings.ToLower(skill)] {
			out = append(out, skill)
		}
	}
	return out
}

func skillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return set
}

func coverage(held map[string]bool, wanted []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	matches := 0
	for _, skill := range wanted {
		if held[strings.ToLower(skill)] {
			matches++
		}
	}
	return float64(matches) / float64(len(wanted))
}
