package match

import (
	"strings"

	"github.com/jmorgan/talentmatch/internal/types"
)

// scoreExperience weighs a years-based component (70%) against role-title
// overlap with the job's preferred roles (30%). Meeting the minimum starts at
// 80 with a small bonus per extra year; a shortfall scales down toward the
// floor of 30. No requirement scores neutrally.
func scoreExperience(profile *types.CandidateProfile, req *types.ExperienceRequirement) int {
	if req == nil {
		return neutralScore
	}

	years := profile.TotalExperienceYears
	var yearsScore float64
	if years >= req.MinYears {
		yearsScore = 80 + float64(years-req.MinYears)*3
		if yearsScore > 100 {
			yearsScore = 100
		}
	} else {
		yearsScore = float64(years) / float64(max(req.MinYears, 1)) * 80
		if yearsScore < 30 {
			yearsScore = 30
		}
	}

	roleScore := 50.0
	if len(req.PreferredRoles) > 0 {
		roleScore = roleOverlap(profile.Experience, req.PreferredRoles) * 100
	}

	return int(yearsScore*0.7 + roleScore*0.3)
}

// roleOverlap is the fraction of preferred roles mentioned in any held title.
func roleOverlap(experience []types.ExperienceEntry, preferredRoles []string) float64 {
	titles := make([]string, 0, len(experience))
	for _, e := range experience {
		titles = append(titles, strings.ToLower(e.Title))
	}
	matches := 0
	for _, role := range preferredRoles {
		lower := strings.ToLower(role)
		for _, title := range titles {
			if strings.Contains(title, lower) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(preferredRoles))
}

func experienceGap(profile *types.CandidateProfile, req *types.ExperienceRequirement) types.ExperienceGap {
	required := 0
	if req != nil {
		required = req.MinYears
	}
	actual := profile.TotalExperienceYears
	return types.ExperienceGap{
		RequiredYears: required,
		ActualYears:   actual,
		GapYears:      max(0, required-actual),
		Exceeds:       actual > required,
	}
}
