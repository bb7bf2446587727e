package match

import (
	"fmt"
	"strings"

	"github.com/jmorgan/talentmatch/internal/types"
)

const (
	maxStrengths       = 5
	maxConcerns        = 4
	maxRecommendations = 5
)

// identifyStrengths derives strength statements from the computed report and
// the raw profile, capped at five.
func (s *Scorer) identifyStrengths(profile *types.CandidateProfile, req *types.JobRequirement, report *types.MatchReport) []string {
	var strengths []string

	switch n := len(report.MatchingSkills); {
	case n >= 5:
		strengths = append(strengths, fmt.Sprintf("Excellent technical skills match (%d relevant skills)", n))
	case n >= 3:
		strengths = append(strengths, fmt.Sprintf("Good technical skills alignment (%d matching skills)", n))
	}

	requiredYears := 0
	if req.RequiredExperience != nil {
		requiredYears = req.RequiredExperience.MinYears
	}
	switch years := profile.TotalExperienceYears; {
	case float64(years) >= float64(requiredYears)*1.5 && requiredYears > 0:
		strengths = append(strengths, "Extensive experience exceeding requirements")
	case years >= requiredYears && requiredYears > 0:
		strengths = append(strengths, "Meets experience requirements")
	}

	if report.IndustryContext.Match && profile.DetectedIndustry != "" {
		strengths = append(strengths, fmt.Sprintf("Direct %s industry experience", profile.DetectedIndustry))
	}

	if profile.HighestDegree().Rank() >= types.DegreeMaster.Rank() {
		strengths = append(strengths, "Advanced degree qualification")
	}

	if len(req.RequiredCertifications) > 0 {
		matches := len(req.RequiredCertifications) - len(missingCertifications(profile.Certifications, req.RequiredCertifications))
		if matches > 0 {
			strengths = append(strengths, fmt.Sprintf("Relevant professional certifications (%d matches)", matches))
		}
	}

	if len(profile.SoftSkills) >= 3 {
		strengths = append(strengths, "Strong soft skills profile")
	}

	return capList(strengths, maxStrengths)
}

// identifyConcerns derives concern statements, capped at four.
func identifyConcerns(profile *types.CandidateProfile, req *types.JobRequirement, report *types.MatchReport) []string {
	var concerns []string

	switch n := len(report.MissingSkills); {
	case n >= 3:
		concerns = append(concerns, fmt.Sprintf("Missing multiple required skills (%d skills)", n))
	case n > 0:
		concerns = append(concerns, fmt.Sprintf("Missing some required skills: %s", strings.Join(capList(report.MissingSkills, 3), ", ")))
	}

	switch gap := report.ExperienceGap.GapYears; {
	case gap > 2:
		concerns = append(concerns, fmt.Sprintf("Experience gap: %d years below requirement", gap))
	case gap > 0:
		concerns = append(concerns, "Slightly below required experience level")
	}

	if !report.IndustryContext.Match && report.IndustryContext.JobIndustry != "" {
		concerns = append(concerns, fmt.Sprintf("Industry transition from %s to %s",
			report.IndustryContext.ResumeIndustry, report.IndustryContext.JobIndustry))
	}

	if req.RequiredEducation != nil && req.RequiredEducation.MinDegree != "" && len(profile.Education) == 0 {
		concerns = append(concerns, "No formal education listed")
	}

	if len(req.RequiredCertifications) > 0 && len(profile.Certifications) == 0 {
		concerns = append(concerns, "Missing required professional certifications")
	}

	return capList(concerns, maxConcerns)
}

// buildRecommendations suggests concrete next steps for the candidate, capped
// at five.
func (s *Scorer) buildRecommendations(profile *types.CandidateProfile, req *types.JobRequirement, report *types.MatchReport) []string {
	var recs []string

	if len(report.MissingSkills) > 0 {
		recs = append(recs, fmt.Sprintf("Develop skills in: %s", strings.Join(capList(report.MissingSkills, 3), ", ")))
	}

	if gap := report.ExperienceGap.GapYears; gap > 0 {
		recs = append(recs, fmt.Sprintf("Gain %d more years of relevant experience or highlight transferable skills", gap))
	}

	if missing := missingCertifications(profile.Certifications, req.RequiredCertifications); len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Obtain certifications: %s", strings.Join(capList(missing, 2), ", ")))
	}

	if report.IndustryContext.JobIndustry != "" {
		held := skillSet(profile.AllSkills())
		var missingIndustry []string
		for _, skill := range capList(s.store.SkillsByIndustry(report.IndustryContext.JobIndustry), 5) {
			if !held[strings.ToLower(skill)] {
				missingIndustry = append(missingIndustry, skill)
			}
		}
		if len(missingIndustry) > 0 {
			recs = append(recs, fmt.Sprintf("Learn %s-specific skills: %s",
				report.IndustryContext.JobIndustry, strings.Join(capList(missingIndustry, 2), ", ")))
		}
	}

	if len(profile.Achievements) == 0 {
		recs = append(recs, "Add quantifiable achievements to demonstrate impact")
	}

	return capList(recs, maxRecommendations)
}

func capList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
