package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorgan/talentmatch/internal/types"
)

func TestIdentifyStrengths_StrongCandidate(t *testing.T) {
	s := newTestScorer(t)
	req := &types.JobRequirement{
		Industry:               "technology",
		RequiredSkills:         []string{"python", "sql", "go", "docker", "kubernetes"},
		RequiredExperience:     &types.ExperienceRequirement{MinYears: 4},
		RequiredCertifications: []string{"AWS"},
	}

	report := s.Score(techProfile(), req)
	assert.Len(t, report.Strengths, maxStrengths)
	assert.Contains(t, report.Strengths, "Excellent technical skills match (5 relevant skills)")
	assert.Contains(t, report.Strengths, "Extensive experience exceeding requirements")
	assert.Contains(t, report.Strengths, "Direct technology industry experience")
}

func TestIdentifyStrengths_MeetsExperienceExactly(t *testing.T) {
	s := newTestScorer(t)
	req := &types.JobRequirement{
		RequiredExperience: &types.ExperienceRequirement{MinYears: 7},
	}

	report := s.Score(techProfile(), req)
	assert.Contains(t, report.Strengths, "Meets experience requirements")
	assert.NotContains(t, report.Strengths, "Extensive experience exceeding requirements")
}

func TestIdentifyConcerns_MissingSkillsAndGap(t *testing.T) {
	s := newTestScorer(t)
	profile := &types.CandidateProfile{
		DetectedIndustry:     "marketing",
		TotalExperienceYears: 1,
	}
	req := &types.JobRequirement{
		Industry:           "technology",
		RequiredSkills:     []string{"python", "go", "rust"},
		RequiredExperience: &types.ExperienceRequirement{MinYears: 6},
	}

	report := s.Score(profile, req)
	assert.Contains(t, report.Concerns, "Missing multiple required skills (3 skills)")
	assert.Contains(t, report.Concerns, "Experience gap: 5 years below requirement")
	assert.Contains(t, report.Concerns, "Industry transition from marketing to technology")
}

func TestIdentifyConcerns_SmallGapsSoftened(t *testing.T) {
	s := newTestScorer(t)
	profile := techProfile()
	req := &types.JobRequirement{
		Industry:           "technology",
		RequiredSkills:     []string{"python", "rust"},
		RequiredExperience: &types.ExperienceRequirement{MinYears: 8},
	}

	report := s.Score(profile, req)
	assert.Contains(t, report.Concerns, "Missing some required skills: rust")
	assert.Contains(t, report.Concerns, "Slightly below required experience level")
}

func TestIdentifyConcerns_NoneForPerfectFit(t *testing.T) {
	s := newTestScorer(t)
	req := &types.JobRequirement{
		Industry:       "technology",
		RequiredSkills: []string{"python"},
	}

	report := s.Score(techProfile(), req)
	assert.Empty(t, report.Concerns)
}

func TestBuildRecommendations_CoverGaps(t *testing.T) {
	s := newTestScorer(t)
	profile := &types.CandidateProfile{
		DetectedIndustry:     "technology",
		TotalExperienceYears: 2,
	}
	req := &types.JobRequirement{
		Industry:               "technology",
		RequiredSkills:         []string{"python", "go"},
		RequiredExperience:     &types.ExperienceRequirement{MinYears: 5},
		RequiredCertifications: []string{"AWS", "CISSP", "PMP"},
	}

	report := s.Score(profile, req)
	assert.Contains(t, report.Recommendations, "Develop skills in: python, go")
	assert.Contains(t, report.Recommendations, "Gain 3 more years of relevant experience or highlight transferable skills")
	assert.Contains(t, report.Recommendations, "Obtain certifications: AWS, CISSP")
	assert.Contains(t, report.Recommendations, "Add quantifiable achievements to demonstrate impact")
	assert.LessOrEqual(t, len(report.Recommendations), maxRecommendations)
}

func TestCapList(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Equal(t, []string{"a", "b"}, capList(items, 2))
	assert.Equal(t, items, capList(items, 5))
}
