package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorgan/talentmatch/internal/types"
)

func profileWithDegree(level types.DegreeLevel) *types.CandidateProfile {
	return &types.CandidateProfile{
		Education: []types.EducationEntry{{Degree: string(level), Level: level}},
	}
}

func requireDegree(text string) *types.JobRequirement {
	return &types.JobRequirement{RequiredEducation: &types.EducationRequirement{MinDegree: text}}
}

func TestScoreEducation_NoRequirementIsNeutral(t *testing.T) {
	score := scoreEducation(profileWithDegree(types.DegreeBachelor), &types.JobRequirement{})
	assert.Equal(t, neutralScore, score)
}

func TestScoreEducation_UnrecognizedRequirementIsNeutral(t *testing.T) {
	score := scoreEducation(profileWithDegree(types.DegreeBachelor), requireDegree("some bootcamp"))
	assert.Equal(t, neutralScore, score)
}

func TestScoreEducation_ExactMatch(t *testing.T) {
	score := scoreEducation(profileWithDegree(types.DegreeBachelor), requireDegree("Bachelor's degree"))
	assert.Equal(t, 80, score)
}

func TestScoreEducation_BonusPerLevelAbove(t *testing.T) {
	assert.Equal(t, 90, scoreEducation(profileWithDegree(types.DegreeMaster), requireDegree("bachelor")))
	assert.Equal(t, 100, scoreEducation(profileWithDegree(types.DegreeDoctorate), requireDegree("bachelor")))
}

func TestScoreEducation_ShortfallScalesDown(t *testing.T) {
	// Bachelor (3) against PhD (5): 3*80/5 = 48.
	assert.Equal(t, 48, scoreEducation(profileWithDegree(types.DegreeBachelor), requireDegree("PhD")))
}

func TestScoreEducation_ShortfallFloor(t *testing.T) {
	score := scoreEducation(&types.CandidateProfile{}, requireDegree("master"))
	assert.Equal(t, 40, score)
}

func TestDegreeRankFromText(t *testing.T) {
	assert.Equal(t, 5, degreeRankFromText("Ph.D in Computer Science"))
	assert.Equal(t, 4, degreeRankFromText("MBA preferred"))
	assert.Equal(t, 3, degreeRankFromText("bachelor's or equivalent"))
	assert.Equal(t, 1, degreeRankFromText("diploma"))
	assert.Zero(t, degreeRankFromText("no formal requirement"))
}
