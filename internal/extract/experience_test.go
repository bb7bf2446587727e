package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorgan/talentmatch/internal/taxonomy"
	"github.com/jmorgan/talentmatch/internal/types"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(taxonomy.NewStore(), WithReferenceYear(2025))
}

func TestParseDateRange_MonthYearForm(t *testing.T) {
	r, ok := parseDateRange("Senior Engineer, Jan 2019 - Dec 2021")
	require.True(t, ok)
	assert.Equal(t, "Jan 2019", r.Start)
	assert.Equal(t, "Dec 2021", r.End)
	assert.False(t, r.Open())
}

func TestParseDateRange_PresentMarksOpenRange(t *testing.T) {
	r, ok := parseDateRange("Mar 2020 - Present")
	require.True(t, ok)
	assert.Equal(t, "Mar 2020", r.Start)
	assert.True(t, r.Open())
}

func TestParseDateRange_YearOnlyForm(t *testing.T) {
	r, ok := parseDateRange("2015 to 2018")
	require.True(t, ok)
	assert.Equal(t, "2015", r.Start)
	assert.Equal(t, "2018", r.End)
}

func TestParseDateRange_CurrentIsOpen(t *testing.T) {
	r, ok := parseDateRange("2021 - Current")
	require.True(t, ok)
	assert.True(t, r.Open())
}

func TestParseDateRange_NoDates(t *testing.T) {
	_, ok := parseDateRange("Software Engineer at Acme")
	assert.False(t, ok)
}

func TestRangeYears_MonthLevelRangeCountsInclusiveMonths(t *testing.T) {
	r, ok := parseDateRange("Jan 2019 - Dec 2021")
	require.True(t, ok)
	assert.InDelta(t, 3.0, rangeYears(r, 2025), 0.001)
}

func TestRangeYears_PartialYear(t *testing.T) {
	r, ok := parseDateRange("Mar 2020 - Jun 2020")
	require.True(t, ok)
	assert.InDelta(t, 4.0/12, rangeYears(r, 2025), 0.001)
}

func TestRangeYears_OpenRangeClosesAtReferenceYear(t *testing.T) {
	r, ok := parseDateRange("2021 - Present")
	require.True(t, ok)
	assert.InDelta(t, 4.0, rangeYears(r, 2025), 0.001)
}

func TestRangeYears_OpenRangeStartingAtReferenceYear(t *testing.T) {
	r, ok := parseDateRange("2025 - Present")
	require.True(t, ok)
	assert.Zero(t, rangeYears(r, 2025))
}

func TestRangeYears_InvertedRangeCollapsesToZero(t *testing.T) {
	r, ok := parseDateRange("2022 - 2020")
	require.True(t, ok)
	assert.Zero(t, rangeYears(r, 2025))
}

func TestExtractExperience_TitleCompanyAndBullets(t *testing.T) {
	e := newTestExtractor(t)
	lines := []string{
		"Senior Software Engineer",
		"Acme Corp, Austin",
		"Jan 2019 - Dec 2021",
		"- Led migration of billing services",
		"- Reduced deploy time by 40%",
	}

	entries := e.extractExperience(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Software Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Austin", entries[0].Location)
	assert.InDelta(t, 3.0, entries[0].DurationYears, 0.001)
	assert.Len(t, entries[0].Responsibilities, 2)
}

func TestExtractExperience_DateOnTitleLine(t *testing.T) {
	e := newTestExtractor(t)

	entries := e.extractExperience([]string{"Software Engineer (2018 - 2020)"})
	require.Len(t, entries, 1)
	assert.Equal(t, "Software Engineer", entries[0].Title)
	require.NotNil(t, entries[0].DateRange)
	assert.InDelta(t, 2.0, entries[0].DurationYears, 0.001)
}

func TestExtractExperience_MissingDatesDefaultToOneYear(t *testing.T) {
	e := newTestExtractor(t)

	entries := e.extractExperience([]string{"Marketing Manager"})
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].DateRange)
	assert.InDelta(t, 1.0, entries[0].DurationYears, 0.001)
}

func TestExtractExperience_EntryLimit(t *testing.T) {
	e := newTestExtractor(t)
	var lines []string
	for i := range 12 {
		lines = append(lines, fmt.Sprintf("Software Engineer %d", i))
	}

	assert.Len(t, e.extractExperience(lines), 8)
}

func TestExtractExperience_CertificationLinesAreNotTitles(t *testing.T) {
	e := newTestExtractor(t)

	entries := e.extractExperience([]string{
		"AWS Certified Solutions Architect",
		"Bachelor of Engineering, State University",
	})
	assert.Empty(t, entries)
}

func TestTotalExperienceYears_TakesLargerOfClaimAndSum(t *testing.T) {
	e := newTestExtractor(t)
	entries := []types.ExperienceEntry{{DurationYears: 2}, {DurationYears: 2}}

	total := e.totalExperienceYears("10+ years of experience in software", entries)
	assert.Equal(t, 10, total)
}

func TestTotalExperienceYears_SumWinsWithoutClaim(t *testing.T) {
	e := newTestExtractor(t)
	entries := []types.ExperienceEntry{{DurationYears: 3.5}, {DurationYears: 4}}

	assert.Equal(t, 7, e.totalExperienceYears("no explicit claim here", entries))
}

func TestTotalExperienceYears_Capped(t *testing.T) {
	e := newTestExtractor(t)

	total := e.totalExperienceYears("60 years of experience", nil)
	assert.Equal(t, maxTotalYears, total)
}

func TestExperienceLevel_ExecutiveKeywordsWin(t *testing.T) {
	e := newTestExtractor(t)

	level := e.experienceLevel("Founder and junior chess enthusiast", 1)
	assert.Equal(t, types.LevelExecutive, level)
}

func TestExperienceLevel_ConflictingSignalsSettleOnMid(t *testing.T) {
	e := newTestExtractor(t)

	level := e.experienceLevel("Senior developer, former intern", 3)
	assert.Equal(t, types.LevelMid, level)
}

func TestExperienceLevel_YearsThresholds(t *testing.T) {
	e := newTestExtractor(t)

	assert.Equal(t, types.LevelSenior, e.experienceLevel("plain text", 12))
	assert.Equal(t, types.LevelMid, e.experienceLevel("plain text", 6))
	assert.Equal(t, types.LevelJunior, e.experienceLevel("plain text", 3))
	assert.Equal(t, types.LevelEntry, e.experienceLevel("plain text", 1))
}
