// Package extract turns raw resume or transcript text into a structured
// candidate profile using the taxonomy store and ordered heuristic matchers.
// Extraction never fails: fields that cannot be parsed come back empty and the
// result is always a complete profile.
package extract

import (
	"time"

	"github.com/jmorgan/talentmatch/internal/taxonomy"
	"github.com/jmorgan/talentmatch/internal/types"
)

// Limits on extracted sequence lengths.
const (
	maxExperienceEntries    = 8
	maxEducationEntries     = 5
	maxCertificationEntries = 8
	maxAchievements         = 8
	maxTotalYears           = 50
)

// Extractor builds candidate profiles from free text.
type Extractor struct {
	store   *taxonomy.Store
	refYear int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithReferenceYear pins the year used to close open-ended ("Present") date
// ranges. Defaults to the current year.
func WithReferenceYear(year int) Option {
	return func(e *Extractor) {
		if year > 0 {
			e.refYear = year
		}
	}
}

// New returns an Extractor backed by the given taxonomy store.
func New(store *taxonomy.Store, opts ...Option) *Extractor {
	e := &Extractor{
		store:   store,
		refYear: time.Now().Year(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReferenceYear returns the year used to close open-ended date ranges.
func (e *Extractor) ReferenceYear() int {
	return e.refYear
}

// Extract analyzes text and returns a structured profile. When industry is
// empty the industry detector runs first. Sparse or malformed input produces a
// sparse but valid profile, never an error.
func (e *Extractor) Extract(text, industry string) *types.CandidateProfile {
	text = CleanText(text)
	if industry == "" {
		industry = e.store.DetectIndustry(text)
	}

	lines := splitLines(text)

	experience := e.extractExperience(lines)
	totalYears := e.totalExperienceYears(text, experience)

	profile := &types.CandidateProfile{
		ContactInfo:          e.extractContact(text, lines),
		DetectedIndustry:     industry,
		Skills:               e.extractSkills(text, industry),
		Experience:           experience,
		Education:            e.extractEducation(lines),
		Certifications:       e.extractCertifications(lines),
		SoftSkills:           e.extractSoftSkills(text),
		Languages:            extractLanguages(text),
		Achievements:         extractAchievements(lines),
		ProfessionalSummary:  extractSummary(lines),
		TotalExperienceYears: totalYears,
		ExperienceLevel:      e.experienceLevel(text, totalYears),
	}
	return profile
}
