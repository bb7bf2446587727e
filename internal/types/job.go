package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default matching weights applied when a requirement does not supply its own.
const (
	DefaultSkillsWeight         = 0.35
	DefaultExperienceWeight     = 0.25
	DefaultEducationWeight      = 0.15
	DefaultCertificationsWeight = 0.15
	DefaultIndustryFitWeight    = 0.10
)

// ExperienceRequirement describes the experience a job asks for.
type ExperienceRequirement struct {
	MinYears       int      `json:"min_years" validate:"min=0"`
	PreferredRoles []string `json:"preferred_roles,omitempty"`
}

// EducationRequirement describes the minimum education a job asks for.
type EducationRequirement struct {
	MinDegree string `json:"min_degree,omitempty"`
}

// MatchingWeights control how much each factor contributes to the overall score.
// Weights are clamped to [0, 1] individually; their sum is not validated.
type MatchingWeights struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	Education      float64 `json:"education"`
	Certifications float64 `json:"certifications"`
	IndustryFit    float64 `json:"industry_fit"`
}

// DefaultWeights returns the standard factor weights.
func DefaultWeights() MatchingWeights {
	return MatchingWeights{
		Skills:         DefaultSkillsWeight,
		Experience:     DefaultExperienceWeight,
		Education:      DefaultEducationWeight,
		Certifications: DefaultCertificationsWeight,
		IndustryFit:    DefaultIndustryFitWeight,
	}
}

// Clamped returns a copy with every weight forced into [0, 1].
// Negative or oversized weights are caller configuration mistakes and are
// corrected rather than rejected.
func (w MatchingWeights) Clamped() MatchingWeights {
	return MatchingWeights{
		Skills:         clamp01(w.Skills),
		Experience:     clamp01(w.Experience),
		Education:      clamp01(w.Education),
		Certifications: clamp01(w.Certifications),
		IndustryFit:    clamp01(w.IndustryFit),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// JobRequirement is the structured description of a job opening that profiles
// are scored against. Every field is optional; the scorer degrades gracefully
// when criteria are absent.
type JobRequirement struct {
	Industry               string                 `json:"industry,omitempty"`
	RequiredSkills         []string               `json:"required_skills,omitempty"`
	PreferredSkills        []string               `json:"preferred_skills,omitempty"`
	RequiredExperience     *ExperienceRequirement `json:"required_experience,omitempty"`
	RequiredEducation      *EducationRequirement  `json:"required_education,omitempty"`
	RequiredCertifications []string               `json:"required_certifications,omitempty"`
	MatchingWeights        *MatchingWeights       `json:"matching_weights,omitempty"`
}

// Validate validates the JobRequirement using the validator.
func (r *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Weights returns the requirement's weights clamped to valid ranges,
// or the defaults when none were supplied.
func (r *JobRequirement) Weights() MatchingWeights {
	if r.MatchingWeights == nil {
		return DefaultWeights()
	}
	return r.MatchingWeights.Clamped()
}

// MinDegree returns the lowercase minimum degree, or "" when education
// is unconstrained.
func (r *JobRequirement) MinDegree() string {
	if r.RequiredEducation == nil {
		return ""
	}
	return lowerTrim(r.RequiredEducation.MinDegree)
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
