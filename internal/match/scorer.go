// Package match scores candidate profiles against job requirements. Each
// scoring factor is a pure function of the profile, the requirement, and the
// taxonomy store; missing optional requirement fields default to a neutral
// score so the overall result degrades instead of zeroing out.
package match

import (
	"github.com/jmorgan/talentmatch/internal/taxonomy"
	"github.com/jmorgan/talentmatch/internal/types"
)

// Neutral score when a requirement leaves a factor unconstrained.
const neutralScore = 80

// Scorer computes compatibility reports. It is safe for concurrent use since
// every call only reads the taxonomy store and its own arguments.
type Scorer struct {
	store *taxonomy.Store
}

// New returns a Scorer backed by the given taxonomy store.
func New(store *taxonomy.Store) *Scorer {
	return &Scorer{store: store}
}

// Score compares a candidate profile to a job requirement and returns the
// full match report. Scoring never fails: absent requirement fields score
// neutrally and caller-supplied weights are clamped to [0, 1].
func (s *Scorer) Score(profile *types.CandidateProfile, req *types.JobRequirement) *types.MatchReport {
	resumeSkills := profile.AllSkills()
	jobIndustry := req.Industry
	if jobIndustry == "" {
		jobIndustry = profile.DetectedIndustry
	}

	sub := types.SubScores{
		Skills:         s.scoreSkills(resumeSkills, req.RequiredSkills, req.PreferredSkills, jobIndustry),
		Experience:     scoreExperience(profile, req.RequiredExperience),
		Education:      scoreEducation(profile, req),
		Certifications: scoreCertifications(profile.Certifications, req.RequiredCertifications),
		IndustryFit:    scoreIndustryFit(profile.DetectedIndustry, jobIndustry),
	}

	w := req.Weights()
	overall := int(float64(sub.Skills)*w.Skills +
		float64(sub.Experience)*w.Experience +
		float64(sub.Education)*w.Education +
		float64(sub.Certifications)*w.Certifications +
		float64(sub.IndustryFit)*w.IndustryFit)
	if overall > 100 {
		overall = 100
	}
	if overall < 0 {
		overall = 0
	}

	report := &types.MatchReport{
		OverallScore:   overall,
		SubScores:      sub,
		MatchingSkills: matchingSkills(resumeSkills, append(append([]string(nil), req.RequiredSkills...), req.PreferredSkills...)),
		MissingSkills:  missingSkills(resumeSkills, req.RequiredSkills),
		ExperienceGap:  experienceGap(profile, req.RequiredExperience),
		IndustryContext: types.IndustryContext{
			ResumeIndustry: profile.DetectedIndustry,
			JobIndustry:    jobIndustry,
			Match:          profile.DetectedIndustry == jobIndustry,
		},
	}
	report.Strengths = s.identifyStrengths(profile, req, report)
	report.Concerns = identifyConcerns(profile, req, report)
	report.Recommendations = s.buildRecommendations(profile, req, report)
	return report
}
