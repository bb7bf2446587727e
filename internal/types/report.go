package types

// SubScores holds the per-factor compatibility scores, each in [0, 100].
type SubScores struct {
	Skills         int `json:"skills"`
	Experience     int `json:"experience"`
	Education      int `json:"education"`
	Certifications int `json:"certifications"`
	IndustryFit    int `json:"industry_fit"`
}

// ExperienceGap summarizes the distance between required and actual years.
type ExperienceGap struct {
	RequiredYears int  `json:"required_years"`
	ActualYears   int  `json:"actual_years"`
	GapYears      int  `json:"gap_years"`
	Exceeds       bool `json:"exceeds"`
}

// IndustryContext records the industry comparison behind the industry-fit score.
type IndustryContext struct {
	ResumeIndustry string `json:"resume_industry"`
	JobIndustry    string `json:"job_industry"`
	Match          bool   `json:"match"`
}

// MatchReport is the full result of scoring one candidate profile against one
// job requirement. It is created fresh per (profile, requirement) pair and
// holds no references back to its inputs.
type MatchReport struct {
	OverallScore    int             `json:"overall_score"`
	SubScores       SubScores       `json:"sub_scores"`
	MatchingSkills  []string        `json:"matching_skills"`
	MissingSkills   []string        `json:"missing_skills"`
	ExperienceGap   ExperienceGap   `json:"experience_gap"`
	Strengths       []string        `json:"strengths"`
	Concerns        []string        `json:"concerns"`
	Recommendations []string        `json:"recommendations"`
	IndustryContext IndustryContext `json:"industry_context"`
}
