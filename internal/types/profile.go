// Package types provides type definitions for structured data shared across the talentmatch system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// ExperienceLevel is a coarse seniority bucket inferred from resume text and years of experience.
type ExperienceLevel string

// Experience level values, ordered from least to most senior.
const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// DegreeLevel classifies an education entry by degree tier.
type DegreeLevel string

// Degree levels, from highest to lowest rank.
const (
	DegreeDoctorate   DegreeLevel = "Doctorate"
	DegreeMaster      DegreeLevel = "Master's"
	DegreeBachelor    DegreeLevel = "Bachelor's"
	DegreeAssociate   DegreeLevel = "Associate"
	DegreeCertificate DegreeLevel = "Certificate"
	DegreeOther       DegreeLevel = "Other"
)

// degreeRank maps degree levels to numeric ranks for comparison.
var degreeRank = map[DegreeLevel]int{
	DegreeDoctorate:   5,
	DegreeMaster:      4,
	DegreeBachelor:    3,
	DegreeAssociate:   2,
	DegreeCertificate: 1,
	DegreeOther:       0,
}

// Rank returns the numeric rank of the degree level (higher is more advanced).
func (d DegreeLevel) Rank() int {
	return degreeRank[d]
}

// ContactInfo holds contact details extracted from a resume. Every field is optional;
// an empty string means the field could not be found.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// DateRange is a parsed employment period. End is "present" for open-ended ranges.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Open reports whether the range has no fixed end date.
func (r DateRange) Open() bool {
	return r.End == "present"
}

// ExperienceEntry is one dated work engagement extracted from a resume.
type ExperienceEntry struct {
	Title            string     `json:"title"`
	Company          string     `json:"company,omitempty"`
	Location         string     `json:"location,omitempty"`
	DateRange        *DateRange `json:"date_range,omitempty"`
	DurationYears    float64    `json:"duration_years"`
	Responsibilities []string   `json:"responsibilities,omitempty"`
}

// EducationEntry is one degree or program extracted from a resume.
type EducationEntry struct {
	Degree         string      `json:"degree"`
	Institution    string      `json:"institution,omitempty"`
	Field          string      `json:"field,omitempty"`
	Level          DegreeLevel `json:"level"`
	GraduationYear int         `json:"graduation_year,omitempty"`
	GPA            float64     `json:"gpa,omitempty"`
	Honors         []string    `json:"honors,omitempty"`
}

// CertificationEntry is one professional certification or license.
type CertificationEntry struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization,omitempty"`
	YearObtained        int    `json:"year_obtained,omitempty"`
	ExpiryYear          int    `json:"expiry_year,omitempty"`
	IsCurrent           bool   `json:"is_current"`
}

// CandidateProfile is the structured result of analyzing one resume or transcript.
// It is immutable once produced: re-analysis yields a new profile.
type CandidateProfile struct {
	ContactInfo          ContactInfo          `json:"contact_info"`
	DetectedIndustry     string               `json:"detected_industry"`
	Skills               map[string][]string  `json:"skills"`
	Experience           []ExperienceEntry    `json:"experience"`
	Education            []EducationEntry     `json:"education"`
	Certifications       []CertificationEntry `json:"certifications"`
	SoftSkills           []string             `json:"soft_skills,omitempty"`
	Languages            []string             `json:"languages,omitempty"`
	Achievements         []string             `json:"achievements,omitempty"`
	ProfessionalSummary  string               `json:"professional_summary,omitempty"`
	ExperienceLevel      ExperienceLevel      `json:"experience_level"`
	TotalExperienceYears int                  `json:"total_experience_years"`
}

// AllSkills flattens the categorized skills map into a single lowercase
// slice, deduplicated, with categories walked in sorted order so the result
// is stable.
func (p *CandidateProfile) AllSkills() []string {
	categories := make([]string, 0, len(p.Skills))
	for category := range p.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var all []string
	seen := make(map[string]bool)
	for _, category := range categories {
		for _, s := range p.Skills[category] {
			lower := lowerTrim(s)
			if lower != "" && !seen[lower] {
				seen[lower] = true
				all = append(all, lower)
			}
		}
	}
	return all
}

// HighestDegree returns the highest-ranked degree level in the profile,
// or DegreeOther if no education was extracted.
func (p *CandidateProfile) HighestDegree() DegreeLevel {
	best := DegreeOther
	for _, edu := range p.Education {
		if edu.Level.Rank() > best.Rank() {
			best = edu.Level
		}
	}
	return best
}
