// Package taxonomy holds the reference vocabulary of skills, job titles,
// certifications, industry keywords, and education terms, grouped by industry,
// and the industry detector built on top of it.
package taxonomy

import (
	"sort"
	"strings"
	"sync"
)

// GeneralIndustry is the label returned when no industry can be detected.
const GeneralIndustry = "general"

// softSkillsKey is the pseudo-industry holding the cross-cutting soft skill
// vocabulary. It is excluded from industry detection.
const softSkillsKey = "soft_skills"

// EducationVocabulary is the global education keyword set used by the extractor.
type EducationVocabulary struct {
	DegreeTypes  []string `json:"degree_types"`
	Institutions []string `json:"institutions"`
	Fields       []string `json:"fields"`
	Honors       []string `json:"honors"`
}

// Stats summarizes the size of the loaded taxonomy.
type Stats struct {
	Industries          []string `json:"industries"`
	TotalSkills         int      `json:"total_skills"`
	TotalJobTitles      int      `json:"total_job_titles"`
	TotalCertifications int      `json:"total_certifications"`
}

// Store is the taxonomy reference store. Entries keep their display case;
// lookups fold case. Reads are safe for concurrent use; the add operations
// serialize through a single writer lock.
type Store struct {
	mu sync.RWMutex

	skills    map[string]map[string][]string // industry -> category -> skills
	jobTitles map[string][]string            // industry -> titles
	certs     map[string][]string            // industry -> certifications
	keywords  map[string][]string            // industry -> detection keywords
	education EducationVocabulary
}

// NewStore returns a store populated with the compiled-in default datasets.
func NewStore() *Store {
	return &Store{
		skills:    defaultSkills(),
		jobTitles: defaultJobTitles(),
		certs:     defaultCertifications(),
		keywords:  defaultIndustryKeywords(),
		education: defaultEducationVocabulary(),
	}
}

// Industries returns the known industry labels in deterministic order.
// The order doubles as the tie-break order for industry detection.
func (s *Store) Industries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var industries []string
	for _, m := range []map[string][]string{s.keywords, s.jobTitles, s.certs} {
		for industry := range m {
			if !seen[industry] {
				seen[industry] = true
				industries = append(industries, industry)
			}
		}
	}
	for industry := range s.skills {
		if !seen[industry] {
			seen[industry] = true
			industries = append(industries, industry)
		}
	}
	sort.Strings(industries)
	return industries
}

// SkillsByIndustry returns every skill registered under the industry,
// across all of its categories.
func (s *Store) SkillsByIndustry(industry string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return flattenCategories(s.skills[strings.ToLower(industry)])
}

// AllSkills returns every skill across all industries, deduplicated by
// case-folded name.
func (s *Store) AllSkills() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var all []string
	for _, categories := range s.skills {
		for _, skills := range categories {
			for _, skill := range skills {
				key := strings.ToLower(skill)
				if !seen[key] {
					seen[key] = true
					all = append(all, skill)
				}
			}
		}
	}
	sort.Strings(all)
	return all
}

// SkillCategory finds the category a skill belongs to, preferring the given
// industry before searching the remaining industries. Returns "other" when
// the skill is not in the taxonomy.
func (s *Store) SkillCategory(skill, industry string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skillLower := strings.ToLower(skill)
	if cat := categoryIn(s.skills[strings.ToLower(industry)], skillLower); cat != "" {
		return cat
	}
	for _, categories := range s.skills {
		if cat := categoryIn(categories, skillLower); cat != "" {
			return cat
		}
	}
	return "other"
}

// SoftSkills returns the skills registered under the dedicated soft_skills
// industry group.
func (s *Store) SoftSkills() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return flattenCategories(s.skills[softSkillsKey])
}

// JobTitlesByIndustry returns the titles registered under the industry.
func (s *Store) JobTitlesByIndustry(industry string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.jobTitles[strings.ToLower(industry)]...)
}

// AllJobTitles returns every job title across industries, deduplicated.
func (s *Store) AllJobTitles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dedupeValues(s.jobTitles)
}

// CertificationsByIndustry returns the certifications registered under the industry.
func (s *Store) CertificationsByIndustry(industry string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.certs[strings.ToLower(industry)]...)
}

// AllCertifications returns every certification across industries, deduplicated.
func (s *Store) AllCertifications() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dedupeValues(s.certs)
}

// CertificationIndustry returns the industry a certification is registered
// under, or "" when it is not in the taxonomy.
func (s *Store) CertificationIndustry(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nameLower := strings.ToLower(name)
	industries := make([]string, 0, len(s.certs))
	for industry := range s.certs {
		industries = append(industries, industry)
	}
	sort.Strings(industries)
	for _, industry := range industries {
		for _, cert := range s.certs[industry] {
			if strings.Contains(nameLower, strings.ToLower(cert)) {
				return industry
			}
		}
	}
	return ""
}

// Education returns the education keyword vocabulary.
func (s *Store) Education() EducationVocabulary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return EducationVocabulary{
		DegreeTypes:  append([]string(nil), s.education.DegreeTypes...),
		Institutions: append([]string(nil), s.education.Institutions...),
		Fields:       append([]string(nil), s.education.Fields...),
		Honors:       append([]string(nil), s.education.Honors...),
	}
}

// AddSkills appends skills to the industry/category, skipping case-folded
// duplicates. Creates the industry and category on first use and returns the
// number of skills actually added.
func (s *Store) AddSkills(industry, category string, skills []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	industry = strings.ToLower(strings.TrimSpace(industry))
	category = strings.ToLower(strings.TrimSpace(category))
	if industry == "" || category == "" {
		return 0
	}
	if s.skills[industry] == nil {
		s.skills[industry] = make(map[string][]string)
	}
	before := len(s.skills[industry][category])
	s.skills[industry][category] = appendMissing(s.skills[industry][category], skills)
	return len(s.skills[industry][category]) - before
}

// AddJobTitles appends job titles to the industry, skipping case-folded
// duplicates, and returns the number actually added.
func (s *Store) AddJobTitles(industry string, titles []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return 0
	}
	before := len(s.jobTitles[industry])
	s.jobTitles[industry] = appendMissing(s.jobTitles[industry], titles)
	return len(s.jobTitles[industry]) - before
}

// AddCertifications appends certifications to the industry, skipping
// case-folded duplicates, and returns the number actually added.
func (s *Store) AddCertifications(industry string, certs []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return 0
	}
	before := len(s.certs[industry])
	s.certs[industry] = appendMissing(s.certs[industry], certs)
	return len(s.certs[industry]) - before
}

// Stats reports the current taxonomy size.
func (s *Store) Stats() Stats {
	industries := s.Industries()

	s.mu.RLock()
	defer s.mu.RUnlock()

	certCount := 0
	for _, certs := range s.certs {
		certCount += len(certs)
	}
	return Stats{
		Industries:          industries,
		TotalSkills:         len(dedupeFromSkills(s.skills)),
		TotalJobTitles:      len(dedupeValues(s.jobTitles)),
		TotalCertifications: certCount,
	}
}

func categoryIn(categories map[string][]string, skillLower string) string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, skill := range categories[name] {
			if strings.ToLower(skill) == skillLower {
				return name
			}
		}
	}
	return ""
}

func flattenCategories(categories map[string][]string) []string {
	if len(categories) == 0 {
		return nil
	}
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var all []string
	for _, name := range names {
		all = append(all, categories[name]...)
	}
	return all
}

func dedupeValues(m map[string][]string) []string {
	seen := make(map[string]bool)
	var all []string
	for _, values := range m {
		for _, v := range values {
			key := strings.ToLower(v)
			if !seen[key] {
				seen[key] = true
				all = append(all, v)
			}
		}
	}
	sort.Strings(all)
	return all
}

func dedupeFromSkills(skills map[string]map[string][]string) []string {
	seen := make(map[string]bool)
	var all []string
	for _, categories := range skills {
		for _, values := range categories {
			for _, v := range values {
				key := strings.ToLower(v)
				if !seen[key] {
					seen[key] = true
					all = append(all, v)
				}
			}
		}
	}
	return all
}

func appendMissing(existing, additions []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, v := range existing {
		seen[strings.ToLower(v)] = true
	}
	for _, v := range additions {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		existing = append(existing, v)
	}
	return existing
}
