package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jmorgan/talentmatch/internal/taxonomy"
	"github.com/jmorgan/talentmatch/internal/types"
)

var (
	gradYearRe  = regexp.MustCompile(`(?i)(?:class of\s+)?\b((?:19|20)\d{2})\b`)
	gpaRe       = regexp.MustCompile(`(?i)\bgpa:?\s*([0-4](?:\.\d{1,2})?)\b`)
	eduYearSpan = regexp.MustCompile(`\b((?:19|20)\d{2})\s*[-–—]\s*((?:19|20)\d{2})\b`)
)

// Degree keyword groups checked in precedence order. The first group that
// matches a line sets the entry's level.
var degreeLevels = []struct {
	level    types.DegreeLevel
	keywords []string
}{
	{types.DegreeDoctorate, []string{"ph.d", "phd", "doctorate", "doctoral", "m.d.", " md ", "j.d", " jd "}},
	{types.DegreeMaster, []string{"master", "mba", "m.s.", "m.a.", "msc", "m.eng"}},
	{types.DegreeBachelor, []string{"bachelor", "b.s.", "b.a.", "bsc", "b.eng", "b.tech"}},
	{types.DegreeAssociate, []string{"associate degree", "associate of", "a.s.", "a.a."}},
	{types.DegreeCertificate, []string{"certificate", "diploma"}},
}

// extractEducation scans lines for degree mentions and gathers the
// institution, field, graduation year, GPA, and honors that accompany each.
// Entries come back sorted by degree level, highest first.
func (e *Extractor) extractEducation(lines []string) []types.EducationEntry {
	vocab := e.store.Education()
	var entries []types.EducationEntry

	for i, line := range lines {
		level, ok := degreeLevel(line)
		if !ok {
			continue
		}
		if len(entries) >= maxEducationEntries {
			break
		}
		entry := types.EducationEntry{Level: level}
		entry.Degree, entry.Institution = splitDegreeLine(line, vocab.Institutions)
		entry.Field = matchVocabulary(line, vocab.Fields)

		// Details often trail on the next few lines.
		context := []string{line}
		for j := i + 1; j < len(lines) && j <= i+3; j++ {
			if lines[j] == "" {
				break
			}
			if _, isDegree := degreeLevel(lines[j]); isDegree {
				break
			}
			context = append(context, lines[j])
		}
		fillEducationDetails(&entry, context, vocab)
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Level.Rank() > entries[b].Level.Rank()
	})
	return entries
}

func degreeLevel(line string) (types.DegreeLevel, bool) {
	lower := " " + strings.ToLower(line) + " "
	for _, group := range degreeLevels {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.level, true
			}
		}
	}
	return types.DegreeOther, false
}

// splitDegreeLine separates "Bachelor of Science in CS, MIT" into the degree
// text and the trailing institution.
func splitDegreeLine(line string, institutions []string) (degree, institution string) {
	for _, sep := range []string{" from ", " at ", " - "} {
		if idx := strings.Index(strings.ToLower(line), sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), cleanInstitution(line[idx+len(sep):])
		}
	}
	if idx := strings.Index(line, ","); idx > 0 {
		rest := cleanInstitution(line[idx+1:])
		if rest != "" {
			return strings.TrimSpace(line[:idx]), rest
		}
	}
	if inst := matchVocabulary(line, institutions); inst != "" {
		return strings.TrimSpace(line), inst
	}
	return strings.TrimSpace(line), ""
}

func cleanInstitution(s string) string {
	s = gradYearRe.ReplaceAllString(s, "")
	s = strings.Trim(s, " ,-–|")
	if len(s) < 3 {
		return ""
	}
	return s
}

func fillEducationDetails(entry *types.EducationEntry, context []string, vocab taxonomy.EducationVocabulary) {
	joined := strings.Join(context, "\n")

	if m := eduYearSpan.FindStringSubmatch(joined); m != nil {
		entry.GraduationYear, _ = strconv.Atoi(m[2])
	} else if m := gradYearRe.FindStringSubmatch(joined); m != nil {
		entry.GraduationYear, _ = strconv.Atoi(m[1])
	}
	if m := gpaRe.FindStringSubmatch(joined); m != nil {
		if gpa, err := strconv.ParseFloat(m[1], 64); err == nil && gpa <= 4.0 {
			entry.GPA = gpa
		}
	}
	entry.Honors = matchAllVocabulary(joined, vocab.Honors)
	if entry.Institution == "" {
		for _, line := range context[1:] {
			if inst := matchVocabulary(line, vocab.Institutions); inst != "" {
				entry.Institution = line
				break
			}
		}
	}
	if entry.Field == "" {
		entry.Field = matchVocabulary(joined, vocab.Fields)
	}
}

// matchVocabulary returns the first vocabulary term mentioned in the text,
// case-insensitively.
func matchVocabulary(text string, vocab []string) string {
	lower := strings.ToLower(text)
	for _, term := range vocab {
		if strings.Contains(lower, strings.ToLower(term)) {
			return term
		}
	}
	return ""
}

// matchAllVocabulary returns every vocabulary term mentioned in the text, in
// vocabulary order. A term contained in an earlier match is skipped so that
// "magna cum laude" does not also report "cum laude".
func matchAllVocabulary(text string, vocab []string) []string {
	lower := strings.ToLower(text)
	var matches []string
	for _, term := range vocab {
		key := strings.ToLower(term)
		if !strings.Contains(lower, key) {
			continue
		}
		covered := false
		for _, m := range matches {
			if strings.Contains(strings.ToLower(m), key) {
				covered = true
				break
			}
		}
		if !covered {
			matches = append(matches, term)
		}
	}
	return matches
}
