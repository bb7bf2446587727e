package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jmorgan/talentmatch/internal/types"
)

const unparsedRangeYears = 1.0

var (
	monthYearRangeRe = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{4})\s*(?:[-–—]|to)\s*(?:(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{4})|(Present|Current))`)
	yearRangeRe      = regexp.MustCompile(`(?i)\b(\d{4})\s*(?:[-–—]|to)\s*(\d{4}|Present|Current)\b`)

	bulletRe = regexp.MustCompile(`^[-•*◦▪]\s*`)

	explicitYearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:\w+\s+){0,3}?experience\b`)
)

// Generic role words that mark a line as a job title even when the exact
// title is missing from the taxonomy.
var titleWords = []string{
	"engineer", "developer", "manager", "director", "analyst", "consultant",
	"specialist", "coordinator", "administrator", "architect", "designer",
	"scientist", "technician", "officer", "associate", "assistant", "lead",
	"intern", "nurse", "accountant", "teacher", "recruiter", "representative",
}

// parseDateRange reads an employment date range from a line. It prefers
// month-year forms ("Jan 2019 - Dec 2021") over bare year spans and treats
// "Present" and "Current" as an open range.
func parseDateRange(line string) (types.DateRange, bool) {
	if m := monthYearRangeRe.FindStringSubmatch(line); m != nil {
		r := types.DateRange{Start: normalizeMonth(m[1]) + " " + m[2]}
		if m[5] != "" {
			r.End = "present"
		} else {
			r.End = normalizeMonth(m[3]) + " " + m[4]
		}
		return r, true
	}
	if m := yearRangeRe.FindStringSubmatch(line); m != nil {
		r := types.DateRange{Start: m[1]}
		if strings.EqualFold(m[2], "present") || strings.EqualFold(m[2], "current") {
			r.End = "present"
		} else {
			r.End = m[2]
		}
		return r, true
	}
	return types.DateRange{}, false
}

func normalizeMonth(m string) string {
	m = strings.ToLower(m)
	return strings.ToUpper(m[:1]) + m[1:3]
}

// rangeYears converts a parsed range into a duration in years, closing open
// ranges at the reference year. Inverted ranges collapse to zero.
func rangeYears(r types.DateRange, refYear int) float64 {
	start, ok := trailingYear(r.Start)
	if !ok {
		return unparsedRangeYears
	}
	if r.Open() {
		years := float64(refYear - start)
		if years < 0 {
			return 0
		}
		return years
	}
	end, ok := trailingYear(r.End)
	if !ok {
		return unparsedRangeYears
	}
	years := float64(end - start)
	startMonth := monthIndex(r.Start)
	endMonth := monthIndex(r.End)
	if startMonth > 0 && endMonth > 0 {
		// Month-level range: count inclusive months.
		years = float64(end-start) + float64(endMonth-startMonth+1)/12
	}
	if years < 0 {
		return 0
	}
	return years
}

func trailingYear(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	year, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || year < 1900 || year > 2100 {
		return 0, false
	}
	return year, true
}

var monthIndexes = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

func monthIndex(s string) int {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0
	}
	return monthIndexes[fields[0]]
}

// extractExperience scans lines for job titles and attaches the date range,
// company, location, and bullet responsibilities that follow each one. At most
// the first eight positions are kept, which favors the most recent roles in a
// conventionally ordered resume.
func (e *Extractor) extractExperience(lines []string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	var current *types.ExperienceEntry

	flush := func() {
		if current != nil && len(entries) < maxExperienceEntries {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		if e.isTitleLine(line) {
			flush()
			current = &types.ExperienceEntry{Title: stripDates(line)}
			if r, ok := parseDateRange(line); ok {
				current.DateRange = &r
				current.DurationYears = rangeYears(r, e.refYear)
			}
			continue
		}
		if current == nil {
			continue
		}
		if bulletRe.MatchString(line) {
			current.Responsibilities = append(current.Responsibilities, bulletRe.ReplaceAllString(line, ""))
			continue
		}
		if r, ok := parseDateRange(line); ok && current.DateRange == nil {
			current.DateRange = &r
			current.DurationYears = rangeYears(r, e.refYear)
			continue
		}
		if current.Company == "" && likelyCompany(line) {
			current.Company, current.Location = splitCompanyLocation(line)
		}
	}
	flush()

	for i := range entries {
		if entries[i].DateRange == nil {
			entries[i].DurationYears = unparsedRangeYears
		}
	}
	return entries
}

// isTitleLine reports whether a line looks like a job title, either by exact
// taxonomy membership or by a generic role word.
func (e *Extractor) isTitleLine(line string) bool {
	if len(line) < 5 || len(line) > 90 || bulletRe.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	// Certification and degree lines mention role words too.
	if strings.Contains(lower, "certif") || strings.Contains(lower, "bachelor") ||
		strings.Contains(lower, "master") || strings.Contains(lower, "university") {
		return false
	}
	for _, title := range e.store.AllJobTitles() {
		if strings.Contains(lower, strings.ToLower(title)) {
			return true
		}
	}
	for _, w := range titleWords {
		if containsWord(lower, w) {
			return true
		}
	}
	return false
}

func containsWord(lower, word string) bool {
	idx := strings.Index(lower, word)
	for idx >= 0 {
		beforeOK := idx == 0 || !isWordByte(lower[idx-1])
		after := idx + len(word)
		afterOK := after == len(lower) || !isWordByte(lower[after])
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(lower[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

// stripDates removes a trailing date range from a title line, along with any
// separator left dangling before it.
func stripDates(line string) string {
	line = monthYearRangeRe.ReplaceAllString(line, "")
	line = yearRangeRe.ReplaceAllString(line, "")
	line = strings.TrimRight(line, " \t,|()")
	return strings.TrimSpace(line)
}

// likelyCompany accepts short capitalized lines without dates or bullets as
// the employer for the preceding title.
func likelyCompany(line string) bool {
	if len(line) < 2 || len(line) > 60 {
		return false
	}
	if yearRangeRe.MatchString(line) || strings.Contains(line, "@") {
		return false
	}
	if len(strings.Fields(line)) > 6 {
		return false
	}
	first := line[0]
	return first >= 'A' && first <= 'Z'
}

func splitCompanyLocation(line string) (company, location string) {
	line = strings.TrimPrefix(line, "at ")
	if idx := strings.Index(line, ", "); idx > 0 {
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+2:])
	}
	return line, ""
}

// totalExperienceYears takes the larger of an explicit "N years of experience"
// claim and the sum of parsed position durations, capped to a plausible
// working lifetime.
func (e *Extractor) totalExperienceYears(text string, entries []types.ExperienceEntry) int {
	claimed := 0
	if m := explicitYearsRe.FindStringSubmatch(text); m != nil {
		claimed, _ = strconv.Atoi(m[1])
	}

	var summed float64
	for _, entry := range entries {
		summed += entry.DurationYears
	}

	total := claimed
	if int(summed) > total {
		total = int(summed)
	}
	if total > maxTotalYears {
		total = maxTotalYears
	}
	if total < 0 {
		total = 0
	}
	return total
}

// Keyword groups for seniority signals in free text.
var (
	executiveWords = []string{"chief", "cto", "ceo", "cfo", "coo", "vp ", "vice president", "president", "founder", "executive"}
	seniorWords    = []string{"senior", "sr.", "sr ", "lead", "principal", "staff engineer", "architect", "head of"}
	juniorWords    = []string{"junior", "jr.", "jr ", "entry level", "entry-level", "intern", "trainee", "graduate"}
)

// experienceLevel combines seniority keywords with total years. Keywords win
// for the executive tier, otherwise years set the floor: 10+ senior, 5+ mid,
// 2+ junior, under 2 entry. Conflicting signals settle on mid.
func (e *Extractor) experienceLevel(text string, totalYears int) types.ExperienceLevel {
	lower := strings.ToLower(text)

	if containsAny(lower, executiveWords) {
		return types.LevelExecutive
	}

	hasSenior := containsAny(lower, seniorWords)
	hasJunior := containsAny(lower, juniorWords)
	if hasSenior && hasJunior {
		return types.LevelMid
	}
	if hasSenior {
		return types.LevelSenior
	}

	switch {
	case totalYears >= 10:
		return types.LevelSenior
	case totalYears >= 5:
		return types.LevelMid
	case totalYears >= 2:
		return types.LevelJunior
	case hasJunior:
		return types.LevelJunior
	default:
		return types.LevelEntry
	}
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
