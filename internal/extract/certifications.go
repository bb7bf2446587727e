package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jmorgan/talentmatch/internal/types"
)

var certYearRe = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)

// Issuer names recognized on certification lines.
var certIssuers = []string{
	"Amazon Web Services", "AWS", "Microsoft", "Google", "Cisco", "CompTIA",
	"PMI", "Oracle", "Adobe", "Salesforce", "Scrum Alliance", "ISACA",
	"(ISC)2", "American Heart Association", "Red Cross", "HubSpot", "FINRA",
}

var certSignalWords = []string{"certified", "certification", "certificate", "license", "licensure", "credential"}

// extractCertifications finds certification lines either by taxonomy
// membership or by an issuer name next to a certification signal word. The
// most recent entries sort first, with technology credentials ahead on ties.
func (e *Extractor) extractCertifications(lines []string) []types.CertificationEntry {
	var entries []types.CertificationEntry
	seen := map[string]bool{}

	for _, line := range lines {
		if len(entries) >= maxCertificationEntries {
			break
		}
		if line == "" {
			continue
		}
		name := bulletRe.ReplaceAllString(line, "")
		lower := strings.ToLower(name)

		matched := ""
		for _, cert := range e.store.AllCertifications() {
			if strings.Contains(lower, strings.ToLower(cert)) {
				matched = cert
				break
			}
		}
		issuer := matchIssuer(name)
		if matched == "" && !(issuer != "" && containsAny(lower, certSignalWords)) {
			continue
		}

		display := strings.TrimSpace(certYearRe.ReplaceAllString(name, ""))
		display = strings.Trim(display, " ,-–|()")
		if display == "" || seen[strings.ToLower(display)] {
			continue
		}
		seen[strings.ToLower(display)] = true

		entry := types.CertificationEntry{Name: display, IssuingOrganization: issuer}
		fillCertYears(&entry, name, lower, e.refYear)
		entries = append(entries, entry)
	}

	e.sortCertifications(entries)
	return entries
}

func matchIssuer(line string) string {
	lower := strings.ToLower(line)
	for _, issuer := range certIssuers {
		if strings.Contains(lower, strings.ToLower(issuer)) {
			return issuer
		}
	}
	return ""
}

// fillCertYears reads the obtained year and, when an expiry phrase appears,
// the expiry year. A certification with no expiry or a future expiry counts
// as current.
func fillCertYears(entry *types.CertificationEntry, line, lower string, refYear int) {
	years := certYearRe.FindAllStringSubmatch(line, -1)
	if len(years) > 0 {
		entry.YearObtained, _ = strconv.Atoi(years[0][1])
	}
	hasExpiry := strings.Contains(lower, "expire") || strings.Contains(lower, "valid until") || strings.Contains(lower, "valid through")
	if hasExpiry && len(years) > 1 {
		entry.ExpiryYear, _ = strconv.Atoi(years[len(years)-1][1])
	}
	entry.IsCurrent = entry.ExpiryYear == 0 || entry.ExpiryYear >= refYear
}

// sortCertifications orders by year obtained descending, then prefers
// technology-industry credentials, then preserves input order.
func (e *Extractor) sortCertifications(entries []types.CertificationEntry) {
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].YearObtained != entries[b].YearObtained {
			return entries[a].YearObtained > entries[b].YearObtained
		}
		aTech := e.store.CertificationIndustry(entries[a].Name) == "technology"
		bTech := e.store.CertificationIndustry(entries[b].Name) == "technology"
		return aTech && !bTech
	})
}
