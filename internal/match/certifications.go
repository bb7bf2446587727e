package match

import (
	"strings"

	"github.com/jmorgan/talentmatch/internal/types"
)

// scoreCertifications is the fraction of required certifications found among
// the candidate's, matched by substring so "AWS Certified Solutions Architect"
// satisfies a bare "AWS" requirement. No requirement scores neutrally.
func scoreCertifications(held []types.CertificationEntry, required []string) int {
	if len(required) == 0 {
		return neutralScore
	}
	matches := 0
	for _, req := range required {
		if holdsCertification(held, req) {
			matches++
		}
	}
	score := matches * 100 / len(required)
	if score < 30 {
		score = 30
	}
	return score
}

func holdsCertification(held []types.CertificationEntry, name string) bool {
	lower := strings.ToLower(name)
	for _, cert := range held {
		if strings.Contains(strings.ToLower(cert.Name), lower) {
			return true
		}
	}
	return false
}

// missingCertifications returns required certifications the candidate lacks.
func missingCertifications(held []types.CertificationEntry, required []string) []string {
	var out []string
	for _, req := range required {
		if !holdsCertification(held, req) {
			out = append(out, req)
		}
	}
	return out
}
