package match

import (
	"strings"

	"github.com/jmorgan/talentmatch/internal/types"
)

// Degree keywords mapped to hierarchy ranks, for reading a requirement's
// free-text minimum degree.
var degreeKeywordRanks = []struct {
	keyword string
	rank    int
}{
	{"phd", 5}, {"ph.d", 5}, {"doctorate", 5}, {"doctoral", 5},
	{"master", 4}, {"mba", 4},
	{"bachelor", 3},
	{"associate", 2},
	{"diploma", 1}, {"certificate", 1},
}

// scoreEducation compares the candidate's highest degree against the
// requirement's minimum. Meeting the bar scores at least 80 with a bonus per
// level above it; a shortfall scales down to a floor of 40. Absent or empty
// requirements score neutrally.
func scoreEducation(profile *types.CandidateProfile, req *types.JobRequirement) int {
	if req.RequiredEducation == nil {
		return neutralScore
	}
	requiredRank := degreeRankFromText(req.MinDegree())
	if requiredRank == 0 {
		return neutralScore
	}

	heldRank := profile.HighestDegree().Rank()
	if heldRank >= requiredRank {
		score := 80 + (heldRank-requiredRank)*10
		if score > 100 {
			score = 100
		}
		return score
	}
	score := heldRank * 80 / requiredRank
	if score < 40 {
		score = 40
	}
	return score
}

func degreeRankFromText(text string) int {
	lower := strings.ToLower(text)
	for _, entry := range degreeKeywordRanks {
		if strings.Contains(lower, entry.keyword) {
			return entry.rank
		}
	}
	return 0
}
