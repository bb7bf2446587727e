package match

// Industries whose skills transfer well enough to soften a mismatch.
var relatedIndustries = map[string][]string{
	"technology": {"finance", "healthcare"},
	"finance":    {"technology", "consulting"},
	"marketing":  {"sales", "media"},
	"sales":      {"marketing", "retail"},
	"healthcare": {"technology", "education"},
	"education":  {"healthcare", "consulting"},
}

// scoreIndustryFit is 100 for a direct industry match, 70 for adjacent
// industries, and 40 otherwise.
func scoreIndustryFit(resumeIndustry, jobIndustry string) int {
	if resumeIndustry == jobIndustry {
		return 100
	}
	for _, related := range relatedIndustries[resumeIndustry] {
		if related == jobIndustry {
			return 70
		}
	}
	return 40
}
