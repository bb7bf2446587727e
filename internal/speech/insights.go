package speech

import (
	"fmt"

	"github.com/jmorgan/talentmatch/internal/types"
)

const (
	strengthThreshold    = 80
	improvementThreshold = 60

	verboseSentenceLength = 25.0
	clippedSentenceLength = 8.0
)

const maxIndustryTips = 3

// Fixed communication tips keyed by industry.
var industryTipTable = map[string][]string{
	"technology": {
		"Use precise technical terminology",
		"Explain complex concepts clearly",
		"Demonstrate problem-solving approach",
	},
	"finance": {
		"Show attention to detail in numbers",
		"Use data to support arguments",
		"Demonstrate risk awareness",
	},
	"healthcare": {
		"Show empathy and compassion",
		"Use clear, patient-friendly language",
		"Demonstrate attention to compliance",
	},
	"sales": {
		"Show enthusiasm and energy",
		"Use persuasive language",
		"Demonstrate relationship-building skills",
	},
	"marketing": {
		"Show creativity in expression",
		"Use storytelling techniques",
		"Demonstrate brand awareness",
	},
}

// buildInsights derives strength and improvement statements from the
// sub-scores using fixed thresholds.
func buildInsights(scores types.CommunicationScores, industry string) (strengths, improvements []string) {
	if scores.Clarity >= strengthThreshold {
		strengths = append(strengths, "Excellent speech clarity and articulation")
	}
	if scores.Confidence >= strengthThreshold {
		strengths = append(strengths, "Confident and professional communication style")
	}
	if scores.Vocabulary >= strengthThreshold {
		strengths = append(strengths, "Strong vocabulary and language skills")
	}
	if scores.IndustryKnowledge >= 70 {
		strengths = append(strengths, fmt.Sprintf("Good knowledge of %s terminology", industry))
	}

	if scores.Clarity < improvementThreshold {
		improvements = append(improvements, "Work on speech clarity and projection")
	}
	if scores.Confidence < improvementThreshold {
		improvements = append(improvements, "Build confidence in communication")
	}
	if scores.Fluency < improvementThreshold {
		improvements = append(improvements, "Reduce filler words and improve speech flow")
	}
	if scores.Vocabulary < improvementThreshold {
		improvements = append(improvements, "Expand professional vocabulary")
	}
	if scores.IndustryKnowledge < defaultIndustryKnowledge {
		improvements = append(improvements, fmt.Sprintf("Learn more %s-specific terminology", industry))
	}
	return strengths, improvements
}

// classifyPace buckets delivery by average sentence length. Long rambling
// sentences read as slow, clipped ones as fast.
func classifyPace(stats languageStats) string {
	if stats.WordCount == 0 {
		return "normal"
	}
	switch {
	case stats.AvgSentenceLength > verboseSentenceLength:
		return "slow"
	case stats.AvgSentenceLength < clippedSentenceLength:
		return "fast"
	default:
		return "normal"
	}
}

func classifyTone(stats languageStats) string {
	switch {
	case stats.SentimentPolarity > 0.3:
		return "positive"
	case stats.SentimentPolarity < -0.3:
		return "negative"
	default:
		return "neutral"
	}
}

// industryTips returns up to three tips for the industry, adding a study tip
// when industry knowledge scored low.
func industryTips(industry string, scores types.CommunicationScores) []string {
	tips := append([]string(nil), industryTipTable[industry]...)
	if scores.IndustryKnowledge < 70 {
		tips = append(tips, fmt.Sprintf("Study more %s-specific terminology and concepts", industry))
	}
	if len(tips) > maxIndustryTips {
		tips = tips[:maxIndustryTips]
	}
	return tips
}
