package speech

import (
	"regexp"
	"strings"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Filler words penalized in the fluency score.
var fillerWords = map[string]bool{
	"um": true, "uh": true, "like": true, "actually": true,
	"basically": true, "literally": true, "hmm": true, "err": true,
}

// Professional vocabulary counted toward the confidence score.
var professionalWords = []string{
	"experience", "achieved", "managed", "developed", "led", "improved",
	"created", "implemented", "successful", "responsibility", "team",
	"project", "solution", "strategy", "collaborate", "deliver",
}

// Small sentiment lexicons standing in for a polarity model. Polarity is the
// signed share of sentiment-bearing words, in [-1, 1].
var (
	positiveWords = map[string]bool{
		"great": true, "excellent": true, "good": true, "love": true,
		"enjoy": true, "excited": true, "passionate": true, "successful": true,
		"proud": true, "best": true, "strong": true, "confident": true,
		"happy": true, "accomplished": true, "effective": true, "thrive": true,
	}
	negativeWords = map[string]bool{
		"bad": true, "hate": true, "difficult": true, "problem": true,
		"failed": true, "failure": true, "worst": true, "unfortunately": true,
		"struggle": true, "weak": true, "poor": true, "stress": true,
		"frustrated": true, "boring": true, "wrong": true,
	}
)

const complexWordLength = 7

// languageStats holds the normalized text measurements every communication
// sub-score reads from.
type languageStats struct {
	WordCount         int
	SentenceCount     int
	AvgSentenceLength float64
	AvgWordLength     float64
	SentimentPolarity float64
	ProfessionalRatio float64
	IndustryTermRatio float64
	LexicalDiversity  float64
	ComplexWordRatio  float64
	FillerRatio       float64
	SentenceVariety   float64
}

// analyzeLanguage computes text statistics over the transcript. A transcript
// with zero words yields the zero value, which the scorer maps to defaults.
func analyzeLanguage(transcript string, industrySkills []string) languageStats {
	words := strings.Fields(transcript)
	if len(words) == 0 {
		return languageStats{}
	}
	lower := strings.ToLower(transcript)

	var stats languageStats
	stats.WordCount = len(words)

	sentences := splitSentences(transcript)
	stats.SentenceCount = len(sentences)
	stats.AvgSentenceLength = float64(stats.WordCount) / float64(max(stats.SentenceCount, 1))

	unique := map[string]bool{}
	var fillers, complexCount, positive, negative int
	var totalLen int
	for _, w := range words {
		totalLen += len(w)
		norm := strings.ToLower(strings.Trim(w, `.,!?;:"'()[]`))
		if norm == "" {
			continue
		}
		unique[norm] = true
		if fillerWords[norm] {
			fillers++
		}
		if len(norm) >= complexWordLength {
			complexCount++
		}
		if positiveWords[norm] {
			positive++
		}
		if negativeWords[norm] {
			negative++
		}
	}
	// "you know" spans two tokens.
	fillers += strings.Count(lower, "you know")

	stats.AvgWordLength = float64(totalLen) / float64(stats.WordCount)
	stats.LexicalDiversity = float64(len(unique)) / float64(stats.WordCount)
	stats.ComplexWordRatio = float64(complexCount) / float64(stats.WordCount)
	stats.FillerRatio = float64(fillers) / float64(stats.WordCount)

	if sentimental := positive + negative; sentimental > 0 {
		stats.SentimentPolarity = float64(positive-negative) / float64(sentimental)
	}

	var professional int
	for _, w := range professionalWords {
		if strings.Contains(lower, w) {
			professional++
		}
	}
	stats.ProfessionalRatio = float64(professional) / float64(stats.WordCount)

	var industryTerms int
	for _, skill := range industrySkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			industryTerms++
		}
	}
	stats.IndustryTermRatio = float64(industryTerms) / float64(stats.WordCount)

	lengths := map[int]bool{}
	for _, s := range sentences {
		lengths[len(strings.Fields(s))] = true
	}
	stats.SentenceVariety = float64(len(lengths)) / float64(max(stats.SentenceCount, 1))

	return stats
}

func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}
