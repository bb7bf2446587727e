// Package speech scores interview transcripts for communication quality.
// Scores combine text statistics with acoustic features measured upstream;
// when either input is missing the affected sub-scores fall back to fixed
// defaults instead of failing.
package speech

import (
	"math"
	"regexp"

	"github.com/jmorgan/talentmatch/internal/taxonomy"
	"github.com/jmorgan/talentmatch/internal/types"
)

const (
	scoreFloor   = 30
	scoreCeiling = 100

	defaultSubScore          = 70
	defaultIndustryKnowledge = 50

	optimalPitchHz        = 150.0
	optimalSentenceLength = 15.0
)

// Analyzer scores transcripts against an industry vocabulary.
type Analyzer struct {
	store *taxonomy.Store
}

// New returns an Analyzer backed by the given taxonomy store.
func New(store *taxonomy.Store) *Analyzer {
	return &Analyzer{store: store}
}

// Analyze scores a transcript. When industry is empty it is detected from the
// transcript first. A nil features argument or an empty transcript produces
// default sub-scores rather than an error.
func (a *Analyzer) Analyze(transcript string, features *types.AcousticFeatures, industry string) *types.CommunicationResult {
	if industry == "" {
		industry = a.store.DetectIndustry(transcript)
	}
	stats := analyzeLanguage(transcript, a.store.SkillsByIndustry(industry))
	scores := a.scoreCommunication(stats, features)

	result := &types.CommunicationResult{
		DetectedIndustry: industry,
		Scores:           scores,
		SpeakingPace:     classifyPace(stats),
		EmotionalTone:    classifyTone(stats),
	}
	result.Strengths, result.AreasForImprovement = buildInsights(scores, industry)
	result.IndustryTips = industryTips(industry, scores)
	return result
}

func (a *Analyzer) scoreCommunication(stats languageStats, features *types.AcousticFeatures) types.CommunicationScores {
	var s types.CommunicationScores

	// Clarity comes from the audio signal alone.
	if features != nil {
		energyScore := math.Min(100, features.EnergyMean*2000)
		pitchScore := math.Min(100, 100-2*math.Abs(features.PitchMean-optimalPitchHz))
		s.Clarity = clampScore((energyScore + pitchScore) / 2)
	} else {
		s.Clarity = defaultSubScore
	}

	if stats.WordCount == 0 {
		s.Confidence = defaultSubScore
		s.Fluency = defaultSubScore
		s.Vocabulary = defaultSubScore
		s.IndustryKnowledge = defaultIndustryKnowledge
	} else {
		sentimentScore := (stats.SentimentPolarity + 1) * 50
		professionalScore := stats.ProfessionalRatio * 100
		industryScore := stats.IndustryTermRatio * 100
		s.Confidence = clampScore(sentimentScore*0.4 + professionalScore*0.4 + industryScore*0.2)

		sentenceLengthScore := math.Max(0, 100-3*math.Abs(stats.AvgSentenceLength-optimalSentenceLength))
		s.Fluency = clampScore(sentenceLengthScore - stats.FillerRatio*100)

		diversityScore := stats.LexicalDiversity * 100
		complexityScore := stats.ComplexWordRatio * 100
		varietyScore := stats.SentenceVariety * 100
		s.Vocabulary = clampScore(diversityScore*0.4 + complexityScore*0.4 + varietyScore*0.2)

		s.IndustryKnowledge = int(math.Min(100, stats.IndustryTermRatio*300))
	}

	s.Overall = int(float64(s.Clarity)*0.3 + float64(s.Confidence)*0.3 + float64(s.Fluency)*0.2 + float64(s.Vocabulary)*0.2)
	return s
}

func clampScore(v float64) int {
	if v < scoreFloor {
		return scoreFloor
	}
	if v > scoreCeiling {
		return scoreCeiling
	}
	return int(v)
}

var punctuationRe = regexp.MustCompile(`[.!?]`)

// EstimateTranscriptConfidence estimates how trustworthy a transcript is from
// its own text quality, in [0, 1]. Empty transcripts score zero; anything
// non-empty lands in [0.3, 0.9].
func EstimateTranscriptConfidence(transcript string) float64 {
	stats := analyzeLanguage(transcript, nil)
	if stats.WordCount == 0 {
		return 0
	}

	coherence := 0.0
	if stats.WordCount > 10 {
		coherence += 0.2
	}
	if stats.AvgWordLength > 3 {
		coherence += 0.2
	}
	if punctuationRe.MatchString(transcript) {
		coherence += 0.2
	}

	confidence := math.Min(0.9, float64(stats.WordCount)*0.01+stats.AvgWordLength*0.1+coherence)
	return math.Max(0.3, confidence)
}
