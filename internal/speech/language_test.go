package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeLanguage_EmptyTranscript(t *testing.T) {
	stats := analyzeLanguage("", nil)
	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.SentimentPolarity)
}

func TestAnalyzeLanguage_WordAndSentenceCounts(t *testing.T) {
	stats := analyzeLanguage("I build tools. They work well.", nil)
	assert.Equal(t, 6, stats.WordCount)
	assert.Equal(t, 2, stats.SentenceCount)
	assert.InDelta(t, 3.0, stats.AvgSentenceLength, 0.001)
}

func TestAnalyzeLanguage_FillerWords(t *testing.T) {
	stats := analyzeLanguage("um I was like basically done you know", nil)
	// um, like, basically, plus the two-token "you know".
	assert.InDelta(t, 4.0/8.0, stats.FillerRatio, 0.001)
}

func TestAnalyzeLanguage_SentimentPolarity(t *testing.T) {
	positive := analyzeLanguage("great excellent good work", nil)
	assert.InDelta(t, 1.0, positive.SentimentPolarity, 0.001)

	mixed := analyzeLanguage("good good bad results", nil)
	assert.InDelta(t, 1.0/3.0, mixed.SentimentPolarity, 0.001)

	neutral := analyzeLanguage("plain factual statement", nil)
	assert.Zero(t, neutral.SentimentPolarity)
}

func TestAnalyzeLanguage_LexicalDiversity(t *testing.T) {
	stats := analyzeLanguage("go go go go", nil)
	assert.InDelta(t, 0.25, stats.LexicalDiversity, 0.001)

	stats = analyzeLanguage("one two three four", nil)
	assert.InDelta(t, 1.0, stats.LexicalDiversity, 0.001)
}

func TestAnalyzeLanguage_ComplexWordRatio(t *testing.T) {
	stats := analyzeLanguage("implemented comprehensive api", nil)
	// Two words of seven or more letters out of three.
	assert.InDelta(t, 2.0/3.0, stats.ComplexWordRatio, 0.001)
}

func TestAnalyzeLanguage_IndustryTermRatio(t *testing.T) {
	stats := analyzeLanguage("I deployed python services with kubernetes", []string{"Python", "Kubernetes", "AWS"})
	assert.InDelta(t, 2.0/6.0, stats.IndustryTermRatio, 0.001)
}

func TestAnalyzeLanguage_PunctuationStrippedFromWords(t *testing.T) {
	stats := analyzeLanguage("Great! Great. Great?", nil)
	assert.InDelta(t, 1.0/3.0, stats.LexicalDiversity, 0.001)
	assert.InDelta(t, 1.0, stats.SentimentPolarity, 0.001)
}

func TestSplitSentences_DropsEmptySegments(t *testing.T) {
	sentences := splitSentences("First. Second!? Third...")
	assert.Len(t, sentences, 3)
}

func TestSplitSentences_NoTerminators(t *testing.T) {
	sentences := splitSentences("no terminal punctuation here")
	assert.Len(t, sentences, 1)
}
