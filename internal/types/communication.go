package types

// AcousticFeatures is the fixed numeric feature vector produced by the external
// audio feature extractor. A nil *AcousticFeatures means the signal was
// unavailable and the analyzer falls back to default sub-scores.
type AcousticFeatures struct {
	Duration         float64 `json:"duration"`
	SpeakingRate     float64 `json:"speaking_rate"`
	PitchMean        float64 `json:"pitch_mean"`
	EnergyMean       float64 `json:"energy_mean"`
	SpectralCentroid float64 `json:"spectral_centroid"`
	ZeroCrossingRate float64 `json:"zero_crossing_rate"`
}

// CommunicationScores holds the normalized 0-100 communication sub-scores.
type CommunicationScores struct {
	Clarity           int `json:"clarity"`
	Confidence        int `json:"confidence"`
	Fluency           int `json:"fluency"`
	Vocabulary        int `json:"vocabulary"`
	IndustryKnowledge int `json:"industry_knowledge"`
	Overall           int `json:"overall"`
}

// CommunicationResult is the full output of analyzing one transcript.
type CommunicationResult struct {
	DetectedIndustry    string              `json:"detected_industry"`
	Scores              CommunicationScores `json:"scores"`
	Strengths           []string            `json:"strengths"`
	AreasForImprovement []string            `json:"areas_for_improvement"`
	SpeakingPace        string              `json:"speaking_pace"`
	EmotionalTone       string              `json:"emotional_tone"`
	IndustryTips        []string            `json:"industry_tips,omitempty"`
}
