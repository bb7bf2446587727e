package server

import (
	"github.com/jmorgan/talentmatch/internal/taxonomy"
	"github.com/jmorgan/talentmatch/internal/types"
)

// AnalyzeResumeRequest carries resume text already extracted from its source
// document. Industry is optional; empty means detect it.
type AnalyzeResumeRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	Industry string `json:"industry,omitempty"`
}

// AnalyzeResumeResponse wraps the extracted profile with an analysis ID.
type AnalyzeResumeResponse struct {
	AnalysisID string                  `json:"analysis_id"`
	Profile    *types.CandidateProfile `json:"profile"`
}

// AnalyzeCommunicationRequest carries a transcript and optional acoustic
// features measured upstream.
type AnalyzeCommunicationRequest struct {
	Transcript string                  `json:"transcript" validate:"required,min=1"`
	Features   *types.AcousticFeatures `json:"features,omitempty"`
	Industry   string                  `json:"industry,omitempty"`
}

// AnalyzeCommunicationResponse wraps the communication result with an
// analysis ID and an estimated transcript confidence.
type AnalyzeCommunicationResponse struct {
	AnalysisID           string                     `json:"analysis_id"`
	TranscriptConfidence float64                    `json:"transcript_confidence"`
	Result               *types.CommunicationResult `json:"result"`
}

// MatchRequest pairs a profile with a job requirement.
type MatchRequest struct {
	Profile     *types.CandidateProfile `json:"profile" validate:"required"`
	Requirement *types.JobRequirement   `json:"requirement" validate:"required"`
}

// MatchBatchRequest scores many profile/requirement pairs in one call.
type MatchBatchRequest struct {
	Pairs []MatchRequest `json:"pairs" validate:"required,min=1,dive"`
}

// MatchBatchResponse returns reports in the same order as the request pairs.
type MatchBatchResponse struct {
	Reports []*types.MatchReport `json:"reports"`
}

// AddSkillsRequest augments the taxonomy with skills under a category.
type AddSkillsRequest struct {
	Industry string   `json:"industry" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Skills   []string `json:"skills" validate:"required,min=1"`
}

// AddTermsRequest augments job titles or certifications for an industry.
type AddTermsRequest struct {
	Industry string   `json:"industry" validate:"required"`
	Terms    []string `json:"terms" validate:"required,min=1"`
}

// StatsResponse reports taxonomy dataset sizes.
type StatsResponse struct {
	Stats taxonomy.Stats `json:"stats"`
}
