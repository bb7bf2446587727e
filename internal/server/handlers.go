package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jmorgan/talentmatch/internal/logger"
	"github.com/jmorgan/talentmatch/internal/match"
	"github.com/jmorgan/talentmatch/internal/speech"
)

// decodeAndValidate reads the JSON body into dst and runs struct validation.
// A false return means an error response has already been written.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

// handleAnalyzeResume extracts a structured profile from resume text
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeResumeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	profile := s.extractor.Extract(req.Text, req.Industry)
	id := uuid.New().String()
	s.log.Info("resume analyzed",
		zap.String("analysis_id", id),
		zap.String("industry", profile.DetectedIndustry),
		zap.Int("experience_entries", len(profile.Experience)),
	)

	s.jsonResponse(w, http.StatusOK, AnalyzeResumeResponse{
		AnalysisID: id,
		Profile:    profile,
	})
}

// handleAnalyzeCommunication scores an interview transcript
func (s *Server) handleAnalyzeCommunication(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeCommunicationRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.analyzer.Analyze(req.Transcript, req.Features, req.Industry)
	id := uuid.New().String()
	s.log.Info("communication analyzed",
		zap.String("analysis_id", id),
		zap.String("industry", result.DetectedIndustry),
		zap.Int("overall", result.Scores.Overall),
		zap.String("transcript", logger.TruncateForLog(req.Transcript, 80)),
	)

	s.jsonResponse(w, http.StatusOK, AnalyzeCommunicationResponse{
		AnalysisID:           id,
		TranscriptConfidence: speech.EstimateTranscriptConfidence(req.Transcript),
		Result:               result,
	})
}

// handleMatch scores one profile against one job requirement
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if err := req.Requirement.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid requirement: "+err.Error())
		return
	}

	report := s.scorer.Score(req.Profile, req.Requirement)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleMatchBatch scores many pairs concurrently, preserving request order
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req MatchBatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	pairs := make([]match.Pair, len(req.Pairs))
	for i, p := range req.Pairs {
		if err := p.Requirement.Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid requirement: "+err.Error())
			return
		}
		pairs[i] = match.Pair{Profile: p.Profile, Requirement: p.Requirement}
	}

	reports, err := s.scorer.ScoreAll(r.Context(), pairs)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Batch scoring failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, MatchBatchResponse{Reports: reports})
}

// handleListIndustries returns the known industry labels
func (s *Server) handleListIndustries(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string][]string{"industries": s.store.Industries()})
}

// handleTaxonomyStats reports dataset sizes
func (s *Server) handleTaxonomyStats(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, StatsResponse{Stats: s.store.Stats()})
}

// handleAddSkills augments the skill taxonomy
func (s *Server) handleAddSkills(w http.ResponseWriter, r *http.Request) {
	var req AddSkillsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	added := s.store.AddSkills(req.Industry, req.Category, req.Skills)
	s.log.Info("skills added",
		zap.String("industry", req.Industry),
		zap.String("category", req.Category),
		zap.Int("added", added),
	)
	s.jsonResponse(w, http.StatusOK, map[string]int{"added": added})
}

// handleAddJobTitles augments the job title taxonomy
func (s *Server) handleAddJobTitles(w http.ResponseWriter, r *http.Request) {
	var req AddTermsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	added := s.store.AddJobTitles(req.Industry, req.Terms)
	s.jsonResponse(w, http.StatusOK, map[string]int{"added": added})
}

// handleAddCertifications augments the certification taxonomy
func (s *Server) handleAddCertifications(w http.ResponseWriter, r *http.Request) {
	var req AddTermsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	added := s.store.AddCertifications(req.Industry, req.Terms)
	s.jsonResponse(w, http.StatusOK, map[string]int{"added": added})
}

// handleHealth is the liveness probe
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
