package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorgan/talentmatch/internal/extract"
	"github.com/jmorgan/talentmatch/internal/taxonomy"
	"github.com/jmorgan/talentmatch/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := taxonomy.NewStore()
	srv, err := New(Config{
		Store:     store,
		Extractor: extract.New(store, extract.WithReferenceYear(2025)),
	})
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNew_RequiresStore(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyzeResume_ReturnsProfile(t *testing.T) {
	srv := newTestServer(t)
	body := `{"text": "Jane Smith\nSenior Software Engineer\n2018 - Present\nSkills: Python, SQL, Docker"}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/analyze/resume", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AnalysisID)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, "technology", resp.Profile.DetectedIndustry)
	assert.NotEmpty(t, resp.Profile.Experience)
}

func TestAnalyzeResume_MissingTextRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/analyze/resume", `{"industry": "technology"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeResume_MalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/analyze/resume", `{"text": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeCommunication_WithFeatures(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"transcript": "I led a successful software project team and enjoy solving problems.",
		"features": {"pitch_mean": 150, "energy_mean": 0.05},
		"industry": "technology"
	}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/analyze/communication", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeCommunicationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AnalysisID)
	assert.Greater(t, resp.TranscriptConfidence, 0.0)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "technology", resp.Result.DetectedIndustry)
	assert.Equal(t, 100, resp.Result.Scores.Clarity)
}

func TestAnalyzeCommunication_MissingTranscriptRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/analyze/communication", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatch_ReturnsReport(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"profile": {
			"detected_industry": "technology",
			"skills": {"programming": ["Python"]},
			"total_experience_years": 5
		},
		"requirement": {
			"industry": "technology",
			"required_skills": ["python", "sql"]
		}
	}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/match", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.MatchReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, []string{"sql"}, report.MissingSkills)
	assert.Equal(t, 100, report.SubScores.IndustryFit)
}

func TestMatch_MissingProfileRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/match", `{"requirement": {}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatch_InvalidRequirementRejected(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"profile": {},
		"requirement": {"required_experience": {"min_years": -3}}
	}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/match", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchBatch_PreservesOrder(t *testing.T) {
	srv := newTestServer(t)
	body := `{
		"pairs": [
			{"profile": {"skills": {"programming": ["Python"]}}, "requirement": {"required_skills": ["python"]}},
			{"profile": {}, "requirement": {"required_skills": ["python"]}}
		]
	}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/match/batch", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchBatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reports, 2)
	assert.Empty(t, resp.Reports[0].MissingSkills)
	assert.Equal(t, []string{"python"}, resp.Reports[1].MissingSkills)
}

func TestMatchBatch_EmptyPairsRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/match/batch", `{"pairs": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListIndustries(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/taxonomy/industries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["industries"], "technology")
}

func TestTaxonomyStats(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/taxonomy/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.Stats.TotalSkills, 0)
}

func TestAddSkills(t *testing.T) {
	srv := newTestServer(t)
	body := `{"industry": "technology", "category": "programming", "skills": ["Zig", "Python"]}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/taxonomy/skills", body)
	require.Equal(t, http.StatusOK, rec.Code)
	// Python is already present, only Zig is new.
	assert.JSONEq(t, `{"added": 1}`, rec.Body.String())
}

func TestAddSkills_MissingFieldsRejected(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/taxonomy/skills", `{"industry": "technology"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddJobTitles(t *testing.T) {
	srv := newTestServer(t)
	body := `{"industry": "technology", "terms": ["Platform Engineer"]}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/taxonomy/job-titles", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"added": 1}`, rec.Body.String())
}

func TestAddCertifications(t *testing.T) {
	srv := newTestServer(t)
	body := `{"industry": "technology", "terms": ["CKA"]}`

	rec := doJSON(t, srv, http.MethodPost, "/v1/taxonomy/certifications", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"added": 1}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/match", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/match", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
