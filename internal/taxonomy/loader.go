package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Dataset file names recognized inside a taxonomy directory.
const (
	skillsFile         = "skills.json"
	jobTitlesFile      = "job_titles.json"
	industriesFile     = "industries.json"
	certificationsFile = "certifications.json"
	educationFile      = "education_keywords.json"
)

// groupedListSchema validates industry -> [entries] dataset files.
const groupedListSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "array",
		"items": {"type": "string", "minLength": 1}
	}
}`

// skillsSchema validates the industry -> category -> [skills] dataset file.
const skillsSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"additionalProperties": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		}
	}
}`

// educationSchema validates the education keyword dataset file.
const educationSchema = `{
	"type": "object",
	"properties": {
		"degree_types":  {"type": "array", "items": {"type": "string"}},
		"institutions":  {"type": "array", "items": {"type": "string"}},
		"fields":        {"type": "array", "items": {"type": "string"}},
		"honors":        {"type": "array", "items": {"type": "string"}}
	},
	"additionalProperties": false
}`

// DatasetError reports a dataset file that could not be read, parsed, or validated.
type DatasetError struct {
	File    string
	Message string
	Cause   error
}

func (e *DatasetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset %s: %s", e.File, e.Message)
}

func (e *DatasetError) Unwrap() error {
	return e.Cause
}

// Load reads dataset files from dir into the store. Each concern whose file is
// present replaces the corresponding compiled-in default wholesale; absent
// files leave the defaults in place. Files that fail schema validation abort
// the load with a DatasetError.
func (s *Store) Load(dir string) error {
	if dir == "" {
		return nil
	}

	var skills map[string]map[string][]string
	if err := loadDataset(dir, skillsFile, skillsSchema, &skills); err != nil {
		return err
	}

	var titles, keywords, certs map[string][]string
	if err := loadDataset(dir, jobTitlesFile, groupedListSchema, &titles); err != nil {
		return err
	}
	if err := loadDataset(dir, industriesFile, groupedListSchema, &keywords); err != nil {
		return err
	}
	if err := loadDataset(dir, certificationsFile, groupedListSchema, &certs); err != nil {
		return err
	}

	var education *EducationVocabulary
	if err := loadDataset(dir, educationFile, educationSchema, &education); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if skills != nil {
		s.skills = lowerSkillKeys(skills)
	}
	if titles != nil {
		s.jobTitles = lowerKeys(titles)
	}
	if keywords != nil {
		s.keywords = lowerKeys(keywords)
	}
	if certs != nil {
		s.certs = lowerKeys(certs)
	}
	if education != nil {
		s.education = *education
	}
	return nil
}

// Export writes every dataset to dir as indented JSON, creating dir if needed.
func (s *Store) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create taxonomy directory %s: %w", dir, err)
	}

	// Encode while holding the lock; the maps stay visible to writers after
	// it is released.
	s.mu.RLock()
	datasets := map[string]any{
		skillsFile:         s.skills,
		jobTitlesFile:      s.jobTitles,
		industriesFile:     s.keywords,
		certificationsFile: s.certs,
		educationFile:      s.education,
	}
	payloads := make(map[string][]byte, len(datasets))
	for name, data := range datasets {
		payload, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			s.mu.RUnlock()
			return &DatasetError{File: name, Message: "failed to encode", Cause: err}
		}
		payloads[name] = payload
	}
	s.mu.RUnlock()

	for name, payload := range payloads {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return &DatasetError{File: name, Message: "failed to write", Cause: err}
		}
	}
	return nil
}

// loadDataset reads and schema-validates one dataset file into out.
// A missing file is not an error; out is left untouched.
func loadDataset(dir, name, schema string, out any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &DatasetError{File: name, Message: "failed to read", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &DatasetError{File: name, Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return &DatasetError{File: name, Message: strings.Join(msgs, "; ")}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &DatasetError{File: name, Message: "failed to parse", Cause: err}
	}
	return nil
}

func lowerKeys(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func lowerSkillKeys(m map[string]map[string][]string) map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(m))
	for industry, categories := range m {
		lowered := make(map[string][]string, len(categories))
		for category, skills := range categories {
			lowered[strings.ToLower(category)] = skills
		}
		out[strings.ToLower(industry)] = lowered
	}
	return out
}
