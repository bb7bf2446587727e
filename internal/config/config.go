// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	TaxonomyDir string `json:"taxonomy_dir,omitempty"` // Directory of taxonomy dataset JSON files

	// Extraction
	ReferenceYear int `json:"reference_year,omitempty"` // Year closing open-ended date ranges; 0 means current year

	// Server
	ListenAddr   string `json:"listen_addr,omitempty"`   // Address for the HTTP server, e.g. ":8080"
	ReadTimeout  int    `json:"read_timeout,omitempty"`  // Request read timeout in seconds
	WriteTimeout int    `json:"write_timeout,omitempty"` // Response write timeout in seconds

	// Scoring weight overrides (0.0-1.0 each)
	SkillsWeight         float64 `json:"skills_weight,omitempty"`
	ExperienceWeight     float64 `json:"experience_weight,omitempty"`
	EducationWeight      float64 `json:"education_weight,omitempty"`
	CertificationsWeight float64 `json:"certifications_weight,omitempty"`
	IndustryFitWeight    float64 `json:"industry_fit_weight,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
	LogJSON bool `json:"log_json,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv overlays environment variables onto the config. Variables are read
// after godotenv has loaded any .env file, so both sources work.
func (c *Config) FromEnv() {
	if v := os.Getenv("TALENTMATCH_TAXONOMY_DIR"); v != "" {
		c.TaxonomyDir = v
	}
	if v := os.Getenv("TALENTMATCH_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("TALENTMATCH_REFERENCE_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			c.ReferenceYear = year
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ReferenceYear != 0 && (c.ReferenceYear < 1970 || c.ReferenceYear > 2100) {
		return fmt.Errorf("config error: 'reference_year' must be between 1970 and 2100")
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("config error: 'read_timeout' must be non-negative")
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("config error: 'write_timeout' must be non-negative")
	}
	for name, w := range map[string]float64{
		"skills_weight":         c.SkillsWeight,
		"experience_weight":     c.ExperienceWeight,
		"education_weight":      c.EducationWeight,
		"certifications_weight": c.CertificationsWeight,
		"industry_fit_weight":   c.IndustryFitWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: '%s' must be between 0.0 and 1.0", name)
		}
	}

	if c.TaxonomyDir != "" {
		if _, err := os.Stat(c.TaxonomyDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy directory not found: %s", c.TaxonomyDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.TaxonomyDir == "" {
		result.TaxonomyDir = defaults.TaxonomyDir
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.ReferenceYear == 0 {
		result.ReferenceYear = defaults.ReferenceYear
	}
	if result.ReadTimeout == 0 {
		result.ReadTimeout = defaults.ReadTimeout
	}
	if result.WriteTimeout == 0 {
		result.WriteTimeout = defaults.WriteTimeout
	}
	if result.SkillsWeight == 0 {
		result.SkillsWeight = defaults.SkillsWeight
	}
	if result.ExperienceWeight == 0 {
		result.ExperienceWeight = defaults.ExperienceWeight
	}
	if result.EducationWeight == 0 {
		result.EducationWeight = defaults.EducationWeight
	}
	if result.CertificationsWeight == 0 {
		result.CertificationsWeight = defaults.CertificationsWeight
	}
	if result.IndustryFitWeight == 0 {
		result.IndustryFitWeight = defaults.IndustryFitWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Weights assembles scoring weight overrides. Zero-valued fields fall back to
// the standard weights.
func (c *Config) Weights() (skills, experience, education, certifications, industryFit float64) {
	pick := func(v, def float64) float64 {
		if v > 0 {
			return v
		}
		return def
	}
	return pick(c.SkillsWeight, 0.35),
		pick(c.ExperienceWeight, 0.25),
		pick(c.EducationWeight, 0.15),
		pick(c.CertificationsWeight, 0.15),
		pick(c.IndustryFitWeight, 0.10)
}

// ReadTimeoutDuration returns the read timeout, defaulting to 15 seconds.
func (c *Config) ReadTimeoutDuration() time.Duration {
	if c.ReadTimeout <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the write timeout, defaulting to 30 seconds.
func (c *Config) WriteTimeoutDuration() time.Duration {
	if c.WriteTimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.WriteTimeout) * time.Second
}

// Addr returns the listen address, defaulting to ":8080".
func (c *Config) Addr() string {
	if c.ListenAddr == "" {
		return ":8080"
	}
	return c.ListenAddr
}
