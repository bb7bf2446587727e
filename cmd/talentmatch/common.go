package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jmorgan/talentmatch/internal/config"
	"github.com/jmorgan/talentmatch/internal/extract"
	"github.com/jmorgan/talentmatch/internal/taxonomy"
)

var (
	configPath  string
	taxonomyDir string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&taxonomyDir, "taxonomy-dir", "", "Directory of taxonomy dataset JSON files (overrides config)")
}

// loadAppConfig merges the optional config file with environment overlays and
// the --taxonomy-dir flag, then validates the result. Precedence is flag over
// environment over file.
func loadAppConfig() (*config.Config, error) {
	defaults := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		defaults = *loaded
	}
	defaults.FromEnv()

	flags := config.Config{TaxonomyDir: taxonomyDir}
	cfg := flags.MergeWithDefaults(defaults)
	// The merge skips bool fields; no persistent flags set them, so the
	// file values carry through.
	cfg.Verbose = defaults.Verbose
	cfg.LogJSON = defaults.LogJSON
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// buildStore creates the taxonomy store, loading dataset files over the
// compiled-in defaults when a taxonomy directory is configured.
func buildStore(cfg *config.Config) (*taxonomy.Store, error) {
	store := taxonomy.NewStore()
	if cfg.TaxonomyDir != "" {
		if err := store.Load(cfg.TaxonomyDir); err != nil {
			return nil, fmt.Errorf("failed to load taxonomy datasets: %w", err)
		}
	}
	return store, nil
}

// buildExtractor applies the configured reference year, if any.
func buildExtractor(cfg *config.Config, store *taxonomy.Store) *extract.Extractor {
	var opts []extract.Option
	if cfg.ReferenceYear != 0 {
		opts = append(opts, extract.WithReferenceYear(cfg.ReferenceYear))
	}
	return extract.New(store, opts...)
}

// readInput returns the contents of path, or stdin when path is "-" or empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

// writeOutput marshals v as indented JSON to path, or stdout when path is
// empty.
func writeOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
