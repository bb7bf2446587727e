package main

import (
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract a structured candidate profile from resume text",
	Long:  "Analyze resume text and produce a structured candidate profile JSON: contact info, skills by category, experience, education, certifications, and an inferred experience level.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile  string
	analyzeOutputFile string
	analyzeIndustry   string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume text file (default: stdin)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Industry hint (default: detect from text)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	text, err := readInput(analyzeInputFile)
	if err != nil {
		return err
	}

	profile := buildExtractor(cfg, store).Extract(text, analyzeIndustry)
	return writeOutput(analyzeOutputFile, profile)
}
