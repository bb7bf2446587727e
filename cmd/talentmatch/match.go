package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorgan/talentmatch/internal/match"
	"github.com/jmorgan/talentmatch/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate profile against a job requirement",
	Long:  "Compute a compatibility report for a candidate profile JSON and a job requirement JSON: sub-scores, matching and missing skills, experience gap, strengths, concerns, and recommendations.",
	RunE:  runMatch,
}

var (
	matchProfileFile     string
	matchRequirementFile string
	matchOutputFile      string
	matchResumeFile      string
)

func init() {
	matchCmd.Flags().StringVar(&matchProfileFile, "profile", "", "Path to candidate profile JSON (from 'analyze')")
	matchCmd.Flags().StringVar(&matchResumeFile, "resume", "", "Path to raw resume text (extracted before scoring)")
	matchCmd.Flags().StringVar(&matchRequirementFile, "requirement", "", "Path to job requirement JSON (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = matchCmd.MarkFlagRequired("requirement")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if (matchProfileFile == "") == (matchResumeFile == "") {
		return fmt.Errorf("exactly one of --profile or --resume is required")
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	var profile *types.CandidateProfile
	if matchProfileFile != "" {
		data, err := os.ReadFile(matchProfileFile)
		if err != nil {
			return fmt.Errorf("failed to read profile file: %w", err)
		}
		profile = &types.CandidateProfile{}
		if err := json.Unmarshal(data, profile); err != nil {
			return fmt.Errorf("failed to parse profile JSON: %w", err)
		}
	} else {
		text, err := readInput(matchResumeFile)
		if err != nil {
			return err
		}
		profile = buildExtractor(cfg, store).Extract(text, "")
	}

	reqData, err := os.ReadFile(matchRequirementFile)
	if err != nil {
		return fmt.Errorf("failed to read requirement file: %w", err)
	}
	requirement := &types.JobRequirement{}
	if err := json.Unmarshal(reqData, requirement); err != nil {
		return fmt.Errorf("failed to parse requirement JSON: %w", err)
	}
	if err := requirement.Validate(); err != nil {
		return fmt.Errorf("invalid requirement: %w", err)
	}
	if requirement.MatchingWeights == nil {
		sk, ex, ed, ce, in := cfg.Weights()
		requirement.MatchingWeights = &types.MatchingWeights{
			Skills:         sk,
			Experience:     ex,
			Education:      ed,
			Certifications: ce,
			IndustryFit:    in,
		}
	}

	report := match.New(store).Score(profile, requirement)
	return writeOutput(matchOutputFile, report)
}
