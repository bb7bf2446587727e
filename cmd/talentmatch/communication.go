package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmorgan/talentmatch/internal/speech"
	"github.com/jmorgan/talentmatch/internal/types"
)

var communicationCmd = &cobra.Command{
	Use:   "communication",
	Short: "Score an interview transcript for communication quality",
	Long:  "Score a transcript on clarity, confidence, fluency, vocabulary, and industry knowledge. Acoustic features measured upstream can be supplied as a JSON file; without them clarity falls back to a default.",
	RunE:  runCommunication,
}

var (
	commInputFile    string
	commOutputFile   string
	commFeaturesFile string
	commIndustry     string
)

func init() {
	communicationCmd.Flags().StringVarP(&commInputFile, "in", "i", "", "Path to transcript text file (default: stdin)")
	communicationCmd.Flags().StringVarP(&commOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	communicationCmd.Flags().StringVar(&commFeaturesFile, "features", "", "Path to acoustic features JSON file")
	communicationCmd.Flags().StringVar(&commIndustry, "industry", "", "Industry hint (default: detect from transcript)")

	rootCmd.AddCommand(communicationCmd)
}

func runCommunication(_ *cobra.Command, _ []string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	transcript, err := readInput(commInputFile)
	if err != nil {
		return err
	}

	var features *types.AcousticFeatures
	if commFeaturesFile != "" {
		data, err := os.ReadFile(commFeaturesFile)
		if err != nil {
			return fmt.Errorf("failed to read features file: %w", err)
		}
		features = &types.AcousticFeatures{}
		if err := json.Unmarshal(data, features); err != nil {
			return fmt.Errorf("failed to parse features JSON: %w", err)
		}
	}

	result := speech.New(store).Analyze(transcript, features, commIndustry)
	return writeOutput(commOutputFile, result)
}
