// Package main provides the entry point for the talentmatch CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talentmatch",
	Short: "Candidate and job compatibility analysis",
	Long:  "talentmatch extracts structured candidate profiles from resume text, scores interview transcripts for communication quality, and computes compatibility reports against job requirements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
