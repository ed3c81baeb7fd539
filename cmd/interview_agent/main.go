// Package main provides the entry point for the AI interviewer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/ai-interviewer/internal/logging"
)

var (
	rootLogLevel  string
	rootLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "AI Interviewer",
	Long:  "AI Interviewer runs automated screening interviews: it parses a resume, generates tailored questions for a job posting, and scores the candidate's answers.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(logging.Config{Level: rootLogLevel, Format: rootLogFormat})
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "json", "Log format (json or pretty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
