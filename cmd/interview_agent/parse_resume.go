package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-interviewer/internal/ingestion"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into structured JSON",
	Long:  "Extract personal info, skills, experience, projects, education, certifications, and languages from a resume file (PDF or plain text) and print the result as JSON.",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeOutput string
	parseResumeAPIKey string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume file (PDF or plain text)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	client, err := optionalLLMClient(ctx, parseResumeAPIKey)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	text, err := ingestion.ReadResumeFile(parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	resume, err := ingestion.ExtractResume(ctx, text, client)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	return writeJSONOutput(resume, parseResumeOutput)
}

// writeJSONOutput marshals v with indentation to the given path, or to
// stdout when the path is empty.
func writeJSONOutput(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
