package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-interviewer/internal/generation"
	"github.com/jonathan/ai-interviewer/internal/ingestion"
	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/types"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a resume and job",
	Long:  "Generate five interview questions tailored to a candidate's resume and a job posting. The resume is optional; without one the questions are generic to the role.",
	RunE:  runQuestions,
}

var (
	questionsResume     string
	questionsJob        string
	questionsJobURL     string
	questionsOutput     string
	questionsAPIKey     string
	questionsUseBrowser bool
)

func init() {
	questionsCmd.Flags().StringVarP(&questionsResume, "resume", "r", "", "Path to resume file (PDF or plain text, optional)")
	questionsCmd.Flags().StringVarP(&questionsJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	questionsCmd.Flags().StringVar(&questionsJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	questionsCmd.Flags().StringVarP(&questionsOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	questionsCmd.Flags().StringVar(&questionsAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	questionsCmd.Flags().BoolVar(&questionsUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(_ *cobra.Command, _ []string) error {
	if questionsJob == "" && questionsJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if questionsJob != "" && questionsJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	ctx := context.Background()

	client, err := optionalLLMClient(ctx, questionsAPIKey)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	var resume *types.ParsedResume
	if questionsResume != "" {
		text, err := ingestion.ReadResumeFile(questionsResume)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		resume, err = ingestion.ExtractResume(ctx, text, client)
		if err != nil {
			return fmt.Errorf("failed to parse resume: %w", err)
		}
	}

	job, err := loadJob(ctx, client, questionsJob, questionsJobURL, questionsUseBrowser)
	if err != nil {
		return err
	}

	qs := generation.NewQuestionGenerator(client).Generate(ctx, resume, job)
	return writeJSONOutput(qs, questionsOutput)
}

// loadJob builds a Job from either a local text file or a posting URL.
func loadJob(ctx context.Context, client llm.Client, jobPath, jobURL string, useBrowser bool) (types.Job, error) {
	if jobURL != "" {
		job, _, err := ingestion.IngestJobPosting(ctx, jobURL, client, useBrowser)
		if err != nil {
			return types.Job{}, fmt.Errorf("failed to ingest job posting: %w", err)
		}
		return job, nil
	}

	content, err := os.ReadFile(jobPath)
	if err != nil {
		return types.Job{}, fmt.Errorf("failed to read job file: %w", err)
	}
	job, err := ingestion.ExtractJob(ctx, ingestion.CleanText(string(content)), client)
	if err != nil {
		return types.Job{}, fmt.Errorf("failed to extract job: %w", err)
	}
	return job, nil
}
