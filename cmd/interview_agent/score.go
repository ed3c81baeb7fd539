package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-interviewer/internal/generation"
	"github.com/jonathan/ai-interviewer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score recorded interview answers",
	Long:  "Evaluate a transcript of interview questions and answers against a job posting, producing per-question scores, aggregate scores and feedback.",
	RunE:  runScore,
}

var (
	scoreTranscript string
	scoreJob        string
	scoreJobURL     string
	scoreOutput     string
	scoreAPIKey     string
	scoreUseBrowser bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreTranscript, "transcript", "t", "", "Path to transcript JSON file with questions and answers (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	scoreCmd.MarkFlagRequired("transcript")

	rootCmd.AddCommand(scoreCmd)
}

// transcript is the on-disk shape the score command consumes. The questions
// half matches what the questions command writes; the answers half is keyed
// by question index like the server API.
type transcript struct {
	Questions []types.Question `json:"questions"`
	Answers   []types.Answer   `json:"answers"`
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreJob == "" && scoreJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if scoreJob != "" && scoreJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	tr, err := readTranscript(scoreTranscript)
	if err != nil {
		return err
	}

	ctx := context.Background()

	client, err := optionalLLMClient(ctx, scoreAPIKey)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	job, err := loadJob(ctx, client, scoreJob, scoreJobURL, scoreUseBrowser)
	if err != nil {
		return err
	}

	result := generation.NewEvaluator(client).Evaluate(ctx, tr.Questions, tr.Answers, job)
	return writeJSONOutput(result, scoreOutput)
}

func readTranscript(path string) (transcript, error) {
	var tr transcript
	data, err := os.ReadFile(path)
	if err != nil {
		return tr, fmt.Errorf("failed to read transcript: %w", err)
	}
	if err := json.Unmarshal(data, &tr); err != nil {
		return tr, fmt.Errorf("failed to parse transcript: %w", err)
	}
	if len(tr.Questions) == 0 {
		return tr, fmt.Errorf("transcript has no questions")
	}
	if len(tr.Answers) == 0 {
		return tr, fmt.Errorf("transcript has no answers")
	}
	for _, a := range tr.Answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(tr.Questions) {
			return tr, fmt.Errorf("answer references question %d, transcript has %d questions", a.QuestionIndex, len(tr.Questions))
		}
	}
	return tr, nil
}
