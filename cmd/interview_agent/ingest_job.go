package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-interviewer/internal/ingestion"
	"github.com/jonathan/ai-interviewer/internal/llm"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Fetch a job posting URL and extract its title, company, and requirements",
	Long:  "Fetch a job posting from a URL (Greenhouse, Lever, Workday, or a generic page), clean the text, and extract a structured job description as JSON.",
	RunE:  runIngestJob,
}

var (
	ingestJobURL        string
	ingestJobOutput     string
	ingestJobAPIKey     string
	ingestJobUseBrowser bool
)

func init() {
	ingestJobCmd.Flags().StringVar(&ingestJobURL, "url", "", "URL of the job posting")
	ingestJobCmd.Flags().StringVarP(&ingestJobOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	ingestJobCmd.Flags().StringVar(&ingestJobAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	ingestJobCmd.Flags().BoolVar(&ingestJobUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	_ = ingestJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	client, err := optionalLLMClient(ctx, ingestJobAPIKey)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	job, meta, err := ingestion.IngestJobPosting(ctx, ingestJobURL, client, ingestJobUseBrowser)
	if err != nil {
		return fmt.Errorf("failed to ingest job posting: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Fetched %s (platform: %s)\n", meta.URL, meta.Platform)
	return writeJSONOutput(job, ingestJobOutput)
}

// optionalLLMClient builds a Gemini client when an API key is available,
// from the flag or the environment. A missing key returns a nil client and
// the callers fall through to their deterministic paths.
func optionalLLMClient(ctx context.Context, apiKey string) (llm.Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil
	}
	client, err := llm.NewGeminiClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
