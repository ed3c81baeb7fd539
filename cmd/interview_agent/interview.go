package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-interviewer/internal/config"
	"github.com/jonathan/ai-interviewer/internal/db"
	"github.com/jonathan/ai-interviewer/internal/generation"
	"github.com/jonathan/ai-interviewer/internal/ingestion"
	"github.com/jonathan/ai-interviewer/internal/observability"
	"github.com/jonathan/ai-interviewer/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a full screening interview in the terminal",
	Long: `Run the interview flow end-to-end: parse the resume, generate five questions for the job, collect answers interactively, then score the candidate and print feedback.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values. When a database URL is configured, the finished interview is stored under the candidate's phone number.`,
	RunE: runInterviewCmd,
}

var (
	interviewConfigPath  string
	interviewResume      string
	interviewJob         string
	interviewJobURL      string
	interviewName        string
	interviewEmail       string
	interviewPhone       string
	interviewAPIKey      string
	interviewUseBrowser  bool
	interviewDatabaseURL string
	interviewOutput      string
)

func init() {
	// Config file flag (processed first)
	interviewCmd.Flags().StringVar(&interviewConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	interviewCmd.Flags().StringVarP(&interviewResume, "resume", "r", "", "Path to resume file (PDF or plain text, optional)")
	interviewCmd.Flags().StringVarP(&interviewJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	interviewCmd.Flags().StringVar(&interviewJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	interviewCmd.Flags().StringVarP(&interviewName, "name", "n", "", "Candidate name")
	interviewCmd.Flags().StringVar(&interviewEmail, "email", "", "Candidate email")
	interviewCmd.Flags().StringVar(&interviewPhone, "phone", "", "Candidate phone (lookup key for stored interviews)")
	interviewCmd.Flags().StringVar(&interviewAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	interviewCmd.Flags().BoolVar(&interviewUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	interviewCmd.Flags().StringVar(&interviewDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	interviewCmd.Flags().StringVarP(&interviewOutput, "out", "o", "", "Path to write the result JSON (defaults to stdout summary only)")

	rootCmd.AddCommand(interviewCmd)
}

func runInterviewCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveInterviewConfig(cmd)
	if err != nil {
		return err
	}

	client, err := optionalLLMClient(ctx, cfg.APIKey)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close()
	}

	var resume *types.ParsedResume
	if cfg.Resume != "" {
		text, err := ingestion.ReadResumeFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		resume, err = ingestion.ExtractResume(ctx, text, client)
		if err != nil {
			return fmt.Errorf("failed to parse resume: %w", err)
		}
	}

	job, err := loadJob(ctx, client, cfg.Job, cfg.JobURL, cfg.UseBrowser)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResumeSummary(resume)
	printer.PrintJob(job)

	questions := generation.NewQuestionGenerator(client).Generate(ctx, resume, job)

	answers, err := collectAnswers(os.Stdin, os.Stdout, job, questions)
	if err != nil {
		return err
	}

	result := generation.NewEvaluator(client).Evaluate(ctx, questions, answers, job)
	printer.PrintEvaluation(result.Scores, result.Feedback)

	if cfg.DatabaseURL != "" {
		if err := storeInterview(ctx, cfg, resume, job, questions, answers, result); err != nil {
			return err
		}
	}

	if interviewOutput != "" {
		return writeJSONOutput(result, interviewOutput)
	}
	return nil
}

// resolveInterviewConfig merges the config file, explicit flags, and
// environment into the effective configuration.
func resolveInterviewConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if interviewConfigPath != "" {
		loaded, err := config.LoadConfig(interviewConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// CLI flags override config file values, but only when explicitly set.
	if cmd.Flags().Changed("resume") {
		cfg.Resume = interviewResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = interviewJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = interviewJobURL
	}
	if cmd.Flags().Changed("name") {
		cfg.Name = interviewName
	}
	if cmd.Flags().Changed("email") {
		cfg.Email = interviewEmail
	}
	if cmd.Flags().Changed("phone") {
		cfg.Phone = interviewPhone
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = interviewAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = interviewUseBrowser
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = interviewDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}
	if cfg.DatabaseURL != "" && cfg.Phone == "" {
		return cfg, fmt.Errorf("--phone is required when storing interviews (db-url is set)")
	}
	return cfg, nil
}

// collectAnswers prompts for each question on out and reads one answer per
// question from in. Empty answers are kept; the analyzer scores them as
// missing substance.
func collectAnswers(in io.Reader, out io.Writer, job types.Job, questions []types.Question) ([]types.Answer, error) {
	fmt.Fprintf(out, "\nInterview for %s\n", jobHeadline(job))
	fmt.Fprintln(out, strings.Repeat("=", 40))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	answers := make([]types.Answer, 0, len(questions))
	for i, q := range questions {
		fmt.Fprintf(out, "\nQ%d (%s): %s\n> ", i+1, q.Category, q.Text)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read answer: %w", err)
			}
			break
		}
		answers = append(answers, types.Answer{
			QuestionIndex: i,
			Text:          strings.TrimSpace(scanner.Text()),
		})
	}

	if len(answers) == 0 {
		return nil, fmt.Errorf("no answers provided")
	}
	return answers, nil
}

func jobHeadline(job types.Job) string {
	if job.Company != "" {
		return fmt.Sprintf("%s at %s", job.Title, job.Company)
	}
	return job.Title
}

// storeInterview persists a finished CLI interview the same way the HTTP
// server does.
func storeInterview(ctx context.Context, cfg config.Config, resume *types.ParsedResume, job types.Job, questions []types.Question, answers []types.Answer, result generation.Evaluation) error {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	name := cfg.Name
	if name == "" && resume != nil {
		name = resume.PersonalInfo.Name
	}

	interview := &types.Interview{
		Phone:         cfg.Phone,
		CandidateName: name,
		Job:           job,
		Resume:        resume,
		Questions:     questions,
	}
	if err := database.CreateInterview(ctx, interview); err != nil {
		return err
	}
	if err := database.SaveResults(ctx, interview.ID, answers, result.Scores, result.Feedback); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nStored interview %s for %s\n", interview.ID, cfg.Phone)
	return nil
}
