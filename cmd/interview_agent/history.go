package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ai-interviewer/internal/db"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a candidate's stored interviews",
	Long:  "List all stored interviews for a candidate phone number, most recent first, with the average overall score across completed interviews.",
	RunE:  runHistory,
}

var (
	historyPhone       string
	historyDatabaseURL string
)

func init() {
	historyCmd.Flags().StringVar(&historyPhone, "phone", "", "Candidate phone number")
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	_ = historyCmd.MarkFlagRequired("phone")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	interviews, err := database.ListInterviewsByPhone(ctx, historyPhone)
	if err != nil {
		return err
	}
	if len(interviews) == 0 {
		fmt.Printf("No interviews found for %s\n", historyPhone)
		return nil
	}

	for _, interview := range interviews {
		status := "pending"
		score := "-"
		if interview.CompletedAt != nil {
			status = "completed"
		}
		if interview.Scores != nil {
			score = fmt.Sprintf("%d", interview.Scores.Overall)
		}
		fmt.Printf("%s  %-10s  overall=%-3s  %s  %s\n",
			interview.CreatedAt.Format("2006-01-02 15:04"),
			status, score, interview.ID, interview.Job.Title)
	}

	avg, count, err := database.AverageOverallScore(ctx, historyPhone)
	if err != nil {
		return err
	}
	if count > 0 {
		fmt.Printf("\nAverage overall score across %d completed interviews: %.1f\n", count, avg)
	}
	return nil
}
