package ingestion

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// extractedJob is the wire shape of the job posting extraction prompt.
type extractedJob struct {
	Title        string `json:"title"`
	Company      string `json:"company,omitempty"`
	Requirements string `json:"requirements"`
}

// ExtractJob structures cleaned posting text into a Job. The model stage
// uses TierLite; on any model failure the heuristic stage serves the
// result, so extraction never fails once text is in hand.
func ExtractJob(ctx context.Context, cleanedText string, client llm.Client) (types.Job, error) {
	if client != nil {
		job, err := extractJobWithModel(ctx, cleanedText, client)
		if err == nil && job.Title != "" {
			return job, nil
		}
		log.Warn().Err(err).Msg("model job extraction failed, using heuristic")
	}
	return heuristicJob(cleanedText), nil
}

func extractJobWithModel(ctx context.Context, text string, client llm.Client) (types.Job, error) {
	schema := llm.JobPostingSchema()
	prompt := llm.BuildExtractionPrompt(schema, text)

	// Simple extraction task, the lite tier is enough
	jsonResp, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.Job{}, err
	}

	var extracted extractedJob
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &extracted); err != nil {
		return types.Job{}, err
	}

	return types.Job{
		Title:        strings.TrimSpace(extracted.Title),
		Company:      strings.TrimSpace(extracted.Company),
		Requirements: strings.TrimSpace(extracted.Requirements),
	}, nil
}
