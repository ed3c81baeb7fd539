package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/ai-interviewer/internal/fetch"
	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/types"
)

var (
	// ErrHTTPRequestFailed is returned when the posting could not be fetched
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestJobPosting fetches a job posting URL and returns the job plus
// ingestion metadata. Platform detection picks content selectors for the
// known ATS boards; JavaScript-rendered pages fall back to a headless
// browser when useBrowser is set. With a non-nil client the posting is
// structured by the model, otherwise a heuristic carves out title and
// requirements.
func IngestJobPosting(ctx context.Context, urlStr string, client llm.Client, useBrowser bool) (types.Job, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	log.Debug().Str("url", urlStr).Str("platform", string(platform)).Msg("ingesting job posting")

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return types.Job{}, nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return types.Job{}, nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	// SPA fallback: re-render with a headless browser when the static HTML
	// carried almost no text.
	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		log.Debug().Int("chars", len(textContent)).Msg("content too short, falling back to browser rendering")
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr)
		if browserErr != nil {
			log.Warn().Err(browserErr).Msg("browser rendering failed, using HTTP content")
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			textContent = rendered
		}
	}

	cleanedText := CleanText(textContent)
	if cleanedText == "" {
		return types.Job{}, nil, ErrContentExtractionFailed
	}

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)

	job, err := ExtractJob(ctx, cleanedText, client)
	if err != nil {
		return types.Job{}, metadata, err
	}
	return job, metadata, nil
}

// heuristicJob is the terminal extraction stage: the first substantial line
// is taken as the title and the rest as requirements text.
func heuristicJob(cleanedText string) types.Job {
	job := types.Job{Requirements: cleanedText}
	for _, line := range strings.Split(cleanedText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) >= 4 && len(line) <= 120 {
			job.Title = line
			break
		}
	}
	return job
}
