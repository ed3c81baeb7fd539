package ingestion

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-interviewer/internal/llm"
)

// TestExtractJob_LiveModel runs against the real Gemini API and is skipped
// unless GEMINI_API_KEY is set.
func TestExtractJob_LiveModel(t *testing.T) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set, skipping live model test")
	}

	ctx := context.Background()
	client, err := llm.NewGeminiClient(ctx, llm.DefaultGeminiConfig(), apiKey)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	posting := `Senior Backend Engineer
Acme Logistics

About the role:
We run the routing platform for same-day delivery.

Requirements:
- 5+ years of Go experience
- Production PostgreSQL experience
- Familiarity with Kubernetes`

	job, err := ExtractJob(ctx, posting, client)
	require.NoError(t, err)

	assert.NotEmpty(t, job.Title)
	assert.Contains(t, job.Requirements, "Go")
}
