package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract the thing.",
		Fields: []SchemaField{
			{Name: "title", Required: true, Description: "the title"},
			{Name: "tags", Type: `["string"]`},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some posting text")

	assert.True(t, strings.HasPrefix(prompt, "Extract the thing."))
	assert.Contains(t, prompt, `"title": string (required), // the title`)
	assert.Contains(t, prompt, `"tags": ["string"]`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "\"\"\"\nsome posting text\n\"\"\"")
}

func TestPredefinedSchemas(t *testing.T) {
	job := JobPostingSchema()
	assert.Equal(t, "JobPosting", job.Name)
	fieldNames := make([]string, 0, len(job.Fields))
	for _, f := range job.Fields {
		fieldNames = append(fieldNames, f.Name)
	}
	assert.Equal(t, []string{"title", "company", "requirements"}, fieldNames)

	resume := ResumeSchema()
	assert.Equal(t, "Resume", resume.Name)
	assert.NotEmpty(t, resume.Fields)
}
