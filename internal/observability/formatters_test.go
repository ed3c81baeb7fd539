package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ai-interviewer/internal/types"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := types.NewParsedResume()
	resume.PersonalInfo.Name = "Jane Doe"
	resume.PersonalInfo.Email = "jane@example.com"
	resume.Skills = []string{"Python", "React", "SQL"}
	resume.Experience = []types.Experience{
		{Title: "Software Engineer", Company: "Tech Corp"},
	}

	p.PrintResumeSummary(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, "Software Engineer at Tech Corp")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResumeSummary_TruncatesLongSkillList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := types.NewParsedResume()
	resume.Skills = []string{"a", "b", "c", "d", "e", "f", "g"}

	p.PrintResumeSummary(resume)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJob(types.Job{
		Title:        "Backend Engineer",
		Company:      "Acme Corp",
		Requirements: "5+ years Go experience\nPostgreSQL",
	})
	output := buf.String()

	assert.Contains(t, output, "JOB POSTING")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "5+ years Go experience")
}

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	scores := types.ScoreSet{Overall: 52, Technical: 60, Behavioral: 45, Communication: 50}
	feedback := types.Feedback{
		Strengths:   []string{"Demonstrates technical knowledge"},
		Weaknesses:  []string{"Needs more specific examples"},
		Suggestions: []string{"Use the STAR structure"},
	}

	p.PrintEvaluation(scores, feedback)
	output := buf.String()

	assert.Contains(t, output, "INTERVIEW RESULT")
	assert.Contains(t, output, "Overall:         52 / 100")
	assert.Contains(t, output, "Demonstrates technical knowledge")
	assert.Contains(t, output, "Use the STAR structure")
	assert.NotContains(t, output, "Per question", "empty list should not print a header")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJob(types.Job{Title: strings.Repeat("x", 100)})

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "line %q", line)
	}
}
