package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ai-interviewer/internal/types"
)

func TestIsNonsensical(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"yup", true},
		{"tyu", true},
		{"asdf", true},
		{"12345", true},                // digits only
		{"...", true},                  // punctuation only
		{"aaaa bbbb", true},            // repeated character runs
		{"xkcd qwrt", true},            // consonant clusters
		{"I fixed the deployment pipeline last week", false},
		{"We shipped it", false},
		{"Python mostly", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonsensical(tt.text))
		})
	}
}

func TestIsPoorQuality(t *testing.T) {
	poorShort := "i worked on some stuff at my company"
	assert.True(t, isPoorQuality(poorShort, wordCount(poorShort)))

	poorVague := "it was fine and we did things and then more things " +
		"happened over time at the office most days"
	assert.True(t, isPoorQuality(poorVague, wordCount(poorVague)))

	substantive := "for example, i implemented a caching layer because our " +
		"database was overloaded, which reduced query latency significantly across the board"
	assert.False(t, isPoorQuality(substantive, wordCount(substantive)))
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func TestAnalyze_CountsDistinctTerms(t *testing.T) {
	answers := []types.Answer{{
		QuestionIndex: 0,
		Text: "I built a Python API with a PostgreSQL database and Docker, " +
			"then added Kubernetes for deployment after we solved a scaling bug, " +
			"for example the 500 errors we implemented retries against.",
	}}
	a := Analyze(answers)

	// python, api, database, docker, kubernetes, deployment, scaling at minimum
	assert.GreaterOrEqual(t, a.TechnicalTerms, 5)
	assert.GreaterOrEqual(t, a.ProblemSolving, 2)   // solved, solve, bug
	assert.GreaterOrEqual(t, a.SpecificExamples, 2) // "for example" plus digits
	assert.Equal(t, 1, a.MeaningfulAnswers)
	assert.Zero(t, a.NonsensicalAnswers)
	assert.Zero(t, a.PoorQualityAnswers)
}

func TestAnalyze_ClassifiesEachAnswerOnce(t *testing.T) {
	answers := []types.Answer{
		{QuestionIndex: 0, Text: "yup"},
		{QuestionIndex: 1, Text: "I did some work there"},
		{QuestionIndex: 2, Text: "In my previous role I designed and implemented a React " +
			"dashboard that our support team used daily, which reduced ticket handling " +
			"time because the data was finally in one place."},
	}
	a := Analyze(answers)

	assert.Equal(t, 1, a.NonsensicalAnswers)
	assert.Equal(t, 1, a.PoorQualityAnswers)
	assert.Equal(t, 1, a.MeaningfulAnswers)
}

func TestAnalyze_AverageWordLength(t *testing.T) {
	answers := []types.Answer{
		{QuestionIndex: 0, Text: "one two three four"},
		{QuestionIndex: 1, Text: "five six"},
	}
	a := Analyze(answers)
	assert.InDelta(t, 3.0, a.AverageWordLength, 0.001)
}

func TestAnalyze_EmptyBatch(t *testing.T) {
	a := Analyze(nil)
	assert.Zero(t, a.TechnicalTerms)
	assert.Zero(t, a.MeaningfulAnswers)
	assert.Zero(t, a.AverageWordLength)
}

func TestHasCommunicationQuality(t *testing.T) {
	multi := "i led the migration to the new billing system. it took three months of " +
		"careful planning. we finished without downtime and the team learned a lot."
	assert.True(t, hasCommunicationQuality(multi, wordCount(multi)))

	assert.False(t, hasCommunicationQuality("short answer", 2))

	single := "one long sentence with plenty of words but no terminal punctuation " +
		"anywhere in it which keeps the sentence count at a single unit total"
	assert.False(t, hasCommunicationQuality(single, wordCount(single)))
}

func TestIsRelevantToJob(t *testing.T) {
	job := types.Job{
		Title:        "Backend Engineer",
		Requirements: "Go and PostgreSQL experience",
	}
	assert.True(t, ContainsTechnicalTerm("we tuned postgresql indexes"))
	assert.True(t, IsRelevantToJob("I have deep backend experience", job))
	assert.True(t, IsRelevantToJob("worked with postgresql daily", job))
	assert.False(t, IsRelevantToJob("I enjoy painting", job))
}

func TestContainsSTARLanguage(t *testing.T) {
	assert.True(t, ContainsSTARLanguage("The situation was tense, so I took action and the result was positive"))
	assert.False(t, ContainsSTARLanguage("it went fine"))
}
