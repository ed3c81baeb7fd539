package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-interviewer/internal/types"
)

func testQuestions() []types.Question {
	return []types.Question{
		{Text: "Tell me about yourself.", Category: types.CategoryGeneral},
		{Text: "Describe a bug you fixed.", Category: types.CategoryTechnical},
	}
}

func TestCollectAnswers(t *testing.T) {
	in := strings.NewReader("I am a backend engineer.\nI fixed a cache bug.\n")
	var out bytes.Buffer
	job := types.Job{Title: "Software Engineer", Company: "Acme"}

	answers, err := collectAnswers(in, &out, job, testQuestions())
	require.NoError(t, err)

	require.Len(t, answers, 2)
	assert.Equal(t, 0, answers[0].QuestionIndex)
	assert.Equal(t, "I am a backend engineer.", answers[0].Text)
	assert.Equal(t, 1, answers[1].QuestionIndex)
	assert.Equal(t, "I fixed a cache bug.", answers[1].Text)

	prompt := out.String()
	assert.Contains(t, prompt, "Software Engineer at Acme")
	assert.Contains(t, prompt, "Q1 (general)")
	assert.Contains(t, prompt, "Q2 (technical)")
}

func TestCollectAnswers_TruncatedInput(t *testing.T) {
	// Input ends after the first answer; the partial transcript is kept.
	in := strings.NewReader("Only one answer.\n")
	var out bytes.Buffer

	answers, err := collectAnswers(in, &out, types.Job{Title: "Analyst"}, testQuestions())
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "Only one answer.", answers[0].Text)
}

func TestCollectAnswers_NoInput(t *testing.T) {
	var out bytes.Buffer

	_, err := collectAnswers(strings.NewReader(""), &out, types.Job{Title: "Analyst"}, testQuestions())
	assert.Error(t, err)
}

func TestJobHeadline(t *testing.T) {
	assert.Equal(t, "Engineer at Acme", jobHeadline(types.Job{Title: "Engineer", Company: "Acme"}))
	assert.Equal(t, "Engineer", jobHeadline(types.Job{Title: "Engineer"}))
}

