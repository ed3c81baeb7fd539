package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-interviewer/internal/types"
)

func writeTranscriptFile(t *testing.T, tr transcript) string {
	t.Helper()
	data, err := json.Marshal(tr)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "transcript.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadTranscript(t *testing.T) {
	path := writeTranscriptFile(t, transcript{
		Questions: testQuestions(),
		Answers: []types.Answer{
			{QuestionIndex: 0, Text: "I led the migration of our billing service."},
			{QuestionIndex: 1, Text: "I would start by profiling the slow queries."},
		},
	})

	tr, err := readTranscript(path)
	require.NoError(t, err)
	assert.Len(t, tr.Questions, 2)
	assert.Len(t, tr.Answers, 2)
}

func TestReadTranscript_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		tr      transcript
		wantErr string
	}{
		{
			name:    "no questions",
			tr:      transcript{Answers: []types.Answer{{QuestionIndex: 0, Text: "hi"}}},
			wantErr: "no questions",
		},
		{
			name:    "no answers",
			tr:      transcript{Questions: testQuestions()},
			wantErr: "no answers",
		},
		{
			name: "answer out of range",
			tr: transcript{
				Questions: testQuestions(),
				Answers:   []types.Answer{{QuestionIndex: 5, Text: "hi"}},
			},
			wantErr: "references question 5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTranscriptFile(t, tt.tr)
			_, err := readTranscript(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadTranscript_MissingFile(t *testing.T) {
	_, err := readTranscript(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read transcript")
}

func TestReadTranscript_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := readTranscript(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse transcript")
}
