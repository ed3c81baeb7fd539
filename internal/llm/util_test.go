package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_Fenced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"score\": 8}\n```",
			want:  `{"score": 8}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"score\": 8}\n```",
			want:  `{"score": 8}`,
		},
		{
			name:  "fence with other language tag",
			input: "```javascript\n{\"score\": 8}\n```",
			want:  `{"score": 8}`,
		},
		{
			name:  "already clean",
			input: `{"score": 8}`,
			want:  `{"score": 8}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_Chatter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "preamble before object",
			input: "Here is the evaluation you asked for:\n{\"overall\": 7.5}",
			want:  `{"overall": 7.5}`,
		},
		{
			name:  "multi sentence preamble",
			input: "I reviewed the answer against the question. The candidate covered the main points. Result: {\"strengths\": [\"clear structure\"]}",
			want:  `{"strengths": ["clear structure"]}`,
		},
		{
			name:  "preamble before array",
			input: "The generated questions are:\n[\"Tell me about yourself.\"]",
			want:  `["Tell me about yourself."]`,
		},
		{
			name:  "trailing chatter",
			input: "{\"overall\": 7.5}\n\nLet me know if you need a breakdown!",
			want:  `{"overall": 7.5}`,
		},
		{
			name:  "nested payload",
			input: "Output:\n{\"feedback\": {\"tone\": \"direct\"}}",
			want:  `{"feedback": {"tone": "direct"}}`,
		},
		{
			name:  "escaped quotes survive",
			input: "Result: {\"quote\": \"they said \\\"ship it\\\"\"}",
			want:  `{"quote": "they said \"ship it\""}`,
		},
		{
			name:  "no JSON at all",
			input: "I could not produce a result.",
			want:  "I could not produce a result.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractBalanced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple object", `{"a": 1}`, `{"a": 1}`},
		{"nested object", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`},
		{"object then trailing text", `{"a": 1} trailing`, `{"a": 1}`},
		{"braces inside string", `{"tpl": "Hi {name}!"}`, `{"tpl": "Hi {name}!"}`},
		{"unterminated object", `{"a": 1`, ""},
		{"empty input", "", ""},
		{"wrong leading byte", "not json", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[[1, 2], [3, 4]]`, extractJSONArray(`[[1, 2], [3, 4]] extra`))
	assert.Equal(t, `[{"id": 1}, {"id": 2}]`, extractJSONArray(`[{"id": 1}, {"id": 2}]`))
	assert.Equal(t, "", extractJSONArray("not an array"))
	assert.Equal(t, "", extractJSONArray(""))
}
