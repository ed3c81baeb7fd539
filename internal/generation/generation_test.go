package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// fakeClient returns canned responses so the fallback chain can be
// exercised without a live provider. Per-tier replies in byTier override
// the defaults; every call records the tier it was made with.
type fakeClient struct {
	response string
	err      error
	calls    int
	tiers    []llm.ModelTier
	byTier   map[llm.ModelTier]fakeReply
}

type fakeReply struct {
	response string
	err      error
}

func (f *fakeClient) reply(tier llm.ModelTier) (string, error) {
	f.calls++
	f.tiers = append(f.tiers, tier)
	if r, ok := f.byTier[tier]; ok {
		return r.response, r.err
	}
	return f.response, f.err
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.reply(tier)
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.reply(tier)
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                       { return nil }

const validQuestionJSON = `[
	{"text": "Tell me about yourself and your background?", "category": "general"},
	{"text": "How would you design a job queue from scratch?", "category": "technical"},
	{"text": "Tell me about a time you disagreed with a teammate?", "category": "behavioral"},
	{"text": "Which project are you most proud of and why exactly?", "category": "technical"},
	{"text": "Why are you interested in this particular position?", "category": "general"}
]`

func testJob() types.Job {
	return types.Job{Title: "Software Engineer", Requirements: "Go, PostgreSQL"}
}

func TestQuestionGenerator_ModelSuccess(t *testing.T) {
	client := &fakeClient{response: validQuestionJSON}
	g := NewQuestionGenerator(client)

	qs := g.Generate(context.Background(), types.NewParsedResume(), testJob())
	require.Len(t, qs, 5)
	assert.Equal(t, []llm.ModelTier{llm.TierStandard}, client.tiers)
	assert.Equal(t, "Tell me about yourself and your background?", qs[0].Text)
	assert.Equal(t, types.CategoryTechnical, qs[1].Category)
}

func TestQuestionGenerator_LiteTierRescues(t *testing.T) {
	// The standard tier failing hands the prompt to the lite tier before
	// anything falls back to the deterministic generator.
	client := &fakeClient{
		response: validQuestionJSON,
		byTier: map[llm.ModelTier]fakeReply{
			llm.TierStandard: {err: errors.New("quota exceeded")},
		},
	}
	g := NewQuestionGenerator(client)

	qs := g.Generate(context.Background(), types.NewParsedResume(), testJob())
	require.Len(t, qs, 5)
	assert.Equal(t, []llm.ModelTier{llm.TierStandard, llm.TierLite}, client.tiers)
	assert.Equal(t, "Tell me about yourself and your background?", qs[0].Text)
}

func TestQuestionGenerator_ModelErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	g := NewQuestionGenerator(client)

	qs := g.Generate(context.Background(), types.NewParsedResume(), testJob())
	require.Len(t, qs, 5)
	assert.Equal(t, []llm.ModelTier{llm.TierStandard, llm.TierLite}, client.tiers)
}

func TestQuestionGenerator_TooFewQuestionsFallsBack(t *testing.T) {
	client := &fakeClient{response: `[{"text": "Only one question here, sadly?", "category": "general"}]`}
	g := NewQuestionGenerator(client)

	qs := g.Generate(context.Background(), types.NewParsedResume(), testJob())
	require.Len(t, qs, 5)
}

func TestQuestionGenerator_GarbageFallsBack(t *testing.T) {
	client := &fakeClient{response: "I cannot generate questions right now."}
	g := NewQuestionGenerator(client)

	qs := g.Generate(context.Background(), types.NewParsedResume(), testJob())
	require.Len(t, qs, 5)
	for _, q := range qs {
		assert.NotEmpty(t, q.Text)
	}
}

func TestQuestionGenerator_NilClient(t *testing.T) {
	g := NewQuestionGenerator(nil)
	qs := g.Generate(context.Background(), nil, testJob())
	require.Len(t, qs, 5)
}

func TestEvaluator_ModelSuccessClampsScores(t *testing.T) {
	client := &fakeClient{response: `{
		"overall": 105, "technical": 72.6, "behavioral": -3, "communication": 80,
		"strengths": ["Clear communicator"],
		"weaknesses": ["Light on specifics"],
		"suggestions": ["Add concrete examples"],
		"perQuestion": ["Good", "Needs detail"]
	}`}
	e := NewEvaluator(client)

	ev := e.Evaluate(context.Background(), nil, nil, testJob())
	assert.Equal(t, 100, ev.Scores.Overall)
	assert.Equal(t, 73, ev.Scores.Technical)
	assert.Equal(t, 0, ev.Scores.Behavioral)
	assert.Equal(t, 80, ev.Scores.Communication)
	assert.Equal(t, []string{"Clear communicator"}, ev.Feedback.Strengths)
	assert.Len(t, ev.Feedback.PerQuestion, 2)
}

func TestEvaluator_LiteTierRescues(t *testing.T) {
	client := &fakeClient{
		response: `{"overall": 60, "technical": 60, "behavioral": 60, "communication": 60,
			"strengths": ["Steady"], "weaknesses": ["Terse"], "suggestions": ["Expand"]}`,
		byTier: map[llm.ModelTier]fakeReply{
			llm.TierAdvanced: {err: errors.New("model overloaded")},
		},
	}
	e := NewEvaluator(client)

	ev := e.Evaluate(context.Background(), nil, nil, testJob())
	assert.Equal(t, []llm.ModelTier{llm.TierAdvanced, llm.TierLite}, client.tiers)
	assert.Equal(t, 60, ev.Scores.Overall)
	assert.Equal(t, []string{"Steady"}, ev.Feedback.Strengths)
}

func TestEvaluator_MissingListsGetDefaults(t *testing.T) {
	client := &fakeClient{response: `{"overall": 50, "technical": 50, "behavioral": 50, "communication": 50}`}
	e := NewEvaluator(client)

	ev := e.Evaluate(context.Background(), nil, nil, testJob())
	assert.NotEmpty(t, ev.Feedback.Strengths)
	assert.NotEmpty(t, ev.Feedback.Weaknesses)
	assert.NotEmpty(t, ev.Feedback.Suggestions)
}

func TestEvaluator_InvalidResponseFallsBack(t *testing.T) {
	client := &fakeClient{response: `{"overall": "very good"}`}
	e := NewEvaluator(client)

	qs := []types.Question{{Text: "Tell me about a challenge?", Category: types.CategoryBehavioral}}
	answers := []types.Answer{{QuestionIndex: 0, Text: "yup"}}

	ev := e.Evaluate(context.Background(), qs, answers, testJob())
	// Deterministic path: a single nonsensical answer caps the scores.
	assert.LessOrEqual(t, ev.Scores.Overall, 15)
	assert.Len(t, ev.Feedback.PerQuestion, 1)
}

func TestEvaluator_NilClientDeterministic(t *testing.T) {
	e := NewEvaluator(nil)

	qs := []types.Question{
		{Text: "Walk me through a recent project?", Category: types.CategoryTechnical},
	}
	answers := []types.Answer{{
		QuestionIndex: 0,
		Text: "I built a Python data pipeline at my last job that solved a reporting " +
			"bug and cut the nightly batch from four hours down to forty minutes overall.",
	}}

	ev := e.Evaluate(context.Background(), qs, answers, testJob())
	assert.Greater(t, ev.Scores.Technical, 0)
	assert.NotEmpty(t, ev.Feedback.Strengths)
	require.Len(t, ev.Feedback.PerQuestion, 1)
	assert.Contains(t, ev.Feedback.PerQuestion[0], "technical specifics")
}

func TestBuildTranscript(t *testing.T) {
	qs := []types.Question{
		{Text: "First question?"},
		{Text: "Second question?"},
	}
	answers := []types.Answer{
		{QuestionIndex: 0, Text: "first answer"},
		{QuestionIndex: 1, Text: "second answer"},
	}
	transcript := buildTranscript(qs, answers)
	assert.Contains(t, transcript, "Q1: First question?")
	assert.Contains(t, transcript, "A2: second answer")
}
