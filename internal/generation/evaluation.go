package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/analysis"
	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/prompts"
	"github.com/jonathan/ai-interviewer/internal/scoring"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// Evaluation bundles the two artifacts produced by scoring a completed
// interview.
type Evaluation struct {
	Scores   types.ScoreSet
	Feedback types.Feedback
}

// Evaluator scores completed interviews. Like QuestionGenerator, the
// generative stages are optional and the deterministic analyzer is the
// terminal stage.
type Evaluator struct {
	client llm.Client
	tiers  []llm.ModelTier
}

// NewEvaluator returns an evaluator backed by the given client. client may
// be nil. The advanced tier is tried first, then the lite tier, then the
// deterministic analyzer.
func NewEvaluator(client llm.Client) *Evaluator {
	return &Evaluator{
		client: client,
		tiers:  []llm.ModelTier{llm.TierAdvanced, llm.TierLite},
	}
}

// Evaluate scores the answers against the questions and job. It never
// fails; an unusable model response falls back to the deterministic
// analyzer and scorer.
func (e *Evaluator) Evaluate(ctx context.Context, qs []types.Question, answers []types.Answer, job types.Job) Evaluation {
	chain := []attempt[Evaluation]{}
	if e.client != nil {
		for _, tier := range e.tiers {
			tier := tier
			chain = append(chain, attempt[Evaluation]{
				name: "llm-" + string(tier),
				run: func(ctx context.Context) (Evaluation, bool, error) {
					return e.evaluateWithModel(ctx, tier, qs, answers, job)
				},
			})
		}
	}
	chain = append(chain, attempt[Evaluation]{
		name: "deterministic",
		run: func(ctx context.Context) (Evaluation, bool, error) {
			return deterministicEvaluation(qs, answers, job), true, nil
		},
	})

	ev, _ := runAttempts(ctx, "evaluate-answers", chain)
	return ev
}

// rawEvaluation is the wire shape the evaluation prompt asks for. Scores
// arrive as float64 so fractional model output survives decoding before the
// clamp.
type rawEvaluation struct {
	Overall       float64  `json:"overall"`
	Technical     float64  `json:"technical"`
	Behavioral    float64  `json:"behavioral"`
	Communication float64  `json:"communication"`
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Suggestions   []string `json:"suggestions"`
	PerQuestion   []string `json:"perQuestion"`
}

func (e *Evaluator) evaluateWithModel(ctx context.Context, tier llm.ModelTier, qs []types.Question, answers []types.Answer, job types.Job) (Evaluation, bool, error) {
	template, err := prompts.Get("evaluation.json", "evaluate-answers")
	if err != nil {
		return Evaluation{}, false, err
	}
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":   job.Title,
		"Transcript": buildTranscript(qs, answers),
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return Evaluation{}, false, err
	}

	cleaned := llm.CleanJSONBlock(raw)
	if err := validateEvaluation(cleaned); err != nil {
		return Evaluation{}, false, err
	}

	var rv rawEvaluation
	if err := json.Unmarshal([]byte(cleaned), &rv); err != nil {
		return Evaluation{}, false, fmt.Errorf("failed to decode evaluation: %w", err)
	}

	ev := Evaluation{
		Scores: types.ScoreSet{
			Overall:       clampScore(rv.Overall),
			Technical:     clampScore(rv.Technical),
			Behavioral:    clampScore(rv.Behavioral),
			Communication: clampScore(rv.Communication),
		},
		Feedback: types.Feedback{
			Strengths:   rv.Strengths,
			Weaknesses:  rv.Weaknesses,
			Suggestions: rv.Suggestions,
			PerQuestion: rv.PerQuestion,
		},
	}
	fillFeedbackDefaults(&ev.Feedback)
	return ev, true, nil
}

// deterministicEvaluation is the terminal stage: lexical analysis, tiered
// scoring, and templated feedback.
func deterministicEvaluation(qs []types.Question, answers []types.Answer, job types.Job) Evaluation {
	agg := analysis.Analyze(answers)
	fb := scoring.Feedback(agg, job.Title)

	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(qs) {
			continue
		}
		fb.PerQuestion = append(fb.PerQuestion, scoring.QuestionFeedback(qs[a.QuestionIndex], a.Text, job))
	}

	return Evaluation{Scores: scoring.Compute(agg), Feedback: fb}
}

func buildTranscript(qs []types.Question, answers []types.Answer) string {
	var sb strings.Builder
	for i, a := range answers {
		if a.QuestionIndex >= 0 && a.QuestionIndex < len(qs) {
			fmt.Fprintf(&sb, "Q%d: %s\n", i+1, qs[a.QuestionIndex].Text)
		}
		fmt.Fprintf(&sb, "A%d: %s\n\n", i+1, a.Text)
	}
	return strings.TrimSpace(sb.String())
}

// clampScore bounds a model-reported score to [0,100] and rounds it.
// Models occasionally return 105 or -3 despite the instructions.
func clampScore(v float64) int {
	return int(math.Round(math.Min(100, math.Max(0, v))))
}

// fillFeedbackDefaults keeps the never-empty list contract when the model
// omits a section.
func fillFeedbackDefaults(fb *types.Feedback) {
	if len(fb.Strengths) == 0 {
		fb.Strengths = []string{"Completed the interview and attempted every question."}
	}
	if len(fb.Weaknesses) == 0 {
		fb.Weaknesses = []string{"No significant weaknesses stood out."}
	}
	if len(fb.Suggestions) == 0 {
		fb.Suggestions = []string{"Practice the STAR method (Situation, Task, Action, Result) for behavioral questions."}
	}
}
