package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/prompts"
	"github.com/jonathan/ai-interviewer/internal/questions"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// QuestionGenerator produces the interview question set. The generative
// stages are optional: with a nil client the deterministic stage serves
// every request.
type QuestionGenerator struct {
	client llm.Client
	tiers  []llm.ModelTier
}

// NewQuestionGenerator returns a generator backed by the given client.
// client may be nil. The standard tier is tried first, then the lite
// tier, then the deterministic generator.
func NewQuestionGenerator(client llm.Client) *QuestionGenerator {
	return &QuestionGenerator{
		client: client,
		tiers:  []llm.ModelTier{llm.TierStandard, llm.TierLite},
	}
}

// Generate returns exactly five questions for the candidate and role. It
// never fails: if the model is unavailable or its output cannot be
// reconciled into a valid question set, the deterministic generator
// supplies the result.
func (g *QuestionGenerator) Generate(ctx context.Context, resume *types.ParsedResume, job types.Job) []types.Question {
	chain := []attempt[[]types.Question]{}
	if g.client != nil {
		for _, tier := range g.tiers {
			tier := tier
			chain = append(chain, attempt[[]types.Question]{
				name: "llm-" + string(tier),
				run: func(ctx context.Context) ([]types.Question, bool, error) {
					return g.generateWithModel(ctx, tier, resume, job)
				},
			})
		}
	}
	chain = append(chain, attempt[[]types.Question]{
		name: "deterministic",
		run: func(ctx context.Context) ([]types.Question, bool, error) {
			return questions.Generate(resume, job), true, nil
		},
	})

	qs, _ := runAttempts(ctx, "generate-questions", chain)
	return qs
}

func (g *QuestionGenerator) generateWithModel(ctx context.Context, tier llm.ModelTier, resume *types.ParsedResume, job types.Job) ([]types.Question, bool, error) {
	template, err := prompts.Get("interview.json", "generate-questions")
	if err != nil {
		return nil, false, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Resume":          summarizeResume(resume),
		"JobTitle":        job.Title,
		"JobRequirements": job.Requirements,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return nil, false, err
	}

	qs := reconcileQuestions(raw)
	if len(qs) < 5 {
		return nil, false, nil
	}
	qs = qs[:5]

	encoded, err := json.Marshal(qs)
	if err != nil {
		return nil, false, err
	}
	if err := validateQuestionSet(string(encoded)); err != nil {
		return nil, false, err
	}
	return qs, true, nil
}

// summarizeResume renders the resume fields the question prompt cares
// about. The full document is never sent; parsed fields keep the prompt
// short and strip anything the heuristics classified as noise.
func summarizeResume(resume *types.ParsedResume) string {
	if resume == nil || !resume.HasContent() {
		return "(no resume provided)"
	}

	var sb strings.Builder
	if resume.PersonalInfo.Name != "" {
		sb.WriteString("Name: " + resume.PersonalInfo.Name + "\n")
	}
	if len(resume.Skills) > 0 {
		sb.WriteString("Skills: " + strings.Join(resume.Skills, ", ") + "\n")
	}
	for _, exp := range resume.Experience {
		sb.WriteString("Experience: " + exp.Title)
		if exp.Company != "" {
			sb.WriteString(" at " + exp.Company)
		}
		if exp.Duration != "" {
			sb.WriteString(" (" + exp.Duration + ")")
		}
		sb.WriteString("\n")
	}
	for _, p := range resume.Projects {
		sb.WriteString("Project: " + p.Name)
		if p.Description != "" {
			sb.WriteString(" - " + p.Description)
		}
		sb.WriteString("\n")
	}
	for _, ed := range resume.Education {
		sb.WriteString("Education: " + ed.Degree)
		if ed.Institution != "" {
			sb.WriteString(", " + ed.Institution)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}
