package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ai-interviewer/internal/analysis"
	"github.com/jonathan/ai-interviewer/internal/types"
)

func TestCompute_NonsensicalRegimeDominates(t *testing.T) {
	// A single nonsensical answer caps everything, even with strong
	// positive signals from other answers in the batch.
	a := &types.AnswerAnalysis{
		NonsensicalAnswers:   1,
		MeaningfulAnswers:    4,
		TechnicalTerms:       10,
		ProblemSolving:       8,
		SpecificExamples:     5,
		CommunicationQuality: 4,
	}
	scores := Compute(a)

	assert.LessOrEqual(t, scores.Overall, 15)
	assert.LessOrEqual(t, scores.Technical, 10)
	assert.LessOrEqual(t, scores.Behavioral, 12)
	assert.LessOrEqual(t, scores.Communication, 15)
}

func TestCompute_NonsensicalScaling(t *testing.T) {
	tests := []struct {
		count       int
		wantOverall int
		wantTech    int
	}{
		{1, 5, 3},
		{2, 10, 6},
		{3, 15, 9},
		{4, 15, 10}, // capped
	}
	for _, tt := range tests {
		scores := Compute(&types.AnswerAnalysis{NonsensicalAnswers: tt.count})
		assert.Equal(t, tt.wantOverall, scores.Overall, "count %d", tt.count)
		assert.Equal(t, tt.wantTech, scores.Technical, "count %d", tt.count)
	}
}

func TestCompute_PoorQualityPenalty(t *testing.T) {
	a := &types.AnswerAnalysis{
		PoorQualityAnswers:   1,
		MeaningfulAnswers:    2,
		TechnicalTerms:       4, // 4*15 = 60, penalized to 40
		ProblemSolving:       2,
		SpecificExamples:     1, // (2+1)*12 = 36, penalized to 16
		CommunicationQuality: 2, // 2*20 = 40, penalized to 20
	}
	scores := Compute(a)

	assert.Equal(t, 40, scores.Technical)
	assert.Equal(t, 16, scores.Behavioral)
	assert.Equal(t, 20, scores.Communication)
	assert.Equal(t, 25, scores.Overall) // mean of 40,16,20 = 25.33 -> 25
}

func TestCompute_PoorQualityFloorsAtZero(t *testing.T) {
	a := &types.AnswerAnalysis{PoorQualityAnswers: 5, TechnicalTerms: 1}
	scores := Compute(a)
	assert.Equal(t, 0, scores.Technical)
	assert.Equal(t, 0, scores.Behavioral)
	assert.Equal(t, 0, scores.Communication)
	assert.Equal(t, 0, scores.Overall)
}

func TestCompute_MeaningfulRegime(t *testing.T) {
	a := &types.AnswerAnalysis{
		MeaningfulAnswers:    3,
		TechnicalTerms:       3, // 60
		ProblemSolving:       2,
		SpecificExamples:     1, // 45
		CommunicationQuality: 2, // 50
	}
	scores := Compute(a)

	assert.Equal(t, 60, scores.Technical)
	assert.Equal(t, 45, scores.Behavioral)
	assert.Equal(t, 50, scores.Communication)
	assert.Equal(t, 52, scores.Overall) // mean 51.67 rounds to 52
}

func TestCompute_MeaningfulZeroTechnicalHits(t *testing.T) {
	a := &types.AnswerAnalysis{
		MeaningfulAnswers:    2,
		ProblemSolving:       3,
		CommunicationQuality: 2,
	}
	scores := Compute(a)
	assert.Equal(t, 0, scores.Technical)
}

func TestCompute_ClampedAt100(t *testing.T) {
	a := &types.AnswerAnalysis{
		MeaningfulAnswers: 5,
		TechnicalTerms:    50,
		ProblemSolving:    50,
	}
	scores := Compute(a)
	assert.LessOrEqual(t, scores.Technical, 100)
	assert.LessOrEqual(t, scores.Behavioral, 100)
	assert.LessOrEqual(t, scores.Overall, 100)
}

func TestAnalyzeAndCompute_EndToEnd(t *testing.T) {
	t.Run("nonsense batch", func(t *testing.T) {
		answers := []types.Answer{
			{QuestionIndex: 0, Text: "yup"},
			{QuestionIndex: 1, Text: "tyu"},
		}
		scores := Compute(analysis.Analyze(answers))
		assert.GreaterOrEqual(t, scores.Overall, 0)
		assert.LessOrEqual(t, scores.Overall, 15)
		assert.LessOrEqual(t, scores.Technical, 10)
	})

	t.Run("single words score low everywhere", func(t *testing.T) {
		answers := []types.Answer{
			{QuestionIndex: 0, Text: "yes"},
			{QuestionIndex: 1, Text: "python"},
			{QuestionIndex: 2, Text: "maybe"},
		}
		scores := Compute(analysis.Analyze(answers))
		assert.LessOrEqual(t, scores.Overall, 15)
		assert.LessOrEqual(t, scores.Technical, 15)
		assert.LessOrEqual(t, scores.Behavioral, 15)
		assert.LessOrEqual(t, scores.Communication, 15)
	})

	t.Run("strong answer scores high", func(t *testing.T) {
		answers := []types.Answer{{
			QuestionIndex: 0,
			Text: "I developed a React dashboard at my last job handling 10k daily users, " +
				"solved a caching bug that cut load time by half, and collaborated daily " +
				"with a cross-functional team.",
		}}
		agg := analysis.Analyze(answers)
		assert.GreaterOrEqual(t, agg.TechnicalTerms, 1)
		assert.GreaterOrEqual(t, agg.ProblemSolving, 1)
		assert.GreaterOrEqual(t, agg.ExperienceMentions, 1)

		scores := Compute(agg)
		assert.Greater(t, scores.Technical, 50)
		assert.Greater(t, scores.Behavioral, 40)
	})
}
