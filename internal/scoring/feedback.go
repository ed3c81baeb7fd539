package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/analysis"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// baselineSuggestions are always present, regardless of the analysis.
var baselineSuggestions = []string{
	"Practice the STAR method (Situation, Task, Action, Result) for behavioral questions.",
	"Quantify your impact with numbers wherever possible.",
	"Research the company and weave its products into your answers.",
	"Prepare two or three questions to ask the interviewer.",
	"Record yourself answering and review your pacing and filler words.",
}

// shortAnswerThreshold is the mean word count below which answers are
// flagged as too brief.
const shortAnswerThreshold = 50

// Feedback maps the aggregate analysis to strength, weakness, and
// suggestion lists. Each list has a non-empty default, so callers can
// render them without guarding.
func Feedback(a *types.AnswerAnalysis, jobTitle string) types.Feedback {
	fb := types.Feedback{}

	if a.ExperienceMentions > 0 {
		fb.Strengths = append(fb.Strengths, "Draws on concrete work experience to support answers.")
	}
	if a.TechnicalTerms > 2 {
		fb.Strengths = append(fb.Strengths, "Comfortable with technical vocabulary and tooling.")
	}
	if a.SpecificExamples > 0 {
		fb.Strengths = append(fb.Strengths, "Backs up claims with specific examples.")
	}
	if a.CommunicationQuality > 0 {
		fb.Strengths = append(fb.Strengths, "Communicates in well-structured, multi-sentence answers.")
	}
	if len(fb.Strengths) == 0 {
		fb.Strengths = []string{"Completed the interview and attempted every question."}
	}

	if a.NonsensicalAnswers > 0 {
		fb.Weaknesses = append(fb.Weaknesses, "Some answers were not serious attempts at the question.")
	}
	if a.PoorQualityAnswers > 0 {
		fb.Weaknesses = append(fb.Weaknesses, "Several answers were too brief to evaluate properly.")
	}
	if a.AverageWordLength < shortAnswerThreshold {
		fb.Weaknesses = append(fb.Weaknesses, "Answers are on the short side; expand with more detail.")
	}
	if a.TechnicalTerms == 0 {
		fb.Weaknesses = append(fb.Weaknesses, "Little technical depth was demonstrated.")
	}
	if len(fb.Weaknesses) == 0 {
		fb.Weaknesses = []string{"No significant weaknesses stood out."}
	}

	fb.Suggestions = append(fb.Suggestions, baselineSuggestions...)
	if a.SpecificExamples == 0 {
		fb.Suggestions = append(fb.Suggestions, "Include at least one concrete example in every answer.")
	}
	if a.TechnicalTerms == 0 && jobTitle != "" {
		fb.Suggestions = append(fb.Suggestions,
			fmt.Sprintf("Name the specific technologies you would use as a %s.", jobTitle))
	}

	return fb
}

// QuestionFeedback produces one narrative sentence set for a single
// question and answer. The question's category selects which lexical probes
// run; a default sentence covers the case where no clause fired.
func QuestionFeedback(q types.Question, answerText string, job types.Job) string {
	var clauses []string

	switch q.Category {
	case types.CategoryTechnical:
		if analysis.ContainsTechnicalTerm(answerText) {
			clauses = append(clauses, "Good use of technical specifics.")
		} else {
			clauses = append(clauses, "Consider naming the concrete technologies and approaches you would use.")
		}
	case types.CategoryBehavioral:
		if analysis.ContainsSTARLanguage(answerText) {
			clauses = append(clauses, "Clear situation-action-result structure.")
		} else {
			clauses = append(clauses, "Structure the story: the situation, what you did, and the result.")
		}
	}

	switch wc := len(strings.Fields(answerText)); {
	case wc < 10:
		clauses = append(clauses, "The answer is very short; interviewers will probe for more.")
	case wc > 150:
		clauses = append(clauses, "Consider tightening the answer; lead with the outcome.")
	}

	if job.Title != "" && analysis.IsRelevantToJob(answerText, job) {
		clauses = append(clauses, "Nicely tied back to the role.")
	}

	if len(clauses) == 0 {
		return "A reasonable answer; add detail and a concrete example to make it stronger."
	}
	return strings.Join(clauses, " ")
}
