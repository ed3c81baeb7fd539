// Package questions builds the deterministic interview question set.
// It is the terminal fallback behind the generative backends and must
// always succeed, so it works from whatever resume content is present
// and degrades to role-agnostic phrasing when a section is empty.
package questions

import (
	"fmt"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/types"
)

const questionCount = 5

// Generate returns exactly five interview questions tailored to the
// candidate's resume and the target role. A nil resume is treated the
// same as an empty one.
func Generate(resume *types.ParsedResume, job types.Job) []types.Question {
	if resume == nil {
		resume = types.NewParsedResume()
	}

	qs := make([]types.Question, 0, questionCount+6)

	qs = append(qs, introQuestion(resume, job))
	qs = append(qs, skillQuestion(resume))
	qs = append(qs, experienceQuestion(resume))
	qs = append(qs, projectQuestion(resume))
	qs = append(qs, motivationQuestion(job))

	// Base questions fill the slate first; role probes past the count
	// are dropped in the truncation.
	qs = append(qs, roleQuestions(resume, job)...)

	return qs[:questionCount]
}

func introQuestion(resume *types.ParsedResume, job types.Job) types.Question {
	text := "Tell me about yourself and what draws you to this role."
	if resume.PersonalInfo.Name != "" {
		text = fmt.Sprintf("%s, tell me about yourself and what draws you to the %s role.",
			firstName(resume.PersonalInfo.Name), roleTitle(job))
	}
	return types.Question{Text: text, Category: types.CategoryGeneral}
}

func skillQuestion(resume *types.ParsedResume) types.Question {
	if len(resume.Skills) > 0 {
		return types.Question{
			Text: fmt.Sprintf("I see you have experience with %s. Can you walk me through a project where you used it?",
				resume.Skills[0]),
			Category: types.CategoryTechnical,
		}
	}
	return types.Question{
		Text:     "What technical skills are you strongest in, and how did you build them?",
		Category: types.CategoryTechnical,
	}
}

func experienceQuestion(resume *types.ParsedResume) types.Question {
	if len(resume.Experience) > 0 {
		exp := resume.Experience[0]
		ref := exp.Title
		if exp.Company != "" {
			ref = fmt.Sprintf("%s at %s", exp.Title, exp.Company)
		}
		return types.Question{
			Text:     fmt.Sprintf("Tell me about your time as %s. What was your biggest challenge there?", ref),
			Category: types.CategoryBehavioral,
		}
	}
	return types.Question{
		Text:     "Describe a challenging situation you faced at work and how you handled it.",
		Category: types.CategoryBehavioral,
	}
}

func projectQuestion(resume *types.ParsedResume) types.Question {
	if len(resume.Projects) > 0 {
		return types.Question{
			Text: fmt.Sprintf("Your resume mentions the %s project. What problem did it solve and what was your role?",
				resume.Projects[0].Name),
			Category: types.CategoryTechnical,
		}
	}
	return types.Question{
		Text:     "Tell me about a project you're proud of. What made it successful?",
		Category: types.CategoryTechnical,
	}
}

func motivationQuestion(job types.Job) types.Question {
	return types.Question{
		Text:     fmt.Sprintf("Why are you interested in the %s position, and where do you see yourself in a few years?", roleTitle(job)),
		Category: types.CategoryGeneral,
	}
}

// roleQuestions returns extra probes keyed on the job title. Each trigger
// is checked independently and contributes up to two questions; a title
// like "Engineering Manager" fires more than one trigger. They all rank
// behind the base questions when the list is cut to five.
func roleQuestions(resume *types.ParsedResume, job types.Job) []types.Question {
	title := strings.ToLower(job.Title)
	var extra []types.Question

	if containsAny(title, "software", "developer", "engineer") {
		extra = append(extra, types.Question{
			Text:     "How do you approach debugging a problem you've never seen before?",
			Category: types.CategoryTechnical,
		})
		extra = append(extra, designQuestion(resume))
	}
	if containsAny(title, "data", "analyst", "scientist") {
		extra = append(extra, types.Question{
			Text:     "Walk me through how you would validate a dataset you don't trust.",
			Category: types.CategoryTechnical,
		})
		extra = append(extra, types.Question{
			Text:     "Tell me about an analysis whose result surprised you. How did you verify it?",
			Category: types.CategoryBehavioral,
		})
	}
	if containsAny(title, "manager", "lead", "director") {
		extra = append(extra, types.Question{
			Text:     "Tell me about a time you had to resolve a conflict within your team.",
			Category: types.CategoryBehavioral,
		})
		extra = append(extra, types.Question{
			Text:     "How do you balance delivery pressure against your team's long-term health?",
			Category: types.CategoryBehavioral,
		})
	}
	return extra
}

// designQuestion anchors on a second resume skill when one exists; the
// first skill is already taken by the base skill question.
func designQuestion(resume *types.ParsedResume) types.Question {
	if len(resume.Skills) > 1 {
		return types.Question{
			Text: fmt.Sprintf("If you were designing a new service around %s, what trade-offs would you weigh first?",
				resume.Skills[1]),
			Category: types.CategoryTechnical,
		}
	}
	return types.Question{
		Text:     "Describe how you design a system for requirements you know will change.",
		Category: types.CategoryTechnical,
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func roleTitle(job types.Job) string {
	if job.Title != "" {
		return job.Title
	}
	return "open"
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
