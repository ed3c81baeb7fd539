package generation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/llm"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// rawQuestion is the wire shape the question prompt asks for. Category is
// normalized afterwards; models occasionally invent their own labels.
type rawQuestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

var numberedLinePattern = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s+(.+)$`)

// reconcileQuestions recovers a question list from a raw model response.
// Three strategies run in order: parse the largest JSON array in the text,
// parse bracketed objects individually, and finally treat the response as a
// numbered or bulleted list. Returns nil when nothing can be recovered.
func reconcileQuestions(raw string) []types.Question {
	cleaned := llm.CleanJSONBlock(raw)

	if qs := parseQuestionArray(cleaned); len(qs) > 0 {
		return qs
	}
	if qs := parseQuestionObjects(cleaned); len(qs) > 0 {
		return qs
	}
	return parseNumberedList(raw)
}

func parseQuestionArray(text string) []types.Question {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return nil
	}
	end := strings.LastIndexByte(text, ']')
	if end <= start {
		return nil
	}

	var raws []rawQuestion
	if err := json.Unmarshal([]byte(text[start:end+1]), &raws); err != nil {
		return nil
	}
	return convertRawQuestions(raws)
}

// parseQuestionObjects salvages individual {...} objects from a response
// whose surrounding array is malformed (truncated output, trailing commas).
func parseQuestionObjects(text string) []types.Question {
	var raws []rawQuestion
	for {
		start := strings.IndexByte(text, '{')
		if start < 0 {
			break
		}
		depth := 0
		end := -1
		for i := start; i < len(text); i++ {
			switch text[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = i
				}
			}
			if end >= 0 {
				break
			}
		}
		if end < 0 {
			break
		}

		var rq rawQuestion
		if err := json.Unmarshal([]byte(text[start:end+1]), &rq); err == nil && rq.Text != "" {
			raws = append(raws, rq)
		}
		text = text[end+1:]
	}
	return convertRawQuestions(raws)
}

// parseNumberedList handles plain-prose responses: one question per
// numbered or bulleted line. Lines without a question mark are skipped to
// avoid harvesting headings.
func parseNumberedList(raw string) []types.Question {
	var qs []types.Question
	for _, line := range strings.Split(raw, "\n") {
		m := numberedLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if !strings.Contains(text, "?") {
			continue
		}
		qs = append(qs, types.Question{Text: text, Category: categorizeQuestion(text)})
	}
	return qs
}

func convertRawQuestions(raws []rawQuestion) []types.Question {
	var qs []types.Question
	for _, rq := range raws {
		text := strings.TrimSpace(rq.Text)
		if text == "" {
			continue
		}
		qs = append(qs, types.Question{Text: text, Category: normalizeCategory(rq.Category, text)})
	}
	return qs
}

func normalizeCategory(category, text string) types.QuestionCategory {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "technical":
		return types.CategoryTechnical
	case "behavioral", "behavioural":
		return types.CategoryBehavioral
	case "general":
		return types.CategoryGeneral
	default:
		return categorizeQuestion(text)
	}
}

// categorizeQuestion assigns a category from the question wording when the
// model supplied none.
func categorizeQuestion(text string) types.QuestionCategory {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "tell me about a time") ||
		strings.Contains(lower, "describe a situation") ||
		strings.Contains(lower, "conflict") ||
		strings.Contains(lower, "challenge"):
		return types.CategoryBehavioral
	case strings.Contains(lower, "how would you") ||
		strings.Contains(lower, "implement") ||
		strings.Contains(lower, "design") ||
		strings.Contains(lower, "technolog") ||
		strings.Contains(lower, "debug"):
		return types.CategoryTechnical
	default:
		return types.CategoryGeneral
	}
}
