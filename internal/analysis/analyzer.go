// Package analysis derives a deterministic feature vector from interview
// answers. It is the always-available counterpart to the generative
// evaluation backend: purely lexical, synchronous, and stateless.
package analysis

import (
	"regexp"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/types"
)

var (
	shortAlphaPattern  = regexp.MustCompile(`^[a-z]{1,4}$`)
	nonAlnumPattern    = regexp.MustCompile(`^[^a-z0-9]+$`)
	digitsSpacePattern = regexp.MustCompile(`^[0-9\s]+$`)
	consonantPattern   = regexp.MustCompile(`^[bcdfghjklmnpqrstvwxyz\s]+$`)
)

// Analyze scans every answer in the batch and sums the per-answer feature
// counters. The classification tiers are evaluated in order, first match
// governs: nonsensical, poor quality, meaningful. Nonsensical answers are
// excluded from all positive-signal counting.
func Analyze(answers []types.Answer) *types.AnswerAnalysis {
	agg := &types.AnswerAnalysis{}
	totalWords := 0

	for _, answer := range answers {
		text := strings.ToLower(strings.TrimSpace(answer.Text))
		wc := len(strings.Fields(text))
		totalWords += wc

		if IsNonsensical(text) {
			agg.NonsensicalAnswers++
			continue
		}

		switch {
		case isPoorQuality(text, wc):
			agg.PoorQualityAnswers++
		default:
			agg.MeaningfulAnswers++
		}

		agg.TechnicalTerms += countMatches(text, technicalVocabulary)
		agg.ExperienceMentions += countMatches(text, experienceVocabulary)
		agg.ProblemSolving += countMatches(text, problemSolvingVocabulary)
		agg.SpecificExamples += countSpecificExamples(text)

		if hasCommunicationQuality(text, wc) {
			agg.CommunicationQuality++
		}
	}

	if len(answers) > 0 {
		agg.AverageWordLength = float64(totalWords) / float64(len(answers))
	}

	return agg
}

// IsNonsensical reports whether an answer is a throwaway: a single word, or
// up to four words of letter mash, symbols, bare digits, repeated
// characters, or consonant strings.
func IsNonsensical(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	wc := len(strings.Fields(text))
	if wc <= 1 {
		return true
	}
	if wc > 4 {
		return false
	}
	return shortAlphaPattern.MatchString(text) ||
		nonAlnumPattern.MatchString(text) ||
		digitsSpacePattern.MatchString(text) ||
		hasRepeatedRun(text) ||
		consonantPattern.MatchString(text)
}

// isPoorQuality flags very short answers, and short-ish answers carrying
// none of the meaningful vocabulary.
func isPoorQuality(text string, wc int) bool {
	if wc < 10 {
		return true
	}
	if wc < 20 {
		return countMatches(text, meaningfulVocabulary) == 0
	}
	return false
}

// countMatches counts how many distinct vocabulary terms occur in the text.
// Repeated occurrences of the same term count once: presence per term, not
// frequency.
func countMatches(lower string, vocab []string) int {
	n := 0
	for _, term := range vocab {
		if strings.Contains(lower, term) {
			n++
		}
	}
	return n
}

// countSpecificExamples counts example-phrase hits; any digit in the answer
// counts as one additional concrete detail.
func countSpecificExamples(lower string) int {
	n := countMatches(lower, exampleVocabulary)
	if strings.ContainsAny(lower, "0123456789") {
		n++
	}
	return n
}

// hasCommunicationQuality requires a reasonable length and more than one
// sentence.
func hasCommunicationQuality(text string, wc int) bool {
	if wc < 20 || wc > 200 {
		return false
	}
	return sentenceCount(text) > 1
}

// sentenceCount counts non-empty segments delimited by sentence
// terminators.
func sentenceCount(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	n := 0
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return n
}

// hasRepeatedRun reports whether any character repeats three or more times
// consecutively ("yesssss").
func hasRepeatedRun(text string) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run >= 3 {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// ContainsTechnicalTerm reports whether the text mentions any technical
// vocabulary. Used by per-question feedback probes.
func ContainsTechnicalTerm(text string) bool {
	return countMatches(strings.ToLower(text), technicalVocabulary) > 0
}

// ContainsSTARLanguage reports whether the text carries STAR-method
// vocabulary (situation, task, action, result).
func ContainsSTARLanguage(text string) bool {
	return countMatches(strings.ToLower(text), starVocabulary) > 0
}

// IsRelevantToJob reports whether the answer references the job title or
// any requirement token of at least four characters.
func IsRelevantToJob(text string, job types.Job) bool {
	lower := strings.ToLower(text)
	for _, w := range strings.Fields(strings.ToLower(job.Title)) {
		if len(w) >= 4 && strings.Contains(lower, w) {
			return true
		}
	}
	for _, w := range strings.Fields(strings.ToLower(job.Requirements)) {
		if len(w) >= 4 && strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
