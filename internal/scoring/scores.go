// Package scoring maps the deterministic answer analysis to bounded scores
// and qualitative feedback. Results are stable across runs: no external
// model is consulted.
package scoring

import (
	"math"

	"github.com/jonathan/ai-interviewer/internal/types"
)

// Per-signal weights. The poor-quality regime scores with the lower weights
// and subtracts a flat penalty per poor answer; the meaningful regime uses
// the higher weights and no penalty.
const (
	poorTechnicalWeight     = 15
	poorBehavioralWeight    = 12
	poorCommunicationWeight = 20
	poorAnswerPenalty       = 20

	technicalWeight     = 20
	behavioralWeight    = 15
	communicationWeight = 25
)

// Compute selects the scoring regime from the aggregate analysis,
// tightest-first: any nonsensical answer caps every score regardless of
// other signals, then any poor-quality answer applies the penalized
// weights, otherwise the meaningful weights apply. A single garbage answer
// is never masked by strong answers elsewhere in the batch.
func Compute(a *types.AnswerAnalysis) types.ScoreSet {
	switch {
	case a.NonsensicalAnswers > 0:
		return nonsensicalScores(a.NonsensicalAnswers)
	case a.PoorQualityAnswers > 0:
		return penalizedScores(a)
	default:
		return meaningfulScores(a)
	}
}

// nonsensicalScores scales only with the nonsensical count; no other signal
// is consulted.
func nonsensicalScores(count int) types.ScoreSet {
	return types.ScoreSet{
		Overall:       min(15, count*5),
		Technical:     min(10, count*3),
		Behavioral:    min(12, count*4),
		Communication: min(15, count*5),
	}
}

func penalizedScores(a *types.AnswerAnalysis) types.ScoreSet {
	penalty := float64(a.PoorQualityAnswers * poorAnswerPenalty)

	technical := math.Max(0, clamp(float64(a.TechnicalTerms*poorTechnicalWeight))-penalty)
	behavioral := math.Max(0, clamp(float64((a.ProblemSolving+a.SpecificExamples)*poorBehavioralWeight))-penalty)
	communication := math.Max(0, clamp(float64(a.CommunicationQuality*poorCommunicationWeight))-penalty)
	overall := math.Max(0, (technical+behavioral+communication)/3)

	return round(overall, technical, behavioral, communication)
}

func meaningfulScores(a *types.AnswerAnalysis) types.ScoreSet {
	technical := clamp(float64(a.TechnicalTerms * technicalWeight))
	behavioral := clamp(float64((a.ProblemSolving + a.SpecificExamples) * behavioralWeight))
	communication := clamp(float64(a.CommunicationQuality * communicationWeight))
	overall := (technical + behavioral + communication) / 3

	return round(overall, technical, behavioral, communication)
}

// clamp bounds a score to [0,100] without rounding; fractional values are
// kept until the external boundary.
func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

// round converts the internal fractional scores to the external integer
// representation.
func round(overall, technical, behavioral, communication float64) types.ScoreSet {
	return types.ScoreSet{
		Overall:       int(math.Round(clamp(overall))),
		Technical:     int(math.Round(clamp(technical))),
		Behavioral:    int(math.Round(clamp(behavioral))),
		Communication: int(math.Round(clamp(communication))),
	}
}
