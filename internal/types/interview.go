package types

import (
	"time"

	"github.com/google/uuid"
)

// QuestionCategory selects which lexical probes per-question feedback uses.
type QuestionCategory string

// Question categories.
const (
	CategoryTechnical  QuestionCategory = "technical"
	CategoryBehavioral QuestionCategory = "behavioral"
	CategoryGeneral    QuestionCategory = "general"
)

// Question is a single interview question presented to the candidate.
type Question struct {
	Text     string           `json:"text"`
	Category QuestionCategory `json:"category"`
}

// Answer pairs a free-text answer with the index of the question it answers.
type Answer struct {
	QuestionIndex int    `json:"questionIndex"`
	Text          string `json:"text"`
}

// Job carries the posting metadata used for question generation and
// answer-relevance checks.
type Job struct {
	Title        string `json:"title"`
	Company      string `json:"company,omitempty"`
	Requirements string `json:"requirements,omitempty"`
}

// AnswerAnalysis is the aggregate feature vector produced by the
// deterministic answer analyzer for one scoring call. It is derived per
// answer, summed across the batch, and never persisted.
//
// AverageWordLength is the mean word count across all answers in the batch;
// the field name is part of the stable wire contract.
type AnswerAnalysis struct {
	TechnicalTerms       int     `json:"technicalTerms"`
	ExperienceMentions   int     `json:"experienceMentions"`
	ProblemSolving       int     `json:"problemSolving"`
	SpecificExamples     int     `json:"specificExamples"`
	CommunicationQuality int     `json:"communicationQuality"`
	NonsensicalAnswers   int     `json:"nonsensicalAnswers"`
	PoorQualityAnswers   int     `json:"poorQualityAnswers"`
	MeaningfulAnswers    int     `json:"meaningfulAnswers"`
	AverageWordLength    float64 `json:"averageWordLength"`
}

// ScoreSet holds the four bounded interview scores. Each value is in
// [0,100], rounded to the nearest integer at the boundary only.
type ScoreSet struct {
	Overall       int `json:"overall"`
	Technical     int `json:"technical"`
	Behavioral    int `json:"behavioral"`
	Communication int `json:"communication"`
}

// Feedback is the qualitative companion to a ScoreSet. The three lists are
// never empty; PerQuestion lines up with the answered questions.
type Feedback struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	PerQuestion []string `json:"perQuestion,omitempty"`
}

// Interview is the persisted record of one interview session, keyed by id
// and by candidate phone number.
type Interview struct {
	ID            uuid.UUID     `json:"id"`
	Phone         string        `json:"phone"`
	CandidateName string        `json:"candidateName,omitempty"`
	Job           Job           `json:"job"`
	Resume        *ParsedResume `json:"resume,omitempty"`
	Questions     []Question    `json:"questions"`
	Answers       []Answer      `json:"answers,omitempty"`
	Scores        *ScoreSet     `json:"scores,omitempty"`
	Feedback      *Feedback     `json:"feedback,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
}
