package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ai-interviewer/internal/ingestion"
	"github.com/jonathan/ai-interviewer/internal/server/session"
	"github.com/jonathan/ai-interviewer/internal/types"
)

// interviewStore is the persistence surface the handlers need. *db.DB
// satisfies it; tests substitute an in-memory fake.
type interviewStore interface {
	CreateInterview(ctx context.Context, interview *types.Interview) error
	GetInterviewByID(ctx context.Context, id uuid.UUID) (*types.Interview, error)
	SaveAnswers(ctx context.Context, id uuid.UUID, answers []types.Answer) error
	SaveResults(ctx context.Context, id uuid.UUID, answers []types.Answer, scores types.ScoreSet, feedback types.Feedback) error
	ListInterviewsByPhone(ctx context.Context, phone string) ([]*types.Interview, error)
	AverageOverallScore(ctx context.Context, phone string) (float64, int, error)
}

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

type CreateInterviewRequest struct {
	Phone      string                 `json:"phone"`
	Name       string                 `json:"name,omitempty"`
	ResumeText string                 `json:"resume_text,omitempty"`
	Manual     *ingestion.ManualEntry `json:"manual,omitempty"`
	Job        *types.Job             `json:"job,omitempty"`
	JobURL     string                 `json:"job_url,omitempty"`
}

type CreateInterviewResponse struct {
	ID        uuid.UUID        `json:"id"`
	Questions []types.Question `json:"questions"`
	Token     string           `json:"token"`
}

func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	var req CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Phone == "" {
		s.errorResponse(w, http.StatusBadRequest, "phone is required")
		return
	}
	if req.Job == nil && req.JobURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either job or job_url is required")
		return
	}
	if req.Job != nil && req.JobURL != "" {
		s.errorResponse(w, http.StatusBadRequest, "job and job_url are mutually exclusive")
		return
	}
	if req.ResumeText != "" && req.Manual != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_text and manual are mutually exclusive")
		return
	}

	if req.Job != nil && req.Job.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "job.title is required")
		return
	}

	// Resume parsing and job ingestion are independent; run them together
	// so a slow job posting fetch does not serialize behind extraction.
	var (
		resume *types.ParsedResume
		job    types.Job
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		resume, err = s.buildResume(gctx, req)
		if err != nil {
			return &ErrValidation{Field: "resume", Message: err.Error()}
		}
		return nil
	})
	g.Go(func() error {
		if req.Job != nil {
			job = *req.Job
			return nil
		}
		ingested, _, err := ingestion.IngestJobPosting(gctx, req.JobURL, s.llm, s.useBrowser)
		if err != nil {
			return err
		}
		job = ingested
		return nil
	})
	if err := g.Wait(); err != nil {
		var verr *ErrValidation
		if errors.As(err, &verr) {
			s.errorResponse(w, http.StatusBadRequest, "Invalid resume: "+verr.Message)
			return
		}
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
		return
	}

	name := req.Name
	if name == "" && resume != nil {
		name = resume.PersonalInfo.Name
	}

	interview := &types.Interview{
		Phone:         req.Phone,
		CandidateName: name,
		Job:           job,
		Resume:        resume,
		Questions:     s.questions.Generate(r.Context(), resume, job),
	}

	if err := s.store.CreateInterview(r.Context(), interview); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	token, err := s.sessions.Issue(interview.ID, interview.Phone)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue session token: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateInterviewResponse{
		ID:        interview.ID,
		Questions: interview.Questions,
		Token:     token,
	})
}

// buildResume converts whichever resume input the request carries. A request
// with no resume input yields a nil resume and resume-agnostic questions.
func (s *Server) buildResume(ctx context.Context, req CreateInterviewRequest) (*types.ParsedResume, error) {
	switch {
	case req.Manual != nil:
		return ingestion.FromManualEntry(*req.Manual)
	case req.ResumeText != "":
		return ingestion.ExtractResume(ctx, ingestion.CleanText(req.ResumeText), s.llm)
	default:
		return nil, nil
	}
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.sessionInterview(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, interview)
}

type SaveAnswersRequest struct {
	Answers []types.Answer `json:"answers"`
}

func (s *Server) handleSaveAnswers(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.sessionInterview(w, r)
	if !ok {
		return
	}
	if interview.CompletedAt != nil {
		err := &ErrInterviewCompleted{ID: interview.ID}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req SaveAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validateAnswers(req.Answers, len(interview.Questions)); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.SaveAnswers(r.Context(), interview.ID, req.Answers); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]int{"saved": len(req.Answers)})
}

type CompleteInterviewRequest struct {
	Answers []types.Answer `json:"answers,omitempty"`
}

type CompleteInterviewResponse struct {
	ID       uuid.UUID      `json:"id"`
	Scores   types.ScoreSet `json:"scores"`
	Feedback types.Feedback `json:"feedback"`
}

func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	interview, ok := s.sessionInterview(w, r)
	if !ok {
		return
	}
	if interview.CompletedAt != nil {
		err := &ErrInterviewCompleted{ID: interview.ID}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req CompleteInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Answers in the body replace any saved earlier in the session.
	answers := req.Answers
	if len(answers) == 0 {
		answers = interview.Answers
	}
	if err := validateAnswers(answers, len(interview.Questions)); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.evaluator.Evaluate(r.Context(), interview.Questions, answers, interview.Job)

	if err := s.store.SaveResults(r.Context(), interview.ID, answers, result.Scores, result.Feedback); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CompleteInterviewResponse{
		ID:       interview.ID,
		Scores:   result.Scores,
		Feedback: result.Feedback,
	})
}

// sessionInterview resolves the {id} path segment, checks it against the
// session token, and loads the interview. It writes the error response
// itself when the lookup fails.
func (s *Server) sessionInterview(w http.ResponseWriter, r *http.Request) (*types.Interview, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return nil, false
	}

	claims, ok := session.FromContext(r.Context())
	if !ok || claims.InterviewID != id {
		mismatch := &ErrSessionMismatch{}
		s.errorResponse(w, HTTPStatus(mismatch), mismatch.Error())
		return nil, false
	}

	interview, err := s.store.GetInterviewByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if interview == nil {
		notFound := &ErrInterviewNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return interview, true
}

func validateAnswers(answers []types.Answer, questionCount int) error {
	if len(answers) == 0 {
		return &ErrValidation{Field: "answers", Message: "at least one answer is required"}
	}
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= questionCount {
			return &ErrValidation{Field: "answers", Message: "questionIndex out of range"}
		}
	}
	return nil
}

// ---------------------------------------------------------------------
// Candidate Handlers
// ---------------------------------------------------------------------

type InterviewSummary struct {
	ID          uuid.UUID  `json:"id"`
	JobTitle    string     `json:"job_title"`
	Overall     *int       `json:"overall,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	phone := r.PathValue("phone")
	if phone == "" {
		s.errorResponse(w, http.StatusBadRequest, "phone is required")
		return
	}

	interviews, err := s.store.ListInterviewsByPhone(r.Context(), phone)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	summaries := make([]InterviewSummary, 0, len(interviews))
	for _, interview := range interviews {
		summary := InterviewSummary{
			ID:          interview.ID,
			JobTitle:    interview.Job.Title,
			CreatedAt:   interview.CreatedAt,
			CompletedAt: interview.CompletedAt,
		}
		if interview.Scores != nil {
			overall := interview.Scores.Overall
			summary.Overall = &overall
		}
		summaries = append(summaries, summary)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"phone":      phone,
		"interviews": summaries,
	})
}

type CandidateAverageResponse struct {
	Phone          string  `json:"phone"`
	Completed      int     `json:"completed"`
	AverageOverall float64 `json:"average_overall"`
}

func (s *Server) handleCandidateAverage(w http.ResponseWriter, r *http.Request) {
	phone := r.PathValue("phone")
	if phone == "" {
		s.errorResponse(w, http.StatusBadRequest, "phone is required")
		return
	}

	avg, count, err := s.store.AverageOverallScore(r.Context(), phone)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CandidateAverageResponse{
		Phone:          phone,
		Completed:      count,
		AverageOverall: avg,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
