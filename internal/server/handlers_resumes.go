package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/ai-interviewer/internal/ingestion"
)

// maxResumeUploadBytes bounds resume uploads. Real resumes are well under
// this; anything larger is rejected before extraction.
const maxResumeUploadBytes = 10 << 20

// handleParseResume extracts a structured resume from an uploaded document.
// The document arrives either as the "file" part of a multipart form or as
// the raw request body, and may be a PDF or plain text.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	data, err := readResumeUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}

	text, err := ingestion.ResumeText(data)
	if err != nil {
		var extractionErr *ingestion.ExtractionError
		if errors.As(err, &extractionErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to extract text: "+err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to extract text: "+err.Error())
		return
	}

	resume, err := ingestion.ExtractResume(r.Context(), text, s.llm)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to parse resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleManualResume converts a manually entered resume into the same
// ParsedResume shape document extraction produces.
func (s *Server) handleManualResume(w http.ResponseWriter, r *http.Request) {
	var entry ingestion.ManualEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resume, err := ingestion.FromManualEntry(entry)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

func readResumeUpload(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxResumeUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxResumeUploadBytes); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, errors.New(`multipart form must carry a "file" part`)
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	// Not multipart; take the raw body.
	return io.ReadAll(r.Body)
}
