package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/job-search-agent/internal/parsing"
	"github.com/jonathan/job-search-agent/internal/types"
)

// maxBodyBytes bounds request bodies; resumes are the largest field.
const maxBodyBytes = 1 << 20

// hiringManagerNotFound is returned with 200 when the model's reply is unreadable.
const hiringManagerNotFound = "Failed to find hiring manager"

// validatable is implemented by every request body type.
type validatable interface {
	Validate() error
}

// decodeRequest reads a JSON body into req and validates it.
func decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		return &ErrBadRequest{Cause: err}
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}
	return nil
}

// handleSearchJobs handles POST /search-jobs
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	var req types.SearchJobsRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobs, err := s.assistant.SearchJobs(r.Context(), *req.Profile)
	if err != nil {
		s.logger.WithError(err).Error("Error searching jobs")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.SearchJobsResponse{Jobs: jobs})
}

// handleFindHiringManager handles POST /find-hiring-manager
func (s *Server) handleFindHiringManager(w http.ResponseWriter, r *http.Request) {
	var req types.FindHiringManagerRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.assistant.FindHiringManager(r.Context(), *req.Job)
	if err != nil {
		var parseErr *parsing.ParseError
		if errors.As(err, &parseErr) {
			s.errorResponse(w, http.StatusOK, hiringManagerNotFound)
			return
		}
		s.logger.WithError(err).Error("Error finding hiring manager")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleDraftOutreach handles POST /draft-outreach
func (s *Server) handleDraftOutreach(w http.ResponseWriter, r *http.Request) {
	var req types.DraftOutreachRequest
	if err := decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	message, err := s.assistant.DraftOutreach(r.Context(), *req.Job, *req.Profile)
	if err != nil {
		s.logger.WithError(err).Error("Error generating outreach")
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.DraftOutreachResponse{Message: message})
}
