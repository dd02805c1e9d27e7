package types

import "github.com/go-playground/validator/v10"

// SearchJobsRequest is the body of POST /search-jobs.
type SearchJobsRequest struct {
	Profile *Profile `json:"profile" validate:"required"`
}

// SearchJobsResponse is the success body of POST /search-jobs.
type SearchJobsResponse struct {
	Jobs []Job `json:"jobs"`
}

// FindHiringManagerRequest is the body of POST /find-hiring-manager.
type FindHiringManagerRequest struct {
	Job *Job `json:"job" validate:"required"`
}

// DraftOutreachRequest is the body of POST /draft-outreach.
type DraftOutreachRequest struct {
	Job     *Job     `json:"job" validate:"required"`
	Profile *Profile `json:"profile" validate:"required"`
}

// DraftOutreachResponse is the success body of POST /draft-outreach.
type DraftOutreachResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body every endpoint returns on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Validate validates the SearchJobsRequest using the validator.
func (r *SearchJobsRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the FindHiringManagerRequest using the validator.
func (r *FindHiringManagerRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the DraftOutreachRequest using the validator.
func (r *DraftOutreachRequest) Validate() error {
	return validator.New().Struct(r)
}
