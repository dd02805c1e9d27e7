package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// JobStatus is the pipeline stage of a job.
type JobStatus string

// Pipeline stages, in board order.
const (
	StatusNew          JobStatus = "new"
	StatusInterested   JobStatus = "interested"
	StatusApplied      JobStatus = "applied"
	StatusInterviewing JobStatus = "interviewing"
)

// Statuses lists every pipeline stage in board order.
var Statuses = []JobStatus{StatusNew, StatusInterested, StatusApplied, StatusInterviewing}

// Valid reports whether s is one of the four pipeline stages.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInterested, StatusApplied, StatusInterviewing:
		return true
	}
	return false
}

// ParseJobStatus parses a case-insensitive status name.
func ParseJobStatus(s string) (JobStatus, error) {
	status := JobStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown job status %q", s)
	}
	return status, nil
}

// Job is a single candidate opening with its pipeline status.
type Job struct {
	ID         string    `json:"id"`
	Company    string    `json:"company"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	MatchScore Score     `json:"matchScore"`
	URL        string    `json:"url"`
	Status     JobStatus `json:"status"`
	WhyMatch   string    `json:"whyMatch,omitempty"`
}

// Score is a 0-100 match score. Model output is coerced rather than rejected:
// numeric strings and floats are accepted, anything unreadable decodes to 0,
// and out-of-range values are clamped.
type Score int

// MaxScore is the upper bound of a match score.
const MaxScore Score = 100

// Clamp returns s limited to [0, MaxScore].
func (s Score) Clamp() Score {
	return max(0, min(s, MaxScore))
}

// UnmarshalJSON accepts numbers and numeric strings.
func (s *Score) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
		if err != nil {
			*s = 0
			return nil
		}
		f = parsed
	default:
		*s = 0
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		*s = 0
		return nil
	}
	*s = Score(math.Round(math.Max(0, math.Min(f, float64(MaxScore)))))
	return nil
}

// PipelineColumn is the set of jobs sharing one status.
type PipelineColumn struct {
	Status JobStatus `json:"status"`
	Jobs   []Job     `json:"jobs"`
}

// GroupByStatus splits jobs into one column per status, in board order,
// preserving the relative order of jobs within a column.
func GroupByStatus(jobs []Job) []PipelineColumn {
	columns := make([]PipelineColumn, len(Statuses))
	index := make(map[JobStatus]int, len(Statuses))
	for i, status := range Statuses {
		columns[i].Status = status
		index[status] = i
	}
	for _, job := range jobs {
		if i, ok := index[job.Status]; ok {
			columns[i].Jobs = append(columns[i].Jobs, job)
		}
	}
	return columns
}
