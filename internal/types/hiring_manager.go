package types

import "strings"

// Confidence is how sure the model claims to be about a hiring-manager guess.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// NormalizeConfidence maps free-form model output onto a confidence level.
// Unrecognised values become ConfidenceLow.
func NormalizeConfidence(raw string) Confidence {
	switch c := Confidence(strings.ToLower(strings.TrimSpace(raw))); c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return c
	}
	return ConfidenceLow
}

// HiringManager is a model-inferred, unverified contact for a job.
type HiringManager struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	LinkedInURL string     `json:"linkedinUrl"`
	Confidence  Confidence `json:"confidence"`
	Reasoning   string     `json:"reasoning"`
}

// AlternateContact is another person worth reaching out to about a job.
type AlternateContact struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	LinkedInURL string `json:"linkedinUrl"`
	Role        string `json:"role"`
}

// HiringManagerResult is the reply of a hiring-manager lookup.
type HiringManagerResult struct {
	HiringManager     HiringManager      `json:"hiringManager"`
	AlternateContacts []AlternateContact `json:"alternateContacts,omitempty"`
	SearchTips        string             `json:"searchTips,omitempty"`
}
