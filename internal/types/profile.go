// Package types provides type definitions for the data exchanged between the job search
// assistant's handlers, its HTTP API and the session state machine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Profile is the job seeker's self-described search criteria.
type Profile struct {
	Name         string   `json:"name"`
	ResumeText   string   `json:"resumeText"`
	TargetTitles []string `json:"targetTitles"`
	Location     string   `json:"location"`
	Keywords     []string `json:"keywords"`
}

// DefaultProfile returns the profile a fresh session starts with.
func DefaultProfile() Profile {
	return Profile{
		TargetTitles: []string{"Principal Product Manager", "Director of Product Management"},
		Location:     "San Francisco Bay Area",
		Keywords:     []string{"AI", "ML", "LLM", "internal tools"},
	}
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	out := p
	out.TargetTitles = append([]string(nil), p.TargetTitles...)
	out.Keywords = append([]string(nil), p.Keywords...)
	return out
}

// SplitList turns a comma-separated input field into trimmed, non-empty entries.
func SplitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
