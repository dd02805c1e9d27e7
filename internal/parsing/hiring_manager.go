package parsing

import (
	"github.com/jonathan/job-search-agent/internal/schemas"
	"github.com/jonathan/job-search-agent/internal/types"
)

type managerReply struct {
	HiringManager struct {
		Name        string `json:"name"`
		Title       string `json:"title"`
		LinkedInURL string `json:"linkedinUrl"`
		Confidence  string `json:"confidence"`
		Reasoning   string `json:"reasoning"`
	} `json:"hiringManager"`
	AlternateContacts []types.AlternateContact `json:"alternateContacts"`
	SearchTips        string                   `json:"searchTips"`
}

// ParseHiringManager recovers a hiring-manager guess from a reply.
// A reply without a hiringManager object is a *ParseError.
func ParseHiringManager(text string) (*types.HiringManagerResult, error) {
	reply, err := Decode[managerReply](text, schemas.HiringManager)
	if err != nil {
		return nil, err
	}

	hm := reply.HiringManager
	return &types.HiringManagerResult{
		HiringManager: types.HiringManager{
			Name:        hm.Name,
			Title:       hm.Title,
			LinkedInURL: hm.LinkedInURL,
			Confidence:  types.NormalizeConfidence(hm.Confidence),
			Reasoning:   hm.Reasoning,
		},
		AlternateContacts: reply.AlternateContacts,
		SearchTips:        reply.SearchTips,
	}, nil
}
