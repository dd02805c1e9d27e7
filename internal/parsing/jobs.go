package parsing

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/job-search-agent/internal/schemas"
	"github.com/jonathan/job-search-agent/internal/types"
)

// flexString accepts either a JSON string or a JSON number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type replyJob struct {
	ID         flexString  `json:"id"`
	Company    string      `json:"company"`
	Title      string      `json:"title"`
	Location   string      `json:"location"`
	MatchScore types.Score `json:"matchScore"`
	URL        string      `json:"url"`
	WhyMatch   string      `json:"whyMatch"`
}

type searchReply struct {
	Jobs []replyJob `json:"jobs"`
}

// ParseJobs recovers the job list from a search reply.
// Every returned job has status new, a score within [0,100] and an id unique within the batch.
func ParseJobs(text string) ([]types.Job, error) {
	reply, err := Decode[searchReply](text, schemas.SearchJobs)
	if err != nil {
		return nil, err
	}

	jobs := make([]types.Job, 0, len(reply.Jobs))
	seen := make(map[string]bool, len(reply.Jobs))
	for i, rj := range reply.Jobs {
		id := strings.TrimSpace(string(rj.ID))
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		if seen[id] {
			id = id + "-" + uuid.NewString()[:8]
		}
		seen[id] = true

		jobs = append(jobs, types.Job{
			ID:         id,
			Company:    rj.Company,
			Title:      rj.Title,
			Location:   rj.Location,
			MatchScore: rj.MatchScore.Clamp(),
			URL:        rj.URL,
			Status:     types.StatusNew,
			WhyMatch:   rj.WhyMatch,
		})
	}

	return jobs, nil
}
