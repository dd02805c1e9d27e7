package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-search-agent/internal/types"
)

const fiveJobsReply = "```json\n" + `{"jobs":[
{"id":"1","company":"Salesforce","title":"Director of Product Management, AI Platform","location":"San Francisco, CA","url":"https://careers.salesforce.com/jobs","matchScore":85,"status":"new","whyMatch":"AI platform depth"},
{"id":"2","company":"Stripe","title":"Principal Product Manager, Developer Experience","location":"San Francisco, CA","url":"https://stripe.com/jobs","matchScore":80,"status":"new","whyMatch":"Developer tooling"},
{"id":"3","company":"Anthropic","title":"Product Manager, Claude Enterprise","location":"San Francisco, CA","url":"https://anthropic.com/careers","matchScore":90,"status":"new","whyMatch":"LLM products"},
{"id":"4","company":"Notion","title":"Senior Product Manager, AI Features","location":"San Francisco, CA","url":"https://notion.so/careers","matchScore":75,"status":"new","whyMatch":"AI features"},
{"id":"5","company":"Databricks","title":"Principal PM, ML Platform","location":"San Francisco, CA","url":"https://databricks.com/careers","matchScore":82,"status":"new","whyMatch":"ML platform"}
]}` + "\n```"

func TestParseJobs_FencedReplyReturnedUnmodified(t *testing.T) {
	jobs, err := ParseJobs(fiveJobsReply)
	require.NoError(t, err)
	require.Len(t, jobs, 5)

	assert.Equal(t, types.Job{
		ID:         "1",
		Company:    "Salesforce",
		Title:      "Director of Product Management, AI Platform",
		Location:   "San Francisco, CA",
		MatchScore: 85,
		URL:        "https://careers.salesforce.com/jobs",
		Status:     types.StatusNew,
		WhyMatch:   "AI platform depth",
	}, jobs[0])
	assert.Equal(t, "Databricks", jobs[4].Company)
	assert.Equal(t, types.Score(82), jobs[4].MatchScore)
}

func TestParseJobs_Normalization(t *testing.T) {
	reply := `Sure! {"jobs":[
		{"id": 7, "company": "Okta", "matchScore": "140", "status": "applied"},
		{"company": "Rippling", "matchScore": -3},
		{"id": "7", "company": "DocuSign", "matchScore": "n/a", "whyMatch": null}
	]}`

	jobs, err := ParseJobs(reply)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "7", jobs[0].ID)
	assert.Equal(t, types.Score(100), jobs[0].MatchScore)
	assert.Equal(t, types.StatusNew, jobs[0].Status, "search results always start as new")

	assert.Equal(t, "2", jobs[1].ID, "missing id falls back to position")
	assert.Equal(t, types.Score(0), jobs[1].MatchScore)

	assert.NotEqual(t, "7", jobs[2].ID, "duplicate ids are made unique")
	assert.Contains(t, jobs[2].ID, "7-")
	assert.Equal(t, types.Score(0), jobs[2].MatchScore)
	assert.Empty(t, jobs[2].WhyMatch)
}

func TestParseJobs_NullFieldsKeepTheListing(t *testing.T) {
	reply := `{"jobs":[
		{"id": "1", "company": "Okta", "title": "Principal PM", "location": "Remote", "url": null, "matchScore": 88},
		{"id": null, "company": null, "title": "Staff PM", "location": null, "url": "https://example.com/2", "matchScore": null}
	]}`

	jobs, err := ParseJobs(reply)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Okta", jobs[0].Company)
	assert.Empty(t, jobs[0].URL)
	assert.Equal(t, types.Score(88), jobs[0].MatchScore)

	assert.Equal(t, "2", jobs[1].ID)
	assert.Empty(t, jobs[1].Company)
	assert.Equal(t, "Staff PM", jobs[1].Title)
	assert.Equal(t, types.Score(0), jobs[1].MatchScore)
}

func TestParseJobs_Failures(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "empty reply", reply: ""},
		{name: "prose only", reply: "I'm sorry, I can't browse job boards."},
		{name: "truncated JSON", reply: `{"jobs":[{"id":"1","company":"Okta"`},
		{name: "wrong top-level key", reply: `{"listings":[{"id":"1"}]}`},
		{name: "jobs is an object", reply: `{"jobs":{"id":"1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := ParseJobs(tt.reply)
			require.Error(t, err)
			assert.Nil(t, jobs)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseJobs_EmptyList(t *testing.T) {
	jobs, err := ParseJobs(`{"jobs": []}`)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
