//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Score
	}{
		{"integer", `85`, 85},
		{"float rounds", `84.6`, 85},
		{"numeric string", `"72"`, 72},
		{"percent string", `"90%"`, 90},
		{"above range clamps", `140`, 100},
		{"negative clamps", `-5`, 0},
		{"garbage string", `"high"`, 0},
		{"null", `null`, 0},
		{"object", `{"value": 3}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Score
			require.NoError(t, json.Unmarshal([]byte(tt.input), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestScore_Clamp(t *testing.T) {
	assert.Equal(t, Score(0), Score(-3).Clamp())
	assert.Equal(t, Score(55), Score(55).Clamp())
	assert.Equal(t, MaxScore, Score(101).Clamp())
}

func TestParseJobStatus(t *testing.T) {
	status, err := ParseJobStatus("  Interviewing ")
	require.NoError(t, err)
	assert.Equal(t, StatusInterviewing, status)

	_, err = ParseJobStatus("rejected")
	assert.Error(t, err)
}

func TestJobStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, JobStatus("").Valid())
	assert.False(t, JobStatus("offer").Valid())
}

func TestJob_JSONKeys(t *testing.T) {
	job := Job{
		ID:         "1",
		Company:    "Stripe",
		Title:      "Principal Product Manager",
		Location:   "San Francisco, CA",
		MatchScore: 80,
		URL:        "https://stripe.com/jobs",
		Status:     StatusNew,
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(80), raw["matchScore"])
	assert.Equal(t, "new", raw["status"])
	assert.NotContains(t, raw, "whyMatch")
}

func TestNormalizeConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, NormalizeConfidence("High"))
	assert.Equal(t, ConfidenceMedium, NormalizeConfidence(" medium "))
	assert.Equal(t, ConfidenceLow, NormalizeConfidence("low"))
	assert.Equal(t, ConfidenceLow, NormalizeConfidence("high/medium/low"))
	assert.Equal(t, ConfidenceLow, NormalizeConfidence(""))
}

func TestGroupByStatus(t *testing.T) {
	jobs := []Job{
		{ID: "1", Status: StatusApplied},
		{ID: "2", Status: StatusNew},
		{ID: "3", Status: StatusApplied},
		{ID: "4", Status: "archived"},
	}

	columns := GroupByStatus(jobs)
	require.Len(t, columns, 4)

	assert.Equal(t, StatusNew, columns[0].Status)
	assert.Equal(t, []Job{{ID: "2", Status: StatusNew}}, columns[0].Jobs)
	assert.Empty(t, columns[1].Jobs)
	assert.Equal(t, StatusApplied, columns[2].Status)
	assert.Len(t, columns[2].Jobs, 2)
	assert.Equal(t, "1", columns[2].Jobs[0].ID)
	assert.Empty(t, columns[3].Jobs)
}
