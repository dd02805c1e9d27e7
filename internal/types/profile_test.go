//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"AI", "ML", "internal tools"}, SplitList(" AI, ML ,, internal tools,"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , "))
}

func TestProfile_Clone(t *testing.T) {
	original := DefaultProfile()
	clone := original.Clone()
	clone.Keywords[0] = "changed"
	clone.TargetTitles = append(clone.TargetTitles, "VP Product")

	assert.Equal(t, "AI", original.Keywords[0])
	assert.Len(t, original.TargetTitles, 2)
}

func TestRequestValidation(t *testing.T) {
	validate := validator.New()

	assert.Error(t, validate.Struct(SearchJobsRequest{}))
	assert.NoError(t, validate.Struct(SearchJobsRequest{Profile: &Profile{}}))

	assert.Error(t, (&FindHiringManagerRequest{}).Validate())
	assert.NoError(t, (&FindHiringManagerRequest{Job: &Job{Company: "Okta"}}).Validate())

	assert.Error(t, (&DraftOutreachRequest{Job: &Job{}}).Validate())
	assert.NoError(t, (&DraftOutreachRequest{Job: &Job{}, Profile: &Profile{}}).Validate())
}
