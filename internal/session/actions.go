package session

import "github.com/jonathan/job-search-agent/internal/types"

// Action is an input to Reduce: a user intent or the result of an effect.
type Action interface {
	action()
}

// NextStep advances onboarding when the current step's field is long enough.
type NextStep struct{}

// PrevStep goes back one onboarding step.
type PrevStep struct{}

// SetName replaces the profile name.
type SetName struct{ Name string }

// SetResume replaces the resume text.
type SetResume struct{ Text string }

// UploadResume replaces the resume text with the contents of an uploaded file.
type UploadResume struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SetTargetTitles replaces the target titles.
type SetTargetTitles struct{ Titles []string }

// SetLocation replaces the preferred location.
type SetLocation struct{ Location string }

// SetKeywords replaces the search keywords.
type SetKeywords struct{ Keywords []string }

// Search starts a job search with the current profile.
type Search struct{}

// SearchCompleted carries the result of a SearchEffect.
type SearchCompleted struct {
	Generation uint64
	Jobs       []types.Job
	Err        error
}

// MarkInterested moves a new job to interested.
type MarkInterested struct{ JobID string }

// MarkApplied moves a job to applied from any status.
type MarkApplied struct{ JobID string }

// MarkInterviewing moves a job to interviewing from any status.
type MarkInterviewing struct{ JobID string }

// DraftOutreach selects a job, opens the outreach tab and starts both the
// draft and the hiring-manager lookup.
type DraftOutreach struct{ JobID string }

// Regenerate re-runs the draft for the selected job, and the hiring-manager
// lookup too when IncludeManager is set.
type Regenerate struct{ IncludeManager bool }

// DraftGenerated carries the result of a DraftEffect.
type DraftGenerated struct {
	JobID      string
	Generation uint64
	Message    string
	Err        error
}

// ManagerFound carries the result of a ManagerEffect.
type ManagerFound struct {
	JobID      string
	Generation uint64
	Result     *types.HiringManagerResult
	Err        error
}

// EditDraft replaces the draft with user-edited text.
type EditDraft struct{ Text string }

// SelectTab switches the main view.
type SelectTab struct{ Tab Tab }

// DismissNotice clears the transient notice.
type DismissNotice struct{}

func (NextStep) action()         {}
func (PrevStep) action()         {}
func (SetName) action()          {}
func (SetResume) action()        {}
func (UploadResume) action()     {}
func (SetTargetTitles) action()  {}
func (SetLocation) action()      {}
func (SetKeywords) action()      {}
func (Search) action()           {}
func (SearchCompleted) action()  {}
func (MarkInterested) action()   {}
func (MarkApplied) action()      {}
func (MarkInterviewing) action() {}
func (DraftOutreach) action()    {}
func (Regenerate) action()       {}
func (DraftGenerated) action()   {}
func (ManagerFound) action()     {}
func (EditDraft) action()        {}
func (SelectTab) action()        {}
func (DismissNotice) action()    {}

// Effect is a remote call requested by Reduce. The Controller runs it and
// feeds the outcome back as an Action.
type Effect interface {
	effect()
}

// SearchEffect requests a job search.
type SearchEffect struct {
	Generation uint64
	Profile    types.Profile
}

// DraftEffect requests an outreach draft.
type DraftEffect struct {
	Generation uint64
	Job        types.Job
	Profile    types.Profile
}

// ManagerEffect requests a hiring-manager lookup.
type ManagerEffect struct {
	Generation uint64
	Job        types.Job
}

func (SearchEffect) effect()  {}
func (DraftEffect) effect()   {}
func (ManagerEffect) effect() {}
