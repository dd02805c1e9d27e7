package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-search-agent/internal/observability"
	"github.com/jonathan/job-search-agent/internal/types"
)

// fakeAssistant answers from canned values. Calls for a job listed in block
// wait until that job's channel is closed.
type fakeAssistant struct {
	mu        sync.Mutex
	jobs      []types.Job
	searchErr error
	drafts    map[string]string
	block     map[string]chan struct{}
	calls     []string
}

func (f *fakeAssistant) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeAssistant) wait(jobID string) {
	if ch, ok := f.block[jobID]; ok {
		<-ch
	}
}

func (f *fakeAssistant) SearchJobs(_ context.Context, _ types.Profile) ([]types.Job, error) {
	f.record("search")
	return f.jobs, f.searchErr
}

func (f *fakeAssistant) FindHiringManager(_ context.Context, job types.Job) (*types.HiringManagerResult, error) {
	f.record("manager:" + job.ID)
	f.wait(job.ID)
	return &types.HiringManagerResult{HiringManager: types.HiringManager{Name: "Manager of " + job.ID}}, nil
}

func (f *fakeAssistant) DraftOutreach(_ context.Context, job types.Job, _ types.Profile) (string, error) {
	f.record("draft:" + job.ID)
	f.wait(job.ID)
	return f.drafts[job.ID], nil
}

func onboardedController(t *testing.T, fake *fakeAssistant, opts ...ControllerOption) *Controller {
	t.Helper()
	opts = append([]ControllerOption{WithControllerLogger(observability.Discard())}, opts...)
	c := NewController(fake, opts...)
	ctx := context.Background()

	for _, action := range []Action{
		SetName{Name: "Ana"}, NextStep{},
		SetResume{Text: strings.Repeat("Shipped ML products. ", 4)}, NextStep{},
		NextStep{},
	} {
		c.Dispatch(ctx, action)
	}
	c.Wait()
	return c
}

func TestController_OnboardingRunsSearch(t *testing.T) {
	fake := &fakeAssistant{jobs: []types.Job{job("1", types.StatusNew), job("2", types.StatusNew)}}
	c := onboardedController(t, fake)

	s := c.Snapshot()
	assert.False(t, s.Onboarding)
	assert.False(t, s.Searching)
	assert.Len(t, s.Jobs, 2)
	assert.Equal(t, []string{"search"}, fake.calls)
}

func TestController_SearchError(t *testing.T) {
	fake := &fakeAssistant{searchErr: errors.New("ANTHROPIC_API_KEY not configured")}
	c := onboardedController(t, fake)

	s := c.Snapshot()
	assert.False(t, s.Searching)
	assert.Contains(t, s.Notice, "ANTHROPIC_API_KEY not configured")
}

func TestController_DraftOutreachSwitchesTabBeforeResults(t *testing.T) {
	release := make(chan struct{})
	fake := &fakeAssistant{
		jobs:   []types.Job{job("1", types.StatusNew)},
		drafts: map[string]string{"1": "Hi there"},
		block:  map[string]chan struct{}{"1": release},
	}
	c := onboardedController(t, fake)

	c.Dispatch(context.Background(), DraftOutreach{JobID: "1"})

	s := c.Snapshot()
	assert.Equal(t, TabOutreach, s.ActiveTab)
	assert.True(t, s.GeneratingDraft)
	assert.True(t, s.FindingManager)

	close(release)
	c.Wait()

	s = c.Snapshot()
	assert.False(t, s.GeneratingDraft)
	assert.False(t, s.FindingManager)
	assert.Equal(t, "Hi there", s.Draft)
	require.NotNil(t, s.HiringManager)
	assert.Equal(t, "Manager of 1", s.HiringManager.HiringManager.Name)
}

func TestController_StaleResponseIgnored(t *testing.T) {
	releaseA := make(chan struct{})
	fake := &fakeAssistant{
		jobs:   []types.Job{job("A", types.StatusNew), job("B", types.StatusNew)},
		drafts: map[string]string{"A": "draft A", "B": "draft B"},
		block:  map[string]chan struct{}{"A": releaseA},
	}
	c := onboardedController(t, fake)
	ctx := context.Background()

	c.Dispatch(ctx, DraftOutreach{JobID: "A"})
	c.Dispatch(ctx, DraftOutreach{JobID: "B"})

	// let A's slow responses land after B's
	close(releaseA)
	c.Wait()

	s := c.Snapshot()
	assert.Equal(t, "B", s.SelectedJobID)
	assert.Equal(t, "draft B", s.Draft)
	require.NotNil(t, s.HiringManager)
	assert.Equal(t, "Manager of B", s.HiringManager.HiringManager.Name)
}

func TestController_OnChange(t *testing.T) {
	var mu sync.Mutex
	var tabs []Tab
	fake := &fakeAssistant{jobs: []types.Job{job("1", types.StatusNew)}, drafts: map[string]string{"1": "x"}}

	c := onboardedController(t, fake, WithOnChange(func(s State) {
		mu.Lock()
		tabs = append(tabs, s.ActiveTab)
		mu.Unlock()
	}))
	c.Dispatch(context.Background(), SelectTab{Tab: TabPipeline})
	c.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, tabs)
	assert.Equal(t, TabPipeline, tabs[len(tabs)-1])
}

func TestController_InitialState(t *testing.T) {
	start := mainState(job("1", types.StatusNew))
	c := NewController(&fakeAssistant{}, WithInitialState(start))

	c.Dispatch(context.Background(), MarkApplied{JobID: "1"})
	assert.Equal(t, types.StatusApplied, c.Snapshot().Jobs[0].Status)
	assert.Equal(t, types.StatusNew, start.Jobs[0].Status)
}
