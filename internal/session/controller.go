package session

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-search-agent/internal/types"
)

// Assistant performs the remote calls behind session effects. It is satisfied
// by assistant.Service for in-process use and apiclient.Client for a remote server.
type Assistant interface {
	SearchJobs(ctx context.Context, profile types.Profile) ([]types.Job, error)
	FindHiringManager(ctx context.Context, job types.Job) (*types.HiringManagerResult, error)
	DraftOutreach(ctx context.Context, job types.Job, profile types.Profile) (string, error)
}

// Controller owns a State and runs the effects Reduce asks for. Effects run
// concurrently and their results are applied as they arrive; results that no
// longer match the selection are dropped by Reduce.
type Controller struct {
	mu        sync.Mutex
	state     State
	assistant Assistant
	group     errgroup.Group
	onChange  func(State)
	logger    *logrus.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithInitialState starts the controller from s instead of Initial().
func WithInitialState(s State) ControllerOption {
	return func(c *Controller) { c.state = s }
}

// WithOnChange registers a callback invoked with every new state. It runs on
// the goroutine that caused the change, outside the controller's lock.
func WithOnChange(fn func(State)) ControllerOption {
	return func(c *Controller) { c.onChange = fn }
}

// WithControllerLogger sets the logger used for effect tracing.
func WithControllerLogger(logger *logrus.Logger) ControllerOption {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates a Controller backed by assistant.
func NewController(assistant Assistant, opts ...ControllerOption) *Controller {
	c := &Controller{
		state:     Initial(),
		assistant: assistant,
		logger:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch applies action and starts any effects it produces. It does not
// wait for them; use Wait for that.
func (c *Controller) Dispatch(ctx context.Context, action Action) {
	c.mu.Lock()
	next, effects := Reduce(c.state, action)
	c.state = next
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(next)
	}

	for _, eff := range effects {
		c.group.Go(func() error {
			c.Dispatch(ctx, c.run(ctx, eff))
			return nil
		})
	}
}

// Wait blocks until every effect started so far has been applied.
func (c *Controller) Wait() {
	_ = c.group.Wait()
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) run(ctx context.Context, eff Effect) Action {
	switch e := eff.(type) {
	case SearchEffect:
		c.logger.WithField("generation", e.Generation).Debug("Searching jobs")
		jobs, err := c.assistant.SearchJobs(ctx, e.Profile)
		return SearchCompleted{Generation: e.Generation, Jobs: jobs, Err: err}

	case DraftEffect:
		c.logger.WithFields(logrus.Fields{"job_id": e.Job.ID, "generation": e.Generation}).Debug("Drafting outreach")
		message, err := c.assistant.DraftOutreach(ctx, e.Job, e.Profile)
		return DraftGenerated{JobID: e.Job.ID, Generation: e.Generation, Message: message, Err: err}

	case ManagerEffect:
		c.logger.WithFields(logrus.Fields{"job_id": e.Job.ID, "generation": e.Generation}).Debug("Finding hiring manager")
		result, err := c.assistant.FindHiringManager(ctx, e.Job)
		return ManagerFound{JobID: e.Job.ID, Generation: e.Generation, Result: result, Err: err}
	}
	return nil
}
