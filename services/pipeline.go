package services

import (
	"errors"
	"sync"
	"time"

	"github.com/formhub/formhub-go/validation"
)

var ErrSubmissionInFlight = errors.New("a submission is already in progress")

type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StatePersisting SubmissionState = "persisting"
)

const defaultNoticeTTL = 5 * time.Second

// Pipeline runs the validate-then-persist sequence for one form instance.
// At most one submission may be in flight; a second submit while busy is
// rejected before any work happens. After success or failure the pipeline
// returns to idle so the caller can edit and retry with the same data.
type Pipeline struct {
	mu        sync.Mutex
	state     SubmissionState
	notice    string
	noticeTTL time.Duration
	timer     *time.Timer
}

func NewPipeline(noticeTTL time.Duration) *Pipeline {
	if noticeTTL <= 0 {
		noticeTTL = defaultNoticeTTL
	}
	return &Pipeline{state: StateIdle, noticeTTL: noticeTTL}
}

// Run executes one submission attempt. Validation failures come back as a
// field-keyed Errors map and nothing is persisted. A persistence failure is
// returned as a single opaque error, on a separate channel from field
// errors. On success the notice is surfaced and cleared again after the
// configured delay.
func (p *Pipeline) Run(validate func() validation.Errors, persist func() error, notice string) (validation.Errors, error) {
	p.mu.Lock()
	if p.state == StateValidating || p.state == StatePersisting {
		p.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	p.state = StateValidating
	p.mu.Unlock()

	errs := validate()
	if errs.Any() {
		p.finish("")
		return errs, nil
	}

	p.transition(StatePersisting)
	if err := persist(); err != nil {
		p.finish("")
		return nil, err
	}

	p.finish(notice)
	return nil, nil
}

// State returns the pipeline's current state.
func (p *Pipeline) State() SubmissionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Busy reports whether a submission is currently in flight.
func (p *Pipeline) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateValidating || p.state == StatePersisting
}

// Notice returns the success message currently on display, if any.
func (p *Pipeline) Notice() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notice
}

func (p *Pipeline) transition(state SubmissionState) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

// finish ends the attempt and returns the pipeline to idle immediately, so
// the form stays editable whatever the outcome. A non-empty notice marks a
// successful attempt and is cleared again after the configured delay.
func (p *Pipeline) finish(notice string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateIdle
	if notice == "" {
		return
	}
	p.notice = notice
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.noticeTTL, func() {
		p.mu.Lock()
		p.notice = ""
		p.mu.Unlock()
	})
}
