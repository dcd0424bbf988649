package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/formhub/formhub-go/validation"
)

func noErrors() validation.Errors { return validation.Errors{} }

func TestPipelineSuccess(t *testing.T) {
	p := NewPipeline(50 * time.Millisecond)
	persisted := 0

	errs, err := p.Run(noErrors, func() error { persisted++; return nil }, "done")
	assert.NoError(t, err)
	assert.False(t, errs.Any())
	assert.Equal(t, 1, persisted)
	assert.Equal(t, StateIdle, p.State())
	assert.Equal(t, "done", p.Notice())
}

func TestPipelineNoticeAutoClears(t *testing.T) {
	p := NewPipeline(20 * time.Millisecond)
	_, err := p.Run(noErrors, func() error { return nil }, "done")
	assert.NoError(t, err)

	assert.Eventually(t, func() bool { return p.Notice() == "" }, time.Second, 5*time.Millisecond)
}

func TestPipelineValidationFailureSkipsPersist(t *testing.T) {
	p := NewPipeline(0)
	persisted := false

	errs, err := p.Run(
		func() validation.Errors {
			e := validation.Errors{}
			e.Add("name", "name is required")
			return e
		},
		func() error { persisted = true; return nil },
		"done",
	)

	assert.NoError(t, err)
	assert.Equal(t, []string{"name is required"}, errs["name"])
	assert.False(t, persisted)
	assert.Equal(t, StateIdle, p.State(), "editable again immediately")
	assert.Empty(t, p.Notice())
}

func TestPipelinePersistFailure(t *testing.T) {
	p := NewPipeline(0)
	boom := errors.New("connection refused")

	errs, err := p.Run(noErrors, func() error { return boom }, "done")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, errs)
	assert.Equal(t, StateIdle, p.State(), "caller may retry with the same data")
	assert.Empty(t, p.Notice())
}

func TestPipelineRejectsConcurrentSubmit(t *testing.T) {
	p := NewPipeline(0)
	persisted := 0

	persistStarted := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := p.Run(noErrors, func() error {
			close(persistStarted)
			<-release
			persisted++
			return nil
		}, "done")
		assert.NoError(t, err)
	}()

	<-persistStarted
	assert.True(t, p.Busy())

	// duplicate click while the first submission is persisting
	_, err := p.Run(noErrors, func() error { persisted++; return nil }, "done")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	wg.Wait()

	assert.Equal(t, 1, persisted, "exactly one stored row")
	assert.False(t, p.Busy())
}
