package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/core/ports/driving"
)

type countingIngestor struct {
	mu   sync.Mutex
	runs int
}

func (c *countingIngestor) Run(context.Context, driving.RunOptions) (*domain.Report, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runs++
	return &domain.Report{Message: "ok"}, nil
}

func (c *countingIngestor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runs
}

func TestPoller_RunsImmediatelyThenOnInterval(t *testing.T) {
	ing := &countingIngestor{}
	p := NewPoller(ing, 20*time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- p.Start(context.Background()) }()

	time.Sleep(70 * time.Millisecond)
	p.Stop()
	assert.NoError(t, <-done)

	// One immediate run plus at least two ticks.
	assert.GreaterOrEqual(t, ing.count(), 3)
}

func TestPoller_StopsOnContextCancel(t *testing.T) {
	ing := &countingIngestor{}
	p := NewPoller(ing, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Start(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, 1, ing.count())
}

func TestPoller_DefaultInterval(t *testing.T) {
	p := NewPoller(&countingIngestor{}, 0)
	assert.Equal(t, DefaultPollInterval, p.interval)
}
