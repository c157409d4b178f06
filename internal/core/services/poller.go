package services

import (
	"context"
	"sync"
	"time"

	"github.com/fundlens/fundlens/internal/core/ports/driving"
	"github.com/fundlens/fundlens/internal/logger"
)

// DefaultPollInterval matches the deployment default of ten minutes.
const DefaultPollInterval = 10 * time.Minute

// Poller runs ingestion on a fixed interval. Failed files recover
// naturally: the cursor only advances on completed passes, so the next
// tick re-enumerates anything still outstanding.
type Poller struct {
	ingestor driving.Ingestor
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
}

// NewPoller creates a poller over the given ingestor.
func NewPoller(ingestor driving.Ingestor, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{ingestor: ingestor, interval: interval}
}

// Start runs one pass immediately, then one per interval. It blocks
// until Stop is called or the context is cancelled.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil // Already running
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.mu.Unlock()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.stopCh:
			return nil
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

// Stop gracefully shuts down the poll loop.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.running = false
	close(p.stopCh)
}

func (p *Poller) runOnce(ctx context.Context) {
	report, err := p.ingestor.Run(ctx, driving.RunOptions{})
	if err != nil {
		logger.Error("poll: ingestion run failed: %v", err)
		return
	}
	logger.Info("poll: %s", report.Message)
}
