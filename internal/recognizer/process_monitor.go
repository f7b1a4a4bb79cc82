package recognizer

import (
	"context"
	"errors"
	"time"
)

var ErrInactive = errors.New("inactive for a long time")

// ProcessMonitor fails with ErrInactive when no response arrives within the
// timeout.
type ProcessMonitor struct {
	processCh       <-chan struct{}
	timeoutDuration time.Duration
}

func NewProcessMonitor(
	processCh <-chan struct{},
	timeoutDuration time.Duration,
) *ProcessMonitor {
	return &ProcessMonitor{
		processCh:       processCh,
		timeoutDuration: timeoutDuration,
	}
}

// Start returns nil once the process channel is closed.
func (m *ProcessMonitor) Start(ctx context.Context) error {
	timer := time.NewTimer(m.timeoutDuration)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-m.processCh:
			if !ok {
				return nil
			}
			timer.Reset(m.timeoutDuration)
		case <-timer.C:
			return ErrInactive
		}
	}
}
