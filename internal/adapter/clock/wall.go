package clock

import (
	"context"
	"time"
)

// Wall derives the logical tick count from wall time: the number of
// whole intervals elapsed since a fixed epoch. Ticks are monotonic as
// long as the host clock is, and survive restarts because the epoch is
// configuration, not process state.
type Wall struct {
	epoch    time.Time
	interval time.Duration
}

// NewWall returns a tick source counting intervals since epoch.
func NewWall(epoch time.Time, interval time.Duration) *Wall {
	return &Wall{epoch: epoch, interval: interval}
}

// Current returns the current tick count. Before the epoch it is 0.
func (w *Wall) Current(_ context.Context) (uint64, error) {
	elapsed := time.Since(w.epoch)
	if elapsed < 0 {
		return 0, nil
	}
	return uint64(elapsed / w.interval), nil
}
