// Package system provides the production implementations of the
// randomness and sleeping seams used by the use cases.
package system

import (
	"context"
	"math/rand/v2"
	"time"
)

// Rand draws from the process-wide math/rand/v2 source, which is safe for
// concurrent use.
type Rand struct{}

// IntN returns a pseudo-random number in [0, n).
func (Rand) IntN(n int) int {
	return rand.IntN(n)
}

// Sleeper waits on a timer and gives up early when ctx is done.
type Sleeper struct{}

// Sleep blocks for d or until ctx is cancelled, whichever comes first.
func (Sleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
