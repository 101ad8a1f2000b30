package system

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleeperWaits(t *testing.T) {
	start := time.Now()
	require.NoError(t, Sleeper{}.Sleep(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSleeperCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Sleeper{}.Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := Rand{}.IntN(3)
		assert.True(t, n >= 0 && n < 3)
	}
}
