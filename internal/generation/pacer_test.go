package generation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacerEnforcesMinimumInterval(t *testing.T) {
	t.Parallel()

	const interval = 50 * time.Millisecond
	p := NewPacer(interval)
	ctx := context.Background()

	require.NoError(t, p.Wait(ctx))
	first := time.Now()
	require.NoError(t, p.Wait(ctx))
	second := time.Now()

	assert.GreaterOrEqual(t, second.Sub(first), interval,
		"successive calls must be separated by at least the minimum interval")
}

func TestPacerFirstCallDoesNotWait(t *testing.T) {
	t.Parallel()

	p := NewPacer(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, p.Wait(ctx), "the first call must pass immediately")
}

func TestPacerZeroIntervalNeverWaits(t *testing.T) {
	t.Parallel()

	p := NewPacer(0)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Wait(ctx))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestPacerHonorsCancellation(t *testing.T) {
	t.Parallel()

	p := NewPacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Wait(ctx))

	cancel()
	assert.Error(t, p.Wait(ctx), "a cancelled context must abort the wait")
}
