package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreEvictsIdleBuckets(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ms := NewMemoryStore(
		WithCleanupInterval(0),
		WithIdleTimeout(time.Minute),
		WithClock(func() time.Time { return now }),
	)
	defer ms.Close()

	cfg := Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second}
	_, _, err := ms.ConsumeTokens(context.Background(), "old", 1, cfg)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, _, err = ms.ConsumeTokens(context.Background(), "fresh", 1, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, ms.Len())

	ms.evictIdle()
	assert.Equal(t, 1, ms.Len())

	ms.Close()
	ms.Close()
}
