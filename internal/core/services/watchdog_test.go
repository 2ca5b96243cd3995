package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheWatchdog_EvictsExpiredUnderNormalMemory(t *testing.T) {
	cache := new(MockContentCache)
	metrics := new(MockMetricsProvider)
	ctx := context.Background()

	metrics.On("MemoryPercent", ctx).Return(40.0, nil)
	cache.On("EvictExpired").Return(3)

	removed, purged := NewCacheWatchdog(cache, metrics, time.Minute, 85).Check(ctx)

	assert.Equal(t, 3, removed)
	assert.False(t, purged)
	cache.AssertNotCalled(t, "Purge")
}

func TestCacheWatchdog_PurgesUnderMemoryPressure(t *testing.T) {
	cache := new(MockContentCache)
	metrics := new(MockMetricsProvider)
	ctx := context.Background()

	metrics.On("MemoryPercent", ctx).Return(91.5, nil)
	cache.On("Purge").Return(42)

	removed, purged := NewCacheWatchdog(cache, metrics, time.Minute, 85).Check(ctx)

	assert.Equal(t, 42, removed)
	assert.True(t, purged)
	cache.AssertNotCalled(t, "EvictExpired")
}

func TestCacheWatchdog_MetricsFailureStillEvicts(t *testing.T) {
	cache := new(MockContentCache)
	metrics := new(MockMetricsProvider)
	ctx := context.Background()

	metrics.On("MemoryPercent", ctx).Return(0.0, errors.New("no /proc"))
	cache.On("EvictExpired").Return(0)

	removed, purged := NewCacheWatchdog(cache, metrics, time.Minute, 85).Check(ctx)

	assert.Equal(t, 0, removed)
	assert.False(t, purged)
	cache.AssertExpectations(t)
}

func TestCacheWatchdog_NilMetricsOnlyEvicts(t *testing.T) {
	cache := new(MockContentCache)
	cache.On("EvictExpired").Return(1)

	removed, purged := NewCacheWatchdog(cache, nil, 0, 85).Check(context.Background())

	assert.Equal(t, 1, removed)
	assert.False(t, purged)
}
