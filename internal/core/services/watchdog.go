// Package services contains the core request-independent logic:
// template rendering, cache policy, page registry, static resolution
// and the content cache watchdog
package services

import (
	"context"
	"log/slog"
	"time"

	"learning-web/internal/core/ports"
)

// CacheWatchdog keeps the in-memory content cache bounded.
// Each tick it evicts expired entries; under memory pressure it purges everything.
type CacheWatchdog struct {
	cache           ports.SweepableCache
	metrics         ports.MetricsProvider
	interval        time.Duration
	memoryThreshold float64
}

// NewCacheWatchdog creates a watchdog. metrics may be nil, which disables
// the memory-pressure purge.
func NewCacheWatchdog(cache ports.SweepableCache, metrics ports.MetricsProvider, interval time.Duration, memoryThreshold float64) *CacheWatchdog {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheWatchdog{
		cache:           cache,
		metrics:         metrics,
		interval:        interval,
		memoryThreshold: memoryThreshold,
	}
}

// Start runs the watchdog in a background goroutine until ctx is cancelled
func (w *CacheWatchdog) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				slog.Info("Cache watchdog stopped")
				return
			case <-ticker.C:
				w.Check(ctx)
			}
		}
	}()

	slog.Info("Cache watchdog started",
		"interval", w.interval,
		"memory_threshold_percent", w.memoryThreshold,
	)
}

// Check runs one sweep and reports how many entries were removed
// and whether a full purge happened
func (w *CacheWatchdog) Check(ctx context.Context) (removed int, purged bool) {
	if w.metrics != nil && w.memoryThreshold > 0 {
		usage, err := w.metrics.MemoryPercent(ctx)
		if err != nil {
			slog.Warn("Cache watchdog could not read memory usage", "error", err)
		} else if usage >= w.memoryThreshold {
			removed = w.cache.Purge()
			slog.Warn("Memory usage above threshold, content cache purged",
				"memory_percent", usage,
				"threshold", w.memoryThreshold,
				"removed", removed,
			)
			return removed, true
		}
	}

	removed = w.cache.EvictExpired()
	if removed > 0 {
		slog.Debug("Expired content cache entries evicted", "removed", removed)
	}
	return removed, false
}
