// Package ports defines interfaces for dependency inversion
// Core services define the contracts, adapters implement them
package ports

import (
	"context"
	"time"
)

// ContentCache stores file bodies keyed by path + modification time
// A miss is reported as (nil, false, nil); err is reserved for backend faults
type ContentCache interface {
	// Get returns the cached body for key
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores body under key for at most ttl
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// SweepableCache is a ContentCache held in process memory
// The cache watchdog uses it to reclaim space
type SweepableCache interface {
	ContentCache

	// EvictExpired drops entries past their TTL and returns how many were removed
	EvictExpired() int

	// Purge drops every entry and returns how many were removed
	Purge() int
}

// SystemMetrics is a point-in-time snapshot of host resource usage
type SystemMetrics struct {
	CPUPercent    float64
	MemoryPercent float64
	MemoryUsedGB  float64
	MemoryTotalGB float64
	DiskPercent   float64
	DiskUsedGB    float64
	DiskTotalGB   float64
}

// MetricsProvider reads host resource usage
type MetricsProvider interface {
	// Snapshot collects current CPU, memory and disk usage
	Snapshot(ctx context.Context) (SystemMetrics, error)

	// MemoryPercent returns only the used-memory percentage (cheap path for the watchdog)
	MemoryPercent(ctx context.Context) (float64, error)
}
