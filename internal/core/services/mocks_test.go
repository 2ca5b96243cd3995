package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"learning-web/internal/core/ports"
)

// ============================================================================
// Mock Ports
// ============================================================================

// MockContentCache mocks ContentCache and SweepableCache
type MockContentCache struct {
	mock.Mock
}

func (m *MockContentCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	// Safely handle nil body
	if body := args.Get(0); body != nil {
		return body.([]byte), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockContentCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, body, ttl)
	return args.Error(0)
}

func (m *MockContentCache) EvictExpired() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockContentCache) Purge() int {
	args := m.Called()
	return args.Int(0)
}

// MockMetricsProvider mocks MetricsProvider
type MockMetricsProvider struct {
	mock.Mock
}

func (m *MockMetricsProvider) Snapshot(ctx context.Context) (ports.SystemMetrics, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.SystemMetrics), args.Error(1)
}

func (m *MockMetricsProvider) MemoryPercent(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
