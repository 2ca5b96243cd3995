package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"learning-web/internal/core/ports"
)

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
