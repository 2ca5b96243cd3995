// Package system reads host resource usage through gopsutil
package system

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"learning-web/internal/core/ports"
)

// Ensure Collector implements MetricsProvider
var _ ports.MetricsProvider = (*Collector)(nil)

const bytesPerGB = 1024 * 1024 * 1024

// Collector implements ports.MetricsProvider
type Collector struct {
	diskPath     string
	cpuSampleFor time.Duration
}

// NewCollector creates a collector reporting disk usage for diskPath
func NewCollector(diskPath string) *Collector {
	if diskPath == "" {
		diskPath = "."
	}
	return &Collector{
		diskPath:     diskPath,
		cpuSampleFor: 200 * time.Millisecond,
	}
}

// Snapshot collects CPU, memory and disk usage.
// CPU is sampled over a short window; a failed CPU read leaves it at 0.
func (c *Collector) Snapshot(ctx context.Context) (ports.SystemMetrics, error) {
	var metrics ports.SystemMetrics

	if cpuPercents, err := cpu.PercentWithContext(ctx, c.cpuSampleFor, false); err == nil && len(cpuPercents) > 0 {
		metrics.CPUPercent = roundTo2Decimals(cpuPercents[0])
	}

	memStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return metrics, fmt.Errorf("read memory stats: %w", err)
	}
	metrics.MemoryPercent = roundTo2Decimals(memStat.UsedPercent)
	metrics.MemoryUsedGB = roundTo2Decimals(float64(memStat.Used) / bytesPerGB)
	metrics.MemoryTotalGB = roundTo2Decimals(float64(memStat.Total) / bytesPerGB)

	diskStat, err := disk.UsageWithContext(ctx, c.diskPath)
	if err != nil {
		return metrics, fmt.Errorf("read disk stats for %s: %w", c.diskPath, err)
	}
	metrics.DiskPercent = roundTo2Decimals(diskStat.UsedPercent)
	metrics.DiskUsedGB = roundTo2Decimals(float64(diskStat.Used) / bytesPerGB)
	metrics.DiskTotalGB = roundTo2Decimals(float64(diskStat.Total) / bytesPerGB)

	return metrics, nil
}

// MemoryPercent returns used virtual memory as a percentage
func (c *Collector) MemoryPercent(ctx context.Context) (float64, error) {
	memStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("read memory stats: %w", err)
	}
	return memStat.UsedPercent, nil
}

func roundTo2Decimals(val float64) float64 {
	return float64(int(val*100)) / 100
}
