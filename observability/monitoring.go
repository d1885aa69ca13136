package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// MonitoringManager aggregates broker telemetry: connection lifecycle,
// publish volume and delivery outcomes, sampled together with the
// process's own CPU/RAM footprint.
type MonitoringManager struct {
	log            *slog.Logger
	metricInterval time.Duration

	sessions        atomic.Int64
	eventsPublished atomic.Uint64
	deliveries      atomic.Uint64
	dropped         atomic.Uint64
	authFailures    atomic.Uint64
	invalidRequests atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger, metricInterval time.Duration) *MonitoringManager {
	return &MonitoringManager{log: log, metricInterval: metricInterval}
}

func (mm *MonitoringManager) IncrSessions() { mm.sessions.Add(1) }

func (mm *MonitoringManager) DecrSessions() { mm.sessions.Add(-1) }

func (mm *MonitoringManager) IncrEventsPublished() { mm.eventsPublished.Add(1) }

func (mm *MonitoringManager) AddDeliveries(n uint64) { mm.deliveries.Add(n) }

func (mm *MonitoringManager) AddDropped(n uint64) { mm.dropped.Add(n) }

func (mm *MonitoringManager) IncrAuthFailures() { mm.authFailures.Add(1) }

func (mm *MonitoringManager) IncrInvalidRequests() { mm.invalidRequests.Add(1) }

func (mm *MonitoringManager) Sessions() int64 { return mm.sessions.Load() }

func (mm *MonitoringManager) Deliveries() uint64 { return mm.deliveries.Load() }

// Run periodically logs a telemetry snapshot until the context ends.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(mm.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Context done, stopping monitoring")
			return nil
		case <-ticker.C:
			mm.logSnapshot(p)
		}
	}
}

func (mm *MonitoringManager) logSnapshot(p *process.Process) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	cpu, err := p.CPUPercent()
	if err != nil {
		mm.log.Debug("Error while finding process cpu usage", "err", err)
	}
	ram, err := p.MemoryPercent()
	if err != nil {
		mm.log.Debug("Error while finding process ram usage", "err", err)
	}

	mm.log.Info("broker telemetry",
		"sessions", mm.sessions.Load(),
		"events_published", mm.eventsPublished.Load(),
		"deliveries", mm.deliveries.Load(),
		"dropped", mm.dropped.Load(),
		"auth_failures", mm.authFailures.Load(),
		"invalid_requests", mm.invalidRequests.Load(),
		"alloc_mem_mb", mem.Alloc/1024/1024,
		"num_gc", mem.NumGC,
		"cpu_percent", cpu,
		"ram_percent", ram,
	)
}
