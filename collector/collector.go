// Package collector gathers host telemetry through gopsutil.
package collector

import (
	"context"
	"time"

	"sysmon/logger"
	"sysmon/models"
)

// collectTimeout caps one polling pass. A probe stuck in the kernel must
// not stall the refresh loop; the snapshot ships with whatever finished.
const collectTimeout = 800 * time.Millisecond

// Collector produces telemetry snapshots on demand. The front-ends own
// the refresh cadence and call Snapshot once per tick.
type Collector struct {
	cpu     *CPUCollector
	memory  *MemoryCollector
	disk    *DiskCollector
	sensors *SensorCollector
	host    *HostCollector

	log *logger.Logger
}

// New creates a Collector with all sub-collectors wired.
func New() *Collector {
	return &Collector{
		cpu:     NewCPUCollector(),
		memory:  NewMemoryCollector(),
		disk:    NewDiskCollector(),
		sensors: NewSensorCollector(),
		host:    NewHostCollector(),
		log:     logger.Get(),
	}
}

// Snapshot runs all sub-collectors in parallel and returns the combined
// reading. Categories whose probe failed come back with Available false;
// categories still running at the deadline stay unavailable and their
// results are discarded, so the returned snapshot is never written after
// Snapshot returns.
func (c *Collector) Snapshot(ctx context.Context) *models.Snapshot {
	snap := models.NewSnapshot()

	updates := make(chan func(*models.Snapshot), 5)
	c.spawn("cpu", updates, func() func(*models.Snapshot) {
		reading := c.cpu.Collect()
		return func(s *models.Snapshot) { s.CPU = reading }
	})
	c.spawn("memory", updates, func() func(*models.Snapshot) {
		reading := c.memory.Collect()
		return func(s *models.Snapshot) { s.Memory = reading }
	})
	c.spawn("disk", updates, func() func(*models.Snapshot) {
		reading := c.disk.Collect()
		return func(s *models.Snapshot) { s.Disk = reading }
	})
	c.spawn("sensors", updates, func() func(*models.Snapshot) {
		reading := c.sensors.Collect()
		return func(s *models.Snapshot) { s.Temp = reading }
	})
	c.spawn("host", updates, func() func(*models.Snapshot) {
		reading := c.host.Collect()
		return func(s *models.Snapshot) { s.Host = reading }
	})

	deadline := time.After(collectTimeout)
	for pending := 5; pending > 0; pending-- {
		select {
		case apply := <-updates:
			apply(snap)
		case <-ctx.Done():
			c.log.Debug("collection canceled, returning partial snapshot")
			return snap
		case <-deadline:
			c.log.Debug("collection timeout, returning partial snapshot")
			return snap
		}
	}
	return snap
}

// spawn runs one sub-collection in its own goroutine and delivers the
// result over updates. The channel is buffered for all five categories,
// so a collector that finishes after the deadline does not leak.
func (c *Collector) spawn(component string, updates chan<- func(*models.Snapshot), collect func() func(*models.Snapshot)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				c.log.Errorf("panic in %s collector: %v", component, r)
				updates <- func(*models.Snapshot) {}
			}
		}()
		updates <- collect()
	}()
}
