// Package models defines the snapshot data structures produced on every
// refresh tick. A Snapshot is created fresh per poll, never mutated, and
// discarded once displayed.
package models

import (
	"strings"
	"time"
)

// Snapshot is one complete set of readings at a point in time.
type Snapshot struct {
	Timestamp time.Time   `json:"timestamp"`
	CPU       CPUReading  `json:"cpu"`
	Temp      TempReading `json:"temp"`
	Memory    MemReading  `json:"memory"`
	Disk      DiskReading `json:"disk"`
	Host      HostReading `json:"host"`
}

// CPUReading contains CPU usage at one point in time.
type CPUReading struct {
	// Available indicates whether the reading succeeded.
	Available bool `json:"available"`
	// Percent is the overall CPU usage percentage (0-100).
	Percent float64 `json:"percent"`
	// PerCore is the usage percentage for each logical CPU.
	PerCore []float64 `json:"per_core"`
	// FreqMHz is the current frequency per logical CPU, if known.
	FreqMHz []float64 `json:"freq_mhz"`
	// Model is the processor model name.
	Model string `json:"model"`
}

// SensorReading is one temperature sensor entry.
type SensorReading struct {
	// Name is the sensor key reported by the OS (e.g. "coretemp_core_0").
	Name string `json:"name"`
	// Current is the current temperature in Celsius.
	Current float64 `json:"current"`
	// High is the high-watermark threshold in Celsius, 0 if unknown.
	High float64 `json:"high"`
	// Critical is the critical threshold in Celsius, 0 if unknown.
	Critical float64 `json:"critical"`
}

// TempReading contains all temperature sensors at one point in time.
type TempReading struct {
	Available bool            `json:"available"`
	Sensors   []SensorReading `json:"sensors"`
}

// Primary returns the sensor used for the summary display. The CPU package
// sensor is preferred when present, otherwise the first sensor wins.
func (t TempReading) Primary() (SensorReading, bool) {
	if !t.Available || len(t.Sensors) == 0 {
		return SensorReading{}, false
	}
	for _, s := range t.Sensors {
		name := strings.ToLower(s.Name)
		if strings.Contains(name, "coretemp") || strings.Contains(name, "k10temp") ||
			strings.Contains(name, "cpu") {
			return s, true
		}
	}
	return t.Sensors[0], true
}

// MemStats holds one memory pool's counters, in bytes.
type MemStats struct {
	Total     uint64  `json:"total"`
	Used      uint64  `json:"used"`
	Free      uint64  `json:"free"`
	Available uint64  `json:"available"`
	Percent   float64 `json:"percent"`
	Active    uint64  `json:"active"`
	Inactive  uint64  `json:"inactive"`
	Buffers   uint64  `json:"buffers"`
	Cached    uint64  `json:"cached"`
	Shared    uint64  `json:"shared"`
}

// MemReading contains virtual and swap memory at one point in time.
type MemReading struct {
	Available bool     `json:"available"`
	Virtual   MemStats `json:"virtual"`
	Swap      MemStats `json:"swap"`
}

// MountUsage is the disk usage of a single mount point.
type MountUsage struct {
	Mountpoint string  `json:"mountpoint"`
	Fstype     string  `json:"fstype"`
	Total      uint64  `json:"total"`
	Used       uint64  `json:"used"`
	Free       uint64  `json:"free"`
	Percent    float64 `json:"percent"`
}

// DiskReading contains per-mount disk usage at one point in time.
type DiskReading struct {
	Available bool         `json:"available"`
	Mounts    []MountUsage `json:"mounts"`
}

// Busiest returns the mount with the highest usage percentage, used for the
// summary meter.
func (d DiskReading) Busiest() (MountUsage, bool) {
	if !d.Available || len(d.Mounts) == 0 {
		return MountUsage{}, false
	}
	busiest := d.Mounts[0]
	for _, m := range d.Mounts[1:] {
		if m.Percent > busiest.Percent {
			busiest = m
		}
	}
	return busiest, true
}

// HostReading contains host identity and liveness values.
type HostReading struct {
	Available bool   `json:"available"`
	Hostname  string `json:"hostname"`
	IPAddr    string `json:"ip_addr"`
	UptimeSec uint64 `json:"uptime_sec"`
	Processes uint64 `json:"processes"`
}

// NewSnapshot creates an empty Snapshot stamped with the current time.
func NewSnapshot() *Snapshot {
	return &Snapshot{Timestamp: time.Now()}
}
