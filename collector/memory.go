package collector

import (
	"github.com/shirou/gopsutil/v3/mem"

	"sysmon/models"
)

// MemoryCollector collects virtual and swap memory readings.
type MemoryCollector struct {
	virtual func() (*mem.VirtualMemoryStat, error)
	swap    func() (*mem.SwapMemoryStat, error)
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{
		virtual: mem.VirtualMemory,
		swap:    mem.SwapMemory,
	}
}

// Collect gathers the current memory reading.
func (c *MemoryCollector) Collect() models.MemReading {
	reading := models.MemReading{}

	vm, err := c.virtual()
	if err != nil {
		return reading
	}
	reading.Available = true
	reading.Virtual = models.MemStats{
		Total:     vm.Total,
		Used:      vm.Used,
		Free:      vm.Free,
		Available: vm.Available,
		Percent:   vm.UsedPercent,
		Active:    vm.Active,
		Inactive:  vm.Inactive,
		Buffers:   vm.Buffers,
		Cached:    vm.Cached,
		Shared:    vm.Shared,
	}

	if sm, err := c.swap(); err == nil {
		reading.Swap = models.MemStats{
			Total:   sm.Total,
			Used:    sm.Used,
			Free:    sm.Free,
			Percent: sm.UsedPercent,
		}
	}

	return reading
}
