package collector

import (
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"

	"sysmon/models"
)

// CPUCollector collects CPU usage and frequency readings.
type CPUCollector struct {
	percent func(percpu bool) ([]float64, error)
	info    func() ([]cpu.InfoStat, error)

	model     string
	modelOnce sync.Once
}

// NewCPUCollector creates a new CPU collector.
func NewCPUCollector() *CPUCollector {
	return &CPUCollector{
		percent: func(percpu bool) ([]float64, error) {
			// Zero interval compares against the previous call instead
			// of blocking for a sample window.
			return cpu.Percent(0, percpu)
		},
		info: cpu.Info,
	}
}

// Collect gathers the current CPU reading.
func (c *CPUCollector) Collect() models.CPUReading {
	reading := models.CPUReading{Model: c.modelName()}

	overall, err := c.percent(false)
	if err != nil || len(overall) == 0 {
		return reading
	}
	reading.Available = true
	reading.Percent = overall[0]

	if perCore, err := c.percent(true); err == nil {
		reading.PerCore = perCore
	}

	if infos, err := c.info(); err == nil {
		freqs := make([]float64, 0, len(infos))
		for _, ci := range infos {
			freqs = append(freqs, ci.Mhz)
		}
		reading.FreqMHz = freqs
	}

	return reading
}

// modelName returns the processor model, looked up once.
func (c *CPUCollector) modelName() string {
	c.modelOnce.Do(func() {
		if infos, err := c.info(); err == nil && len(infos) > 0 {
			c.model = infos[0].ModelName
		}
	})
	return c.model
}
