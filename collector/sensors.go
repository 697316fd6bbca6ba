package collector

import (
	"github.com/shirou/gopsutil/v3/host"

	"sysmon/models"
)

// Sensor values outside this range are garbage readings from buggy
// firmware and get dropped.
const (
	minPlausibleTemp = 0
	maxPlausibleTemp = 150
)

// SensorCollector collects temperature sensor readings.
type SensorCollector struct {
	probe func() ([]host.TemperatureStat, error)
}

// NewSensorCollector creates a new temperature sensor collector.
func NewSensorCollector() *SensorCollector {
	return &SensorCollector{probe: host.SensorsTemperatures}
}

// Collect gathers the current temperature readings. On hosts with no
// exposed sensors the reading stays unavailable.
func (c *SensorCollector) Collect() models.TempReading {
	reading := models.TempReading{}

	stats, err := c.probe()
	if err != nil {
		return reading
	}

	for _, s := range stats {
		if s.Temperature <= minPlausibleTemp || s.Temperature > maxPlausibleTemp {
			continue
		}
		reading.Sensors = append(reading.Sensors, models.SensorReading{
			Name:     s.SensorKey,
			Current:  s.Temperature,
			High:     s.High,
			Critical: s.Critical,
		})
	}

	reading.Available = len(reading.Sensors) > 0
	return reading
}
