package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempReading_Primary(t *testing.T) {
	reading := TempReading{Available: true, Sensors: []SensorReading{
		{Name: "acpitz", Current: 38},
		{Name: "coretemp_package_id_0", Current: 45},
		{Name: "nvme_composite", Current: 32},
	}}

	primary, ok := reading.Primary()
	require.True(t, ok)
	assert.Equal(t, "coretemp_package_id_0", primary.Name)
}

func TestTempReading_Primary_FallsBackToFirst(t *testing.T) {
	reading := TempReading{Available: true, Sensors: []SensorReading{
		{Name: "acpitz", Current: 38},
		{Name: "nvme_composite", Current: 32},
	}}

	primary, ok := reading.Primary()
	require.True(t, ok)
	assert.Equal(t, "acpitz", primary.Name)
}

func TestTempReading_Primary_Unavailable(t *testing.T) {
	_, ok := TempReading{}.Primary()
	assert.False(t, ok)

	_, ok = TempReading{Available: true}.Primary()
	assert.False(t, ok)
}

func TestDiskReading_Busiest(t *testing.T) {
	reading := DiskReading{Available: true, Mounts: []MountUsage{
		{Mountpoint: "/", Percent: 61},
		{Mountpoint: "/home", Percent: 85},
		{Mountpoint: "/var", Percent: 10},
	}}

	busiest, ok := reading.Busiest()
	require.True(t, ok)
	assert.Equal(t, "/home", busiest.Mountpoint)

	_, ok = DiskReading{}.Busiest()
	assert.False(t, ok)
}

func TestNewSnapshot(t *testing.T) {
	snap := NewSnapshot()
	assert.False(t, snap.Timestamp.IsZero())
	assert.False(t, snap.CPU.Available)
	assert.False(t, snap.Host.Available)
}
