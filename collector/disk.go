package collector

import (
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"sysmon/models"
)

// DiskCollector collects per-mount disk usage readings.
type DiskCollector struct {
	partitions func() ([]disk.PartitionStat, error)
	usage      func(path string) (*disk.UsageStat, error)
}

// NewDiskCollector creates a new disk collector.
func NewDiskCollector() *DiskCollector {
	return &DiskCollector{
		partitions: func() ([]disk.PartitionStat, error) {
			return disk.Partitions(false)
		},
		usage: disk.Usage,
	}
}

// Collect gathers usage for every physical mount point, sorted by path.
func (c *DiskCollector) Collect() models.DiskReading {
	reading := models.DiskReading{}

	parts, err := c.partitions()
	if err != nil {
		return reading
	}

	for _, p := range parts {
		if skipMount(p) {
			continue
		}
		u, err := c.usage(p.Mountpoint)
		if err != nil || u.Total == 0 {
			continue
		}
		reading.Mounts = append(reading.Mounts, models.MountUsage{
			Mountpoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Total:      u.Total,
			Used:       u.Used,
			Free:       u.Free,
			Percent:    u.UsedPercent,
		})
	}

	if len(reading.Mounts) == 0 {
		return reading
	}

	sort.Slice(reading.Mounts, func(i, j int) bool {
		return reading.Mounts[i].Mountpoint < reading.Mounts[j].Mountpoint
	})
	reading.Available = true
	return reading
}

// skipMount filters out pseudo filesystems and ephemeral mounts that would
// clutter the display.
func skipMount(p disk.PartitionStat) bool {
	switch p.Fstype {
	case "squashfs", "tmpfs", "devtmpfs", "overlay", "iso9660":
		return true
	}
	for _, prefix := range []string{"/proc", "/sys", "/dev", "/run", "/snap", "/boot/efi"} {
		if p.Mountpoint == prefix || strings.HasPrefix(p.Mountpoint, prefix+"/") {
			return true
		}
	}
	return false
}
