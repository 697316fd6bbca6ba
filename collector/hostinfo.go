package collector

import (
	"net"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	gnet "github.com/shirou/gopsutil/v3/net"

	"sysmon/models"
)

// HostCollector collects host identity and liveness values.
type HostCollector struct {
	info       func() (*host.InfoStat, error)
	interfaces func() (gnet.InterfaceStatList, error)
}

// NewHostCollector creates a new host collector.
func NewHostCollector() *HostCollector {
	return &HostCollector{
		info:       host.Info,
		interfaces: gnet.Interfaces,
	}
}

// Collect gathers hostname, primary IP, uptime and process count.
func (c *HostCollector) Collect() models.HostReading {
	reading := models.HostReading{IPAddr: "127.0.0.1"}

	info, err := c.info()
	if err != nil {
		return reading
	}
	reading.Available = true
	reading.Hostname = info.Hostname
	reading.UptimeSec = info.Uptime
	reading.Processes = info.Procs

	if ip, ok := c.primaryIP(); ok {
		reading.IPAddr = ip
	}
	return reading
}

// primaryIP returns the first IPv4 address of an up, non-loopback
// interface.
func (c *HostCollector) primaryIP() (string, bool) {
	ifaces, err := c.interfaces()
	if err != nil {
		return "", false
	}

	for _, iface := range ifaces {
		if !hasFlag(iface.Flags, "up") || hasFlag(iface.Flags, "loopback") {
			continue
		}
		for _, addr := range iface.Addrs {
			ipStr := addr.Addr
			if i := strings.IndexByte(ipStr, '/'); i >= 0 {
				ipStr = ipStr[:i]
			}
			ip := net.ParseIP(ipStr)
			if ip == nil || ip.To4() == nil || ip.IsLoopback() {
				continue
			}
			return ip.String(), true
		}
	}
	return "", false
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}
