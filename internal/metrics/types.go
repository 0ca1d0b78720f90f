// Package metrics acquires host metric snapshots for the dashboard.
//
// Every optional domain (GPU, battery, temperatures) is modelled so that
// absence is a value, not an error: a nil pointer or an empty slice. A
// failing domain is logged and left at its zero value so one broken probe
// never costs the whole tick.
package metrics

import "time"

// DefaultTopProcesses is the number of processes kept per snapshot.
const DefaultTopProcesses = 5

// Domain names used in Snapshot.Degraded and log lines.
const (
	DomainCPU       = "cpu"
	DomainMemory    = "memory"
	DomainNetwork   = "network"
	DomainDisk      = "disk"
	DomainProcesses = "processes"
	DomainGPU       = "gpu"
	DomainSensors   = "sensors"
	DomainBattery   = "battery"
)

// Snapshot is one tick's worth of host metrics. It is built fresh by a
// Source and treated as read-only by the renderer.
type Snapshot struct {
	Timestamp time.Time

	// CPUPerCore holds per-core utilisation (0-100) in stable core order.
	CPUPerCore []float64

	// MemoryPressure is used memory as a fraction (0.0-1.0).
	MemoryPressure float64

	Net  NetCounters
	Disk DiskCounters

	// TopProcesses is sorted by CPUPercent descending, at most N entries.
	TopProcesses []Process

	GPU          *GPU // nil when no GPU or the query failed
	Temperatures []Temperature
	Battery      *Battery // nil on machines without a battery

	// Degraded lists the domains whose probe failed this tick.
	Degraded []string
}

// NetCounters are cumulative network byte counters across interfaces.
type NetCounters struct {
	BytesSent uint64
	BytesRecv uint64
}

// Total returns sent plus received bytes.
func (n NetCounters) Total() uint64 {
	return n.BytesSent + n.BytesRecv
}

// DiskCounters are cumulative disk byte counters across devices.
type DiskCounters struct {
	ReadBytes  uint64
	WriteBytes uint64
}

// Process is one row of the process table.
type Process struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float64
}

// GPU contains GPU usage information (typically from nvidia-smi).
type GPU struct {
	Name        string
	Utilization float64
	MemUsed     uint64
	MemTotal    uint64
	Temperature int
	PowerWatts  int
}

// MemPercent returns used GPU memory as a percentage.
func (g GPU) MemPercent() float64 {
	if g.MemTotal == 0 {
		return 0
	}
	return float64(g.MemUsed) / float64(g.MemTotal) * 100
}

// Temperature is a single named sensor reading in degrees Celsius.
type Temperature struct {
	Sensor   string
	Celsius  float64
	High     float64
	Critical float64
}

// Battery is the primary battery's charge state.
type Battery struct {
	Percent float64
	Plugged bool
}

// AverageCPU returns the mean of the per-core values, 0 when there are none.
func (s Snapshot) AverageCPU() float64 {
	if len(s.CPUPerCore) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.CPUPerCore {
		sum += v
	}
	return sum / float64(len(s.CPUPerCore))
}
