package metrics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/shirou/gopsutil/v4/sensors"
	"golang.org/x/sync/errgroup"

	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/rileyhilliard/glitchtop/internal/logger"
)

// CollectorConfig tunes a Collector.
type CollectorConfig struct {
	TopProcesses    int
	GPUTimeout      time.Duration
	PowerSupplyRoot string
	Logger          logger.Logger
}

// Probes are the per-domain readers a Collector fans out to. Tests swap
// individual probes to simulate failing or missing hardware.
type Probes struct {
	CPU         func(ctx context.Context) ([]float64, error)
	Memory      func(ctx context.Context) (float64, error)
	Network     func(ctx context.Context) (NetCounters, error)
	Disk        func(ctx context.Context) (DiskCounters, error)
	Processes   func(ctx context.Context, n int) ([]Process, error)
	GPU         func(ctx context.Context) (*GPU, error)
	Temperature func(ctx context.Context) ([]Temperature, error)
	Battery     func(ctx context.Context) (*Battery, error)
}

// Collector reads the local host through gopsutil. Each domain runs in its
// own goroutine; a failing domain is logged and left empty.
type Collector struct {
	cfg    CollectorConfig
	probes Probes
	log    logger.Logger
	now    func() time.Time
	procs  *processCache
}

// NewCollector creates a Collector backed by the real host probes.
func NewCollector(cfg CollectorConfig) *Collector {
	if cfg.TopProcesses <= 0 {
		cfg.TopProcesses = DefaultTopProcesses
	}
	if cfg.GPUTimeout <= 0 {
		cfg.GPUTimeout = DefaultGPUTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Noop()
	}
	c := &Collector{
		cfg:   cfg,
		log:   cfg.Logger,
		now:   time.Now,
		procs: newProcessCache(),
	}
	c.probes = Probes{
		CPU:         readCPU,
		Memory:      readMemory,
		Network:     readNetwork,
		Disk:        readDisk,
		Processes:   c.procs.top,
		GPU:         func(ctx context.Context) (*GPU, error) { return QueryGPU(ctx, cfg.GPUTimeout) },
		Temperature: readTemperatures,
		Battery:     func(context.Context) (*Battery, error) { return ReadBattery(cfg.PowerSupplyRoot) },
	}
	return c
}

// WithProbes returns a copy of c that uses the non-nil probes in p.
func (c *Collector) WithProbes(p Probes) *Collector {
	cp := *c
	if p.CPU != nil {
		cp.probes.CPU = p.CPU
	}
	if p.Memory != nil {
		cp.probes.Memory = p.Memory
	}
	if p.Network != nil {
		cp.probes.Network = p.Network
	}
	if p.Disk != nil {
		cp.probes.Disk = p.Disk
	}
	if p.Processes != nil {
		cp.probes.Processes = p.Processes
	}
	if p.GPU != nil {
		cp.probes.GPU = p.GPU
	}
	if p.Temperature != nil {
		cp.probes.Temperature = p.Temperature
	}
	if p.Battery != nil {
		cp.probes.Battery = p.Battery
	}
	return &cp
}

// Collect implements Source.
func (c *Collector) Collect(ctx context.Context) Snapshot {
	snap := Snapshot{Timestamp: c.now()}

	// One error slot per domain; each goroutine writes only its own fields.
	var (
		cpuErr, memErr, netErr, diskErr   error
		procErr, gpuErr, tempErr, batErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		snap.CPUPerCore, cpuErr = c.probes.CPU(ctx)
		return nil
	})
	g.Go(func() error {
		snap.MemoryPressure, memErr = c.probes.Memory(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Net, netErr = c.probes.Network(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Disk, diskErr = c.probes.Disk(ctx)
		return nil
	})
	g.Go(func() error {
		snap.TopProcesses, procErr = c.probes.Processes(ctx, c.cfg.TopProcesses)
		return nil
	})
	g.Go(func() error {
		snap.GPU, gpuErr = c.probes.GPU(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Temperatures, tempErr = c.probes.Temperature(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Battery, batErr = c.probes.Battery(ctx)
		return nil
	})
	_ = g.Wait()

	checks := []struct {
		domain string
		err    error
		reset  func()
	}{
		{DomainCPU, cpuErr, func() { snap.CPUPerCore = nil }},
		{DomainMemory, memErr, func() { snap.MemoryPressure = 0 }},
		{DomainNetwork, netErr, func() { snap.Net = NetCounters{} }},
		{DomainDisk, diskErr, func() { snap.Disk = DiskCounters{} }},
		{DomainProcesses, procErr, func() { snap.TopProcesses = nil }},
		{DomainGPU, gpuErr, func() { snap.GPU = nil }},
		{DomainSensors, tempErr, func() { snap.Temperatures = nil }},
		{DomainBattery, batErr, func() { snap.Battery = nil }},
	}
	for _, chk := range checks {
		if chk.err == nil {
			continue
		}
		chk.reset()
		snap.Degraded = append(snap.Degraded, chk.domain)
		c.log.Debug("%v", errors.ProbeFailed(chk.domain, chk.err))
	}

	snap.MemoryPressure = clampRange(snap.MemoryPressure, 0, 1)
	return snap
}

func readCPU(ctx context.Context) ([]float64, error) {
	// Interval 0 compares against the previous call, so the first tick
	// reports usage since boot and later ticks report the last interval.
	return cpu.PercentWithContext(ctx, 0, true)
}

func readMemory(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent / 100, nil
}

func readNetwork(ctx context.Context) (NetCounters, error) {
	stats, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return NetCounters{}, err
	}
	var n NetCounters
	for _, s := range stats {
		n.BytesSent += s.BytesSent
		n.BytesRecv += s.BytesRecv
	}
	return n, nil
}

func readDisk(ctx context.Context) (DiskCounters, error) {
	stats, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return DiskCounters{}, err
	}
	var d DiskCounters
	for _, s := range stats {
		d.ReadBytes += s.ReadBytes
		d.WriteBytes += s.WriteBytes
	}
	return d, nil
}

func readTemperatures(ctx context.Context) ([]Temperature, error) {
	stats, err := sensors.TemperaturesWithContext(ctx)
	// Partial results come back alongside a warnings error on some hosts.
	if err != nil && len(stats) == 0 {
		return nil, err
	}
	temps := make([]Temperature, 0, len(stats))
	for _, s := range stats {
		if s.Temperature <= 0 {
			continue
		}
		temps = append(temps, Temperature{
			Sensor:   s.SensorKey,
			Celsius:  s.Temperature,
			High:     s.High,
			Critical: s.Critical,
		})
	}
	sort.Slice(temps, func(i, j int) bool { return temps[i].Sensor < temps[j].Sensor })
	return temps, nil
}

// processCache keeps gopsutil process handles between ticks. A handle's
// CPU percent is measured against its previous call, so reusing handles
// turns the second and later ticks into real instantaneous readings.
type processCache struct {
	mu    sync.Mutex
	procs map[int32]*process.Process
}

func newProcessCache() *processCache {
	return &processCache{procs: make(map[int32]*process.Process)}
}

func (pc *processCache) top(ctx context.Context, n int) ([]Process, error) {
	live, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	seen := make(map[int32]struct{}, len(live))
	out := make([]Process, 0, len(live))
	for _, fresh := range live {
		seen[fresh.Pid] = struct{}{}
		p, ok := pc.procs[fresh.Pid]
		if !ok {
			p = fresh
			pc.procs[fresh.Pid] = p
		}

		// Processes can exit between listing and inspection; skip them.
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cpuPct, err := p.PercentWithContext(ctx, 0)
		if err != nil {
			continue
		}
		memPct, _ := p.MemoryPercentWithContext(ctx)

		out = append(out, Process{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: float64(memPct),
		})
	}

	for pid := range pc.procs {
		if _, ok := seen[pid]; !ok {
			delete(pc.procs, pid)
		}
	}

	SortProcesses(out)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// SortProcesses orders by CPU descending, then PID ascending for stability.
func SortProcesses(procs []Process) {
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].CPUPercent != procs[j].CPUPercent {
			return procs[i].CPUPercent > procs[j].CPUPercent
		}
		return procs[i].PID < procs[j].PID
	})
}
