package metrics

import (
	"context"
	"math/rand/v2"
	"time"
)

// Source produces snapshots on demand. Implementations must not fail as a
// whole: per-domain problems degrade to zero values.
type Source interface {
	Collect(ctx context.Context) Snapshot
}

// Static always returns the same snapshot, stamped with the current time.
type Static struct {
	Snapshot Snapshot
	Now      func() time.Time
}

// Collect implements Source.
func (s *Static) Collect(_ context.Context) Snapshot {
	snap := s.Snapshot
	snap.CPUPerCore = append([]float64(nil), s.Snapshot.CPUPerCore...)
	snap.TopProcesses = append([]Process(nil), s.Snapshot.TopProcesses...)
	snap.Temperatures = append([]Temperature(nil), s.Snapshot.Temperatures...)
	if s.Now != nil {
		snap.Timestamp = s.Now()
	} else {
		snap.Timestamp = time.Now()
	}
	return snap
}

// Synthetic is a wandering fake host for demos and screenshots.
type Synthetic struct {
	cores    []float64
	memory   float64
	sent     uint64
	recv     uint64
	read     uint64
	write    uint64
	battery  float64
	rng      *rand.Rand
	procs    []Process
	cpuDrift float64
}

// NewSynthetic creates a synthetic source with the given core count.
func NewSynthetic(cores int, seed uint64) *Synthetic {
	if cores <= 0 {
		cores = 8
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := &Synthetic{
		cores:   make([]float64, cores),
		memory:  0.45,
		battery: 80,
		rng:     rng,
		procs: []Process{
			{PID: 1312, Name: "kworker/u16:3-events_unbound", CPUPercent: 0, MemPercent: 0.1},
			{PID: 2048, Name: "postgres", CPUPercent: 0, MemPercent: 4.2},
			{PID: 4096, Name: "node", CPUPercent: 0, MemPercent: 6.8},
			{PID: 777, Name: "glitchtop", CPUPercent: 0, MemPercent: 0.3},
			{PID: 31337, Name: "chromium-browser-stable", CPUPercent: 0, MemPercent: 12.5},
			{PID: 90, Name: "systemd-journald", CPUPercent: 0, MemPercent: 0.2},
		},
	}
	for i := range s.cores {
		s.cores[i] = 20 + rng.Float64()*30
	}
	return s
}

// Collect implements Source.
func (s *Synthetic) Collect(_ context.Context) Snapshot {
	// Slow sine-like drift pushes the whole machine into glitch territory now and then.
	s.cpuDrift += (s.rng.Float64() - 0.48) * 6
	s.cpuDrift = clampRange(s.cpuDrift, -30, 55)

	for i := range s.cores {
		s.cores[i] = clampRange(s.cores[i]+(s.rng.Float64()-0.5)*20+s.cpuDrift*0.1, 0, 100)
	}
	s.memory = clampRange(s.memory+(s.rng.Float64()-0.5)*0.04, 0.05, 0.98)
	s.sent += uint64(s.rng.IntN(512 * 1024))
	s.recv += uint64(s.rng.IntN(2 * 1024 * 1024))
	s.read += uint64(s.rng.IntN(4 * 1024 * 1024))
	s.write += uint64(s.rng.IntN(1024 * 1024))
	s.battery = clampRange(s.battery-0.05, 5, 100)

	procs := make([]Process, len(s.procs))
	for i, p := range s.procs {
		p.CPUPercent = clampRange(s.rng.Float64()*s.cores[i%len(s.cores)], 0, 100)
		procs[i] = p
	}
	SortProcesses(procs)
	if len(procs) > DefaultTopProcesses {
		procs = procs[:DefaultTopProcesses]
	}

	cores := append([]float64(nil), s.cores...)
	snap := Snapshot{
		Timestamp:      time.Now(),
		CPUPerCore:     cores,
		MemoryPressure: s.memory,
		Net:            NetCounters{BytesSent: s.sent, BytesRecv: s.recv},
		Disk:           DiskCounters{ReadBytes: s.read, WriteBytes: s.write},
		TopProcesses:   procs,
		Temperatures: []Temperature{
			{Sensor: "coretemp_package_id_0", Celsius: 35 + snapshotAverage(cores)*0.5, High: 90, Critical: 100},
			{Sensor: "nvme_composite", Celsius: 41, High: 80, Critical: 85},
		},
		Battery: &Battery{Percent: s.battery, Plugged: false},
	}
	return snap
}

func snapshotAverage(cores []float64) float64 {
	return Snapshot{CPUPerCore: cores}.AverageCPU()
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
