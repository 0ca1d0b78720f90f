package monitor

// buildFrame runs every panel generator against the current snapshot.
func (m Model) buildFrame() Frame {
	snap := m.snapshot
	th := m.themes.Current()
	avg := snap.AverageCPU()

	return Frame{
		Header: HeaderPanel(HeaderInfo{
			Theme:         m.themes.Active(),
			GlitchEnabled: m.glitch.Enabled(),
			CycleEnabled:  m.themes.CycleEnabled(),
			CycleInterval: m.themes.CycleInterval(),
			Clock:         snap.Timestamp,
			Degraded:      snap.Degraded,
		}),
		CPU:       CPUPanel(snap.CPUPerCore, th, m.glitch, m.threshold),
		Processes: ProcessPanel(snap.TopProcesses, m.topN),
		Memory:    MemoryPanel(snap.MemoryPressure, th, m.glitch),
		Disk:      DiskPanel(snap.Disk),
		Sensors:   SensorsPanel(snap.Temperatures),
		GPU:       GPUPanel(snap.GPU, th),
		Entropy:   EntropyPanel(EntropyIntensity(avg, snap.MemoryPressure), th, m.glitch),
		Footer:    NetworkPanel(snap.Net, m.history.Snapshot(), snap.Battery),
	}
}
