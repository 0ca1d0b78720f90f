// Package monitor implements the GlitchTop dashboard: panel generators,
// the network history buffer, the layout composer and the Bubble Tea model
// that drives them.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (theme state, glitch engine, history, last frame)
//   - Update: Processes messages (keystrokes, tick events, new snapshots)
//   - View: Returns the last fully composed frame
//
// # Message Flow
//
// The dashboard runs a serial tick loop:
//
//  1. collectCmd() asks the metrics.Source for a snapshot off the UI goroutine
//  2. snapshotMsg arrives; Update rotates the theme if due, records the
//     network delta and rebuilds the frame
//  3. tickMsg fires one interval later (default 250ms) and starts the next collection
//
// # Panels
//
// Each generator is a function from snapshot data to a Panel:
//
//	CPUPanel      - glyph grid, 4 cores per row, corrupts above the threshold
//	MemoryPanel   - 10 row fill bar, corrupts above 80% pressure
//	DiskPanel     - cumulative read/write totals
//	ProcessPanel  - top processes table
//	GPUPanel      - utilisation, VRAM and thermals, or a placeholder
//	SensorsPanel  - temperatures, or a placeholder
//	EntropyPanel  - decorative noise driven by combined load
//	NetworkPanel  - footer with totals, sparkline and battery
//
// Compose places them in a fixed grid: header, a left column (CPU over
// processes), a right column (memory, disk, sensors, GPU), the entropy strip
// and the footer.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Halt
//	t           - Next theme
//	g           - Toggle glitch
//	c           - Toggle theme cycling
//	?           - Toggle help overlay
package monitor
