package theme

import "time"

// DefaultCycleInterval is used when cycling is enabled without a usable interval.
const DefaultCycleInterval = 10 * time.Second

// State tracks the active theme and its rotation schedule.
// It is owned by the dashboard loop and is not safe for concurrent use.
type State struct {
	active        Name
	cycleEnabled  bool
	cycleInterval time.Duration
	lastSwitch    time.Time
}

// NewState creates a state starting at name (falling back to the default
// theme when unknown) with the rotation clock started at now.
func NewState(name Name, cycleEnabled bool, cycleInterval time.Duration, now time.Time) *State {
	if _, ok := registry[name]; !ok {
		name = Default
	}
	if cycleInterval <= 0 {
		cycleInterval = DefaultCycleInterval
	}
	return &State{
		active:        name,
		cycleEnabled:  cycleEnabled,
		cycleInterval: cycleInterval,
		lastSwitch:    now,
	}
}

// Current returns the active theme.
func (s *State) Current() Theme {
	return Get(s.active)
}

// Active returns the active theme name.
func (s *State) Active() Name {
	return s.active
}

// CycleEnabled reports whether automatic rotation is on.
func (s *State) CycleEnabled() bool {
	return s.cycleEnabled
}

// CycleInterval returns the rotation interval.
func (s *State) CycleInterval() time.Duration {
	return s.cycleInterval
}

// MaybeRotate advances to the next theme when cycling is enabled and more
// than one interval has elapsed since the last switch. Returns true if the
// theme changed.
func (s *State) MaybeRotate(now time.Time) bool {
	if !s.cycleEnabled {
		return false
	}
	if now.Sub(s.lastSwitch) <= s.cycleInterval {
		return false
	}
	s.active = Next(s.active)
	s.lastSwitch = now
	return true
}

// Advance switches to the next theme immediately and restarts the interval.
func (s *State) Advance(now time.Time) {
	s.active = Next(s.active)
	s.lastSwitch = now
}

// Set switches to name (default theme when unknown) and restarts the interval.
func (s *State) Set(name Name, now time.Time) {
	if _, ok := registry[name]; !ok {
		name = Default
	}
	s.active = name
	s.lastSwitch = now
}

// SetCycleEnabled turns automatic rotation on or off. Turning it on restarts
// the interval so the current theme gets a full period on screen.
func (s *State) SetCycleEnabled(enabled bool, now time.Time) {
	if enabled && !s.cycleEnabled {
		s.lastSwitch = now
	}
	s.cycleEnabled = enabled
}
