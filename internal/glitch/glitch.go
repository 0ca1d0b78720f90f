// Package glitch corrupts styled text in proportion to system load.
//
// Corruption has two independent parts. Every character (newlines excepted)
// is replaced by a random glyph from Glyphs with probability p = intensity *
// MaxCharProbability. Every run is additionally drawn reversed and bold with
// probability p/2. Run order and boundaries are preserved.
package glitch

import (
	"math/rand/v2"
	"strings"

	"github.com/rileyhilliard/glitchtop/internal/styled"
)

// MinIntensity is the intensity below which text is returned untouched.
const MinIntensity = 0.1

// MaxCharProbability caps per-character corruption at intensity 1.0.
const MaxCharProbability = 0.3

// Glyphs is the fixed corruption glyph set.
var Glyphs = []string{"Z", "X", "¥", "§", "¶", "¿", "░", "▒", "▓"}

// Rand is the random source used by the engine. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand draws from the auto-seeded package source so every call
// produces a fresh outcome.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Engine applies glitch corruption.
type Engine struct {
	enabled bool
	rng     Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the random source, typically with a deterministic one in tests.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// New creates an engine. When enabled is false Corrupt is the identity.
func New(enabled bool, opts ...Option) *Engine {
	e := &Engine{enabled: enabled, rng: globalRand{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enabled reports whether corruption is switched on.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetEnabled switches corruption on or off.
func (e *Engine) SetEnabled(enabled bool) {
	e.enabled = enabled
}

// Rand exposes the engine's random source for decorative panels that
// need noise of their own.
func (e *Engine) Rand() Rand {
	return e.rng
}

// Probability returns the per-character substitution probability for intensity.
func Probability(intensity float64) float64 {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	return intensity * MaxCharProbability
}

// Active reports whether Corrupt would alter text at this intensity.
func (e *Engine) Active(intensity float64) bool {
	return e.enabled && intensity >= MinIntensity
}

// Corrupt returns a corrupted copy of text. The input is never modified.
// Draw order per run: one Float64 per character (plus IntN(len(Glyphs))
// when it hits), then one Float64 for the style decision.
func (e *Engine) Corrupt(text styled.Text, intensity float64) styled.Text {
	if !e.Active(intensity) {
		return text
	}

	p := Probability(intensity)
	out := styled.Text{}
	for _, run := range text.Runs() {
		var b strings.Builder
		b.Grow(len(run.Content))
		for _, r := range run.Content {
			if r == '\n' {
				b.WriteRune(r)
				continue
			}
			if e.rng.Float64() < p {
				b.WriteString(Glyphs[e.rng.IntN(len(Glyphs))])
				continue
			}
			b.WriteRune(r)
		}

		style := run.Style
		if e.rng.Float64() < p*0.5 {
			style = style.Reverse(true).Bold(true)
		}
		out = out.Append(b.String(), style)
	}
	return out
}
