// Package theme holds the fixed glyph themes, the active-theme state with
// its time-based rotation, and the value-to-glyph/colour mapping used by
// every panel.
package theme

// Name identifies a registered theme.
type Name string

// Registered themes. Order is the rotation order.
const (
	Standard Name = "standard"
	Runes    Name = "runes"
	Matrix   Name = "matrix"
	Braille  Name = "braille"
	ASCII    Name = "ascii"
)

// Default is used whenever a name does not resolve.
const Default = Standard

// Band is an intensity band for a 0-100 value.
type Band int

const (
	BandLow Band = iota
	BandMed
	BandHigh
	BandCritical
)

// String returns the band label used in config and previews.
func (b Band) String() string {
	switch b {
	case BandLow:
		return "low"
	case BandMed:
		return "med"
	case BandHigh:
		return "high"
	case BandCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Theme is an immutable set of four glyphs, one per band.
type Theme struct {
	Name   Name
	glyphs [4]string
}

// Glyph returns the glyph drawn for the given band.
func (t Theme) Glyph(b Band) string {
	if b < BandLow || b > BandCritical {
		b = BandLow
	}
	return t.glyphs[b]
}

// GlyphFor returns the glyph for a 0-100 value.
func (t Theme) GlyphFor(value float64) string {
	return t.Glyph(BandFor(value))
}

// Glyphs returns the four glyphs from low to critical.
func (t Theme) Glyphs() [4]string {
	return t.glyphs
}

var order = []Name{Standard, Runes, Matrix, Braille, ASCII}

var registry = map[Name]Theme{
	Standard: {Name: Standard, glyphs: [4]string{"·", "+", "#", "█"}},
	Runes:    {Name: Runes, glyphs: [4]string{"᚛", "᚜", "ᚠ", "ᛸ"}},
	Matrix:   {Name: Matrix, glyphs: [4]string{"0", "1", "Ӝ", "▓"}},
	Braille:  {Name: Braille, glyphs: [4]string{"⠀", "⠶", "⣿", "█"}},
	ASCII:    {Name: ASCII, glyphs: [4]string{".", "-", "=", "#"}},
}

// Names returns the registered theme names in rotation order.
func Names() []Name {
	out := make([]Name, len(order))
	copy(out, order)
	return out
}

// Lookup returns the theme for name and whether it was registered.
// Unknown names resolve to the default theme.
func Lookup(name Name) (Theme, bool) {
	t, ok := registry[name]
	if !ok {
		return registry[Default], false
	}
	return t, true
}

// Get returns the theme for name, falling back to the default theme.
func Get(name Name) Theme {
	t, _ := Lookup(name)
	return t
}

// Valid reports whether name is a registered theme.
func Valid(name string) bool {
	_, ok := registry[Name(name)]
	return ok
}

// Next returns the theme after name in rotation order, wrapping after the last.
// An unknown name advances from the default theme.
func Next(name Name) Name {
	idx := indexOf(name)
	if idx < 0 {
		idx = indexOf(Default)
	}
	return order[(idx+1)%len(order)]
}

func indexOf(name Name) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}
