package widgets

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/telemetry"
)

// Tachometer defaults.
const (
	DefaultBarLength     = 17
	DefaultRedlineMargin = 100
)

// Bar glyphs.
const (
	glyphCapLeft  = "["
	glyphCapRight = "]"
	glyphFilled   = "█"
	glyphEmpty    = "·"
	glyphRedline  = "!"
)

// TachometerConfig tunes the rev bar.
type TachometerConfig struct {
	BarLength     int     // number of slots
	RedlineMargin float64 // rpm below max at which the bar starts flashing
}

// Tachometer shows engine speed, gear and a segmented rev bar.
type Tachometer struct {
	origin Region
	margin float64

	rpm    float64
	maxRPM float64
	gear   int64
	bar    []bool
}

// NewTachometer creates a tachometer at origin.
func NewTachometer(origin Region, cfg TachometerConfig) *Tachometer {
	if cfg.BarLength < 1 {
		cfg.BarLength = DefaultBarLength
	}
	return &Tachometer{
		origin: origin,
		margin: cfg.RedlineMargin,
		bar:    make([]bool, cfg.BarLength),
	}
}

// Name implements Widget.
func (t *Tachometer) Name() string { return "tachometer" }

// InitStatics reads the session's max rpm.
func (t *Tachometer) InitStatics(statics telemetry.Section) {
	if v, ok := statics.Number("maxRpm"); ok {
		t.maxRPM = v
	}
	t.fill()
}

// Update reads rpm and gear.
func (t *Tachometer) Update(physics, _ telemetry.Section) {
	if v, ok := physics.Number("rpms"); ok {
		t.rpm = v
	}
	if v, ok := physics.Int("gear"); ok {
		t.gear = v
	}
	t.fill()
}

// fill recomputes bar occupancy from rpm and max rpm.
func (t *Tachometer) fill() {
	n := FilledSlots(t.rpm, t.maxRPM, len(t.bar))
	for i := range t.bar {
		t.bar[i] = i < n
	}
}

// FilledSlots is ceil(rpm/max * length) clamped to [0, length-1]. An
// unset max fills nothing.
func FilledSlots(rpm, maxRPM float64, length int) int {
	if maxRPM <= 0 || length <= 0 {
		return 0
	}
	n := int(math.Ceil(rpm / maxRPM * float64(length)))
	if n < 0 {
		return 0
	}
	if n > length-1 {
		return length - 1
	}
	return n
}

// DisplayGear converts the simulator's gear index, where 0 is reverse
// and 1 is neutral, to the number shown on screen. It is never negative.
func DisplayGear(raw int64) int64 {
	if raw >= 1 {
		return raw - 1
	}
	return 0
}

// Redline reports whether the bar is in warning mode: no max rpm known
// yet, or rpm within the margin of max or beyond it.
func (t *Tachometer) Redline() bool {
	return t.maxRPM <= 0 || t.rpm >= t.maxRPM-t.margin
}

// Occupied returns a copy of the bar occupancy.
func (t *Tachometer) Occupied() []bool {
	return append([]bool(nil), t.bar...)
}

// OccupiedCount returns the number of filled slots.
func (t *Tachometer) OccupiedCount() int {
	n := 0
	for _, on := range t.bar {
		if on {
			n++
		}
	}
	return n
}

// Display implements Widget.
func (t *Tachometer) Display(c *Canvas) {
	x, y := t.origin.X, t.origin.Y
	c.Label(x, y, "Tachometer")
	c.Put(x, y+1, fmt.Sprintf("RPM: %.0f / %.0f", t.rpm, t.maxRPM), valueStyle)
	c.Put(x, y+2, fmt.Sprintf("Gear: %d", DisplayGear(t.gear)), valueStyle)

	c.Put(x, y+3, glyphCapLeft, dimStyle)
	redline := t.Redline()
	for i, on := range t.bar {
		switch {
		case redline:
			c.Put(x+1+i, y+3, glyphRedline, redlineStyle)
		case on:
			c.Put(x+1+i, y+3, glyphFilled, t.slotStyle(i))
		default:
			c.Put(x+1+i, y+3, glyphEmpty, dimStyle)
		}
	}
	c.Put(x+1+len(t.bar), y+3, glyphCapRight, dimStyle)
}

// slotStyle shades the bar green, then orange, then red towards the end.
func (t *Tachometer) slotStyle(i int) lipgloss.Style {
	frac := float64(i+1) / float64(len(t.bar))
	switch {
	case frac <= 0.6:
		return optimalStyle
	case frac <= 0.85:
		return shiftStyle
	default:
		return tooHotStyle
	}
}
