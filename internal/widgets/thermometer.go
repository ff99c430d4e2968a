package widgets

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/telemetry"
)

// Thermometer shows track and air temperature.
type Thermometer struct {
	origin Region

	road float64
	air  float64
}

// NewThermometer creates a thermometer at origin.
func NewThermometer(origin Region) *Thermometer {
	return &Thermometer{origin: origin}
}

// Name implements Widget.
func (t *Thermometer) Name() string { return "thermometer" }

// InitStatics implements Widget.
func (t *Thermometer) InitStatics(telemetry.Section) {}

// Update implements Widget.
func (t *Thermometer) Update(physics, _ telemetry.Section) {
	if v, ok := physics.Number("roadTemp"); ok {
		t.road = v
	}
	if v, ok := physics.Number("airTemp"); ok {
		t.air = v
	}
}

// Temps returns track and air temperature.
func (t *Thermometer) Temps() (road, air float64) {
	return t.road, t.air
}

// Display implements Widget.
func (t *Thermometer) Display(c *Canvas) {
	x, y := t.origin.X, t.origin.Y
	c.Put(x, y, fmt.Sprintf("Track: %.1f°C", t.road), valueStyle)
	c.Put(x, y+1, fmt.Sprintf("Air:   %.1f°C", t.air), valueStyle)
}
