package widgets

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/telemetry"
)

// Corner indices, clockwise from front-left.
const (
	FrontLeft = iota
	FrontRight
	RearRight
	RearLeft
)

// cornerOffsets positions each reading around the car body, relative to
// the gauge origin. The title takes row 0.
var cornerOffsets = [4]Region{
	FrontLeft:  {X: 0, Y: 1},
	FrontRight: {X: 12, Y: 1},
	RearRight:  {X: 12, Y: 3},
	RearLeft:   {X: 0, Y: 3},
}

// carBody is drawn between the four readings.
var carBody = [3]string{"┌──┐", "│  │", "└──┘"}

// cornerMap is a four-corner banded gauge. The tyre, brake and pressure
// gauges differ only in field, format and thresholds.
type cornerMap struct {
	name       string
	title      string
	field      string
	format     string
	origin     Region
	bands      Thresholds
	rearOffset float64

	values [4]float64
}

// Name implements Widget.
func (m *cornerMap) Name() string { return m.name }

// InitStatics implements Widget; corner gauges have no session constants.
func (m *cornerMap) InitStatics(telemetry.Section) {}

// Update copies the four readings; an absent array keeps the old ones.
func (m *cornerMap) Update(physics, _ telemetry.Section) {
	if v, ok := physics.Quad(m.field); ok {
		m.values = v
	}
}

// Values returns the readings, clockwise from front-left.
func (m *cornerMap) Values() [4]float64 {
	return m.values
}

// BandAt classifies corner i. Rear corners include the rear offset.
func (m *cornerMap) BandAt(i int) Band {
	v := m.values[i]
	if i == RearRight || i == RearLeft {
		v += m.rearOffset
	}
	return m.bands.Classify(v)
}

// Display implements Widget.
func (m *cornerMap) Display(c *Canvas) {
	x, y := m.origin.X, m.origin.Y
	c.Label(x, y, m.title)
	for i, line := range carBody {
		c.Put(x+6, y+1+i, line, dimStyle)
	}
	for i, off := range cornerOffsets {
		c.Put(x+off.X, y+off.Y, fmt.Sprintf(m.format, m.values[i]), m.BandAt(i).Style())
	}
}

// TyreTemps shows core tyre temperatures in °C.
type TyreTemps struct{ cornerMap }

// NewTyreTemps creates a tyre temperature map at origin.
func NewTyreTemps(origin Region, bands Thresholds) *TyreTemps {
	return &TyreTemps{cornerMap{
		name:   "tyre-temps",
		title:  "Tyre Temps",
		field:  "tyreTemp",
		format: "%5.1f",
		origin: origin,
		bands:  bands,
	}}
}

// BrakeTemps shows brake disc temperatures in °C.
type BrakeTemps struct{ cornerMap }

// NewBrakeTemps creates a brake temperature map at origin. rearOffset is
// added to rear readings before banding.
func NewBrakeTemps(origin Region, bands Thresholds, rearOffset float64) *BrakeTemps {
	return &BrakeTemps{cornerMap{
		name:       "brake-temps",
		title:      "Brake Temps",
		field:      "brakeTemp",
		format:     "%5.0f",
		origin:     origin,
		bands:      bands,
		rearOffset: rearOffset,
	}}
}

// TyrePressures shows tyre pressures in psi.
type TyrePressures struct{ cornerMap }

// NewTyrePressures creates a tyre pressure map at origin.
func NewTyrePressures(origin Region, bands Thresholds) *TyrePressures {
	return &TyrePressures{cornerMap{
		name:   "tyre-pressures",
		title:  "Tyre Pressures",
		field:  "wheelsPressure",
		format: "%5.1f",
		origin: origin,
		bands:  bands,
	}}
}
