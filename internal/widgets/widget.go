// Package widgets provides the dashboard gauges. Each gauge owns a
// private snapshot of the telemetry fields it cares about and draws
// itself into a fixed region of a shared Canvas.
package widgets

import "github.com/LISSConsulting/LISSTech.ACCDash/internal/telemetry"

// Widget is the capability every gauge implements so the dashboard can
// drive them uniformly, in a fixed order.
type Widget interface {
	// Name identifies the gauge in logs.
	Name() string

	// InitStatics applies session constants. It is called on the first
	// live tick after a period without data and may be called again
	// when the session changes.
	InitStatics(statics telemetry.Section)

	// Update copies this tick's fields into the gauge. Missing or
	// mistyped fields leave the previous value in place.
	Update(physics, graphics telemetry.Section)

	// Display draws the current state into the gauge's region. It must
	// not change gauge state.
	Display(c *Canvas)
}

// Region is the top-left corner of a gauge on screen. Regions are
// assigned by the caller; overlap is not checked.
type Region struct {
	X, Y int
}
