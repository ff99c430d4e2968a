package widgets

import "github.com/charmbracelet/lipgloss"

// Band is the severity category of a reading.
type Band int

const (
	BandCold    Band = iota // below the working window
	BandOptimal             // inside the working window
	BandWarning             // above the window, still usable
	BandTooHot              // overheating
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandCold:
		return "cold"
	case BandOptimal:
		return "optimal"
	case BandWarning:
		return "warning"
	case BandTooHot:
		return "too-hot"
	default:
		return "unknown"
	}
}

// Style returns the display style for the band.
func (b Band) Style() lipgloss.Style {
	switch b {
	case BandCold:
		return coldStyle
	case BandOptimal:
		return optimalStyle
	case BandWarning:
		return warningStyle
	default:
		return tooHotStyle
	}
}

// Thresholds are the ascending upper bounds of the cold, optimal and
// warning bands. Anything at or above Warning is too hot.
type Thresholds struct {
	Cold    float64
	Optimal float64
	Warning float64
}

// Default threshold triples.
var (
	TyreTempThresholds     = Thresholds{Cold: 72, Optimal: 92, Warning: 100}
	BrakeTempThresholds    = Thresholds{Cold: 475, Optimal: 650, Warning: 675}
	TyrePressureThresholds = Thresholds{Cold: 26.5, Optimal: 28.0, Warning: 29.0}
)

// DefaultRearBrakeOffset is added to rear brake readings before banding;
// the rear sensors read lower than the fronts for the same heat.
const DefaultRearBrakeOffset = 200

// Classify maps v to a band using strict less-than comparisons, so a
// value equal to a bound belongs to the band above it.
func (t Thresholds) Classify(v float64) Band {
	switch {
	case v < t.Cold:
		return BandCold
	case v < t.Optimal:
		return BandOptimal
	case v < t.Warning:
		return BandWarning
	default:
		return BandTooHot
	}
}
