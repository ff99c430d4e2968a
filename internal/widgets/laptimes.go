package widgets

import "github.com/LISSConsulting/LISSTech.ACCDash/internal/telemetry"

// noLapTime is shown until the first value arrives.
const noLapTime = "-:--.---"

// LapTimes shows the running, last and best lap.
type LapTimes struct {
	origin Region

	current string
	last    string
	best    string
}

// NewLapTimes creates a lap time panel at origin.
func NewLapTimes(origin Region) *LapTimes {
	return &LapTimes{
		origin:  origin,
		current: noLapTime,
		last:    noLapTime,
		best:    noLapTime,
	}
}

// Name implements Widget.
func (l *LapTimes) Name() string { return "lap-times" }

// InitStatics implements Widget.
func (l *LapTimes) InitStatics(telemetry.Section) {}

// Update copies lap times from the graphics section. Last and best are
// only replaced when they changed.
func (l *LapTimes) Update(_, graphics telemetry.Section) {
	if v, ok := lapTime(graphics, "currentTime", "iCurrentTime"); ok {
		l.current = v
	}
	if v, ok := lapTime(graphics, "lastTime", "iLastTime"); ok && v != l.last {
		l.last = v
	}
	if v, ok := lapTime(graphics, "bestTime", "iBestTime"); ok && v != l.best {
		l.best = v
	}
}

// lapTime prefers the text field and falls back to the millisecond one.
func lapTime(s telemetry.Section, text, millis string) (string, bool) {
	if v, ok := s.LapTime(text); ok {
		return v, true
	}
	return s.LapTime(millis)
}

// Times returns current, last and best.
func (l *LapTimes) Times() (current, last, best string) {
	return l.current, l.last, l.best
}

// Display implements Widget.
func (l *LapTimes) Display(c *Canvas) {
	x, y := l.origin.X, l.origin.Y
	c.Put(x, y, "Current: "+l.current, valueStyle)
	c.Put(x, y+1, "Last:    "+l.last, valueStyle)
	c.Put(x, y+2, "Best:    "+l.best, optimalStyle)
}
