package widgets

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/telemetry"
)

func TestDisplayGear(t *testing.T) {
	tests := []struct {
		raw  int64
		want int64
	}{
		{0, 0}, // reverse
		{1, 0}, // neutral
		{2, 1},
		{3, 2},
		{8, 7},
	}
	for _, tt := range tests {
		if got := DisplayGear(tt.raw); got != tt.want {
			t.Errorf("DisplayGear(%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
	for g := int64(0); g <= 8; g++ {
		if DisplayGear(g) < 0 {
			t.Errorf("DisplayGear(%d) is negative", g)
		}
	}
}

func TestFilledSlots(t *testing.T) {
	tests := []struct {
		name   string
		rpm    float64
		max    float64
		length int
		want   int
	}{
		{"half", 4000, 8000, 10, 5},
		{"three quarters", 6000, 8000, 10, 8},
		{"at max clamps to length-1", 8000, 8000, 10, 9},
		{"over max clamps", 9000, 8000, 10, 9},
		{"idle rounds up", 1, 8000, 10, 1},
		{"zero rpm", 0, 8000, 10, 0},
		{"no max", 5000, 0, 10, 0},
		{"negative rpm", -50, 8000, 10, 0},
		{"default length", 4000, 8000, 17, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilledSlots(tt.rpm, tt.max, tt.length); got != tt.want {
				t.Errorf("FilledSlots(%v, %v, %d) = %d, want %d", tt.rpm, tt.max, tt.length, got, tt.want)
			}
		})
	}
}

func newTach(length int) *Tachometer {
	return NewTachometer(Region{}, TachometerConfig{BarLength: length, RedlineMargin: DefaultRedlineMargin})
}

func TestTachometer_Occupancy(t *testing.T) {
	tach := newTach(10)
	tach.InitStatics(telemetry.NewSection(`{"maxRpm": 8000}`))
	tach.Update(telemetry.NewSection(`{"rpms": 4000, "gear": 3}`), telemetry.Section{})

	want := []bool{true, true, true, true, true, false, false, false, false, false}
	if diff := cmp.Diff(want, tach.Occupied()); diff != "" {
		t.Errorf("occupancy mismatch (-want +got):\n%s", diff)
	}
	if tach.Redline() {
		t.Error("4000/8000 should not be in redline")
	}
}

func TestTachometer_RedlineProximity(t *testing.T) {
	tests := []struct {
		rpm  int
		want bool
	}{
		{7800, false},
		{7899, false},
		{7900, true},
		{7950, true},
		{8000, true},
		{8050, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.rpm), func(t *testing.T) {
			tach := newTach(10)
			tach.InitStatics(telemetry.NewSection(`{"maxRpm": 8000}`))
			tach.Update(telemetry.NewSection(fmt.Sprintf(`{"rpms": %d}`, tt.rpm)), telemetry.Section{})

			if got := tach.Redline(); got != tt.want {
				t.Errorf("Redline() at %d/8000 = %v, want %v", tt.rpm, got, tt.want)
			}
			c := NewCanvas()
			tach.Display(c)
			if got := strings.Contains(c.Line(3), glyphRedline); got != tt.want {
				t.Errorf("bar %q shows warning = %v, want %v", c.Line(3), got, tt.want)
			}
		})
	}
}

func TestTachometer_ZeroMarginWarnsAtMax(t *testing.T) {
	tach := NewTachometer(Region{}, TachometerConfig{BarLength: 10})
	tach.InitStatics(telemetry.NewSection(`{"maxRpm": 8000}`))

	tach.Update(telemetry.NewSection(`{"rpms": 7999}`), telemetry.Section{})
	if tach.Redline() {
		t.Error("7999/8000 with no margin should render the normal bar")
	}
	tach.Update(telemetry.NewSection(`{"rpms": 8000}`), telemetry.Section{})
	if !tach.Redline() {
		t.Error("8000/8000 with no margin should render the warning bar")
	}
}

func TestTachometer_OverRedline(t *testing.T) {
	tach := newTach(10)
	tach.InitStatics(telemetry.NewSection(`{"maxRpm": 8000}`))
	tach.Update(telemetry.NewSection(`{"rpms": 8200}`), telemetry.Section{})

	if !tach.Redline() {
		t.Fatal("8200/8000 should be in redline")
	}
	c := NewCanvas()
	tach.Display(c)
	if got, want := c.Line(3), "[!!!!!!!!!!]"; got != want {
		t.Errorf("bar = %q, want %q", got, want)
	}
}

func TestTachometer_NoMaxIsRedline(t *testing.T) {
	tach := newTach(5)
	tach.Update(telemetry.NewSection(`{"rpms": 3000}`), telemetry.Section{})
	if !tach.Redline() {
		t.Error("unset max rpm should render the warning bar")
	}
}

func TestTachometer_Display(t *testing.T) {
	tach := newTach(10)
	tach.InitStatics(telemetry.NewSection(`{"maxRpm": 8000}`))
	tach.Update(telemetry.NewSection(`{"packetId": 12, "rpms": 6000, "gear": 3}`), telemetry.Section{})

	c := NewCanvas()
	tach.Display(c)

	want := []string{
		"Tachometer",
		"RPM: 6000 / 8000",
		"Gear: 2",
		"[████████··]",
	}
	for i, w := range want {
		if got := c.Line(i); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
	if tach.OccupiedCount() != 8 {
		t.Errorf("OccupiedCount() = %d, want 8", tach.OccupiedCount())
	}
}

func TestTachometer_MissingFieldsKeepState(t *testing.T) {
	tach := newTach(10)
	tach.InitStatics(telemetry.NewSection(`{"maxRpm": 8000}`))
	tach.Update(telemetry.NewSection(`{"rpms": 5000, "gear": 4}`), telemetry.Section{})

	tach.Update(telemetry.NewSection(`{"rpms": "n/a"}`), telemetry.Section{})
	tach.Update(telemetry.Section{}, telemetry.Section{})
	tach.InitStatics(telemetry.Section{})

	c := NewCanvas()
	tach.Display(c)
	if got := c.Line(1); got != "RPM: 5000 / 8000" {
		t.Errorf("rpm line = %q", got)
	}
	if got := c.Line(2); got != "Gear: 3" {
		t.Errorf("gear line = %q", got)
	}
}

func TestTachometer_DisplayIsReadOnly(t *testing.T) {
	tach := newTach(10)
	tach.InitStatics(telemetry.NewSection(`{"maxRpm": 8000}`))
	tach.Update(telemetry.NewSection(`{"rpms": 7000, "gear": 5}`), telemetry.Section{})

	before := tach.Occupied()
	first := NewCanvas()
	tach.Display(first)
	second := NewCanvas()
	tach.Display(second)

	if diff := cmp.Diff(before, tach.Occupied()); diff != "" {
		t.Errorf("Display changed occupancy:\n%s", diff)
	}
	if first.Plain() != second.Plain() {
		t.Error("repeated Display should draw the same frame")
	}
}

func TestTachometer_DefaultBarLength(t *testing.T) {
	tach := NewTachometer(Region{}, TachometerConfig{})
	if got := len(tach.Occupied()); got != DefaultBarLength {
		t.Errorf("bar length = %d, want %d", got, DefaultBarLength)
	}
	c := NewCanvas()
	tach.Display(c)
	if !strings.HasPrefix(c.Line(3), "[") || !strings.HasSuffix(c.Line(3), "]") {
		t.Errorf("bar should be capped: %q", c.Line(3))
	}
}
