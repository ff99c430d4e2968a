// Package telemetry decodes the per-tick JSON document sent by the
// simulator bridge and exposes typed, optional field lookups over it.
package telemetry

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Top-level keys of a telemetry datagram.
const (
	KeyPhysics  = "physics_data"
	KeyGraphics = "graphics_data"
	KeyStatics  = "static_data"
)

// Document is one decoded datagram. It is built fresh every tick and
// never retained.
type Document struct {
	Physics  Section
	Graphics Section
	Statics  Section
}

// PacketID returns the physics packetId. Zero (or a missing field) means
// the bridge is connected but the simulation is not producing data.
func (d Document) PacketID() int64 {
	id, ok := d.Physics.Int("packetId")
	if !ok {
		return 0
	}
	return id
}

// Live reports whether the document carries simulation data.
func (d Document) Live() bool {
	return d.PacketID() != 0
}

// Section is one dynamically-keyed object of the document. The zero
// value is an empty section: every lookup reports absent.
//
// Keys are gjson paths, so "tyreTemp.0" addresses an array element.
type Section struct {
	res gjson.Result
}

// NewSection parses a raw JSON object into a Section. Invalid input
// yields an empty section.
func NewSection(raw string) Section {
	if !gjson.Valid(raw) {
		return Section{}
	}
	res := gjson.Parse(raw)
	if !res.IsObject() {
		return Section{}
	}
	return Section{res: res}
}

// Exists reports whether the section was present in the datagram.
func (s Section) Exists() bool {
	return s.res.IsObject()
}

// Raw returns the section's JSON text, or "" when absent.
func (s Section) Raw() string {
	if !s.Exists() {
		return ""
	}
	return s.res.Raw
}

func (s Section) get(key string) gjson.Result {
	if !s.Exists() {
		return gjson.Result{}
	}
	return s.res.Get(key)
}

// Number returns a numeric field.
func (s Section) Number(key string) (float64, bool) {
	r := s.get(key)
	if r.Type != gjson.Number {
		return 0, false
	}
	return r.Float(), true
}

// Int returns a numeric field truncated to an integer.
func (s Section) Int(key string) (int64, bool) {
	r := s.get(key)
	if r.Type != gjson.Number {
		return 0, false
	}
	return r.Int(), true
}

// String returns a text field.
func (s Section) String(key string) (string, bool) {
	r := s.get(key)
	if r.Type != gjson.String {
		return "", false
	}
	return r.Str, true
}

// Quad returns a four-element numeric array such as per-wheel readings.
// Arrays that are shorter than four or hold non-numbers are treated as
// absent.
func (s Section) Quad(key string) ([4]float64, bool) {
	var out [4]float64
	r := s.get(key)
	if !r.IsArray() {
		return out, false
	}
	elems := r.Array()
	if len(elems) < len(out) {
		return out, false
	}
	for i := range out {
		if elems[i].Type != gjson.Number {
			return [4]float64{}, false
		}
		out[i] = elems[i].Float()
	}
	return out, true
}

// LapTime returns a lap time field as display text. Newer bridges send
// the formatted string; older ones send integer milliseconds.
func (s Section) LapTime(key string) (string, bool) {
	r := s.get(key)
	switch r.Type {
	case gjson.String:
		return r.Str, true
	case gjson.Number:
		return FormatLapTime(r.Int()), true
	}
	return "", false
}

// FormatLapTime renders milliseconds as m:ss.mmm. Negative values and
// the simulator's "no time" sentinel (math.MaxInt32) render as dashes.
func FormatLapTime(ms int64) string {
	if ms < 0 || ms >= 2147483647 {
		return "-:--.---"
	}
	m := ms / 60000
	s := (ms / 1000) % 60
	frac := ms % 1000
	return fmt.Sprintf("%d:%02d.%03d", m, s, frac)
}
