package tui

import "github.com/LISSConsulting/LISSTech.ACCDash/internal/dashboard"

// ViewState is what the status bar reports about the feed.
type ViewState int

const (
	StateWaiting ViewState = iota // connected, no live data
	StateLive                     // gauges are updating
	StateFailed                   // the link failed; the program is exiting
)

// validTransitions defines the allowed ViewState transitions.
var validTransitions = map[ViewState][]ViewState{
	StateWaiting: {StateLive, StateFailed},
	StateLive:    {StateWaiting, StateFailed},
	StateFailed:  {},
}

// CanTransitionTo reports whether transitioning from s to next is valid.
func (s ViewState) CanTransitionTo(next ViewState) bool {
	for _, valid := range validTransitions[s] {
		if valid == next {
			return true
		}
	}
	return false
}

// fromFeed maps the engine feed state.
func fromFeed(f dashboard.FeedState) ViewState {
	if f == dashboard.FeedLive {
		return StateLive
	}
	return StateWaiting
}

// Label returns a short uppercase label for the state.
func (s ViewState) Label() string {
	switch s {
	case StateWaiting:
		return "WAITING"
	case StateLive:
		return "LIVE"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns a single-character symbol representing the state.
func (s ViewState) Symbol() string {
	switch s {
	case StateWaiting:
		return "○"
	case StateLive:
		return "●"
	case StateFailed:
		return "✗"
	default:
		return "?"
	}
}
