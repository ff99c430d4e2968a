package tui

import (
	"testing"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/dashboard"
)

func TestViewState_Transitions(t *testing.T) {
	tests := []struct {
		from, to ViewState
		want     bool
	}{
		{StateWaiting, StateLive, true},
		{StateWaiting, StateFailed, true},
		{StateLive, StateWaiting, true},
		{StateLive, StateFailed, true},
		{StateFailed, StateLive, false},
		{StateFailed, StateWaiting, false},
		{StateWaiting, StateWaiting, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.Label()+"->"+tt.to.Label(), func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewState_LabelsAndSymbols(t *testing.T) {
	tests := []struct {
		s      ViewState
		label  string
		symbol string
	}{
		{StateWaiting, "WAITING", "○"},
		{StateLive, "LIVE", "●"},
		{StateFailed, "FAILED", "✗"},
		{ViewState(9), "UNKNOWN", "?"},
	}
	for _, tt := range tests {
		if got := tt.s.Label(); got != tt.label {
			t.Errorf("Label() = %q, want %q", got, tt.label)
		}
		if got := tt.s.Symbol(); got != tt.symbol {
			t.Errorf("Symbol() = %q, want %q", got, tt.symbol)
		}
	}
}

func TestFromFeed(t *testing.T) {
	if fromFeed(dashboard.FeedLive) != StateLive {
		t.Error("FeedLive should map to StateLive")
	}
	if fromFeed(dashboard.FeedWaiting) != StateWaiting {
		t.Error("FeedWaiting should map to StateWaiting")
	}
}
