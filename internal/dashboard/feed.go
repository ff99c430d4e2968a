package dashboard

// FeedState is the engine's view of the telemetry stream.
type FeedState int

const (
	// FeedWaiting means no frame with a non-zero packet id has been
	// seen since the last reset. The waiting screen is shown.
	FeedWaiting FeedState = iota
	// FeedLive means the last valid frame carried live data.
	FeedLive
)

// String returns a short label for the status bar and logs.
func (s FeedState) String() string {
	switch s {
	case FeedWaiting:
		return "waiting"
	case FeedLive:
		return "live"
	default:
		return "unknown"
	}
}

// Stats is a snapshot of the engine counters.
type Stats struct {
	State      FeedState
	PacketID   int64
	Frames     int // frames that decoded
	BadFrames  int // frames skipped because they did not decode
	Keepalives int
}
