// Package dashboard drives the gauges from the telemetry link: it decodes
// each frame, dispatches it to the widgets in order, keeps the statics
// arming state and the keep-alive going, and renders the current screen.
package dashboard

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/LISSConsulting/LISSTech.ACCDash/internal/telemetry"
	"github.com/LISSConsulting/LISSTech.ACCDash/internal/widgets"
)

// DefaultPollInterval is the fixed pause after every tick.
const DefaultPollInterval = 16 * time.Millisecond

// fallbackFrameSize is used when the link reports no limit.
const fallbackFrameSize = 8192

// Link is the part of the bridge connection the engine uses.
// *link.Conn satisfies this interface.
type Link interface {
	Receive(buf []byte) (int, error)
	PollKeepalive(now time.Time) (bool, error)
	Peer() string
	MaxFrameSize() int
	Close() error
}

// Options tunes an Engine. Zero values select the defaults.
type Options struct {
	PollInterval time.Duration
	AccentColor  string // label color for the plain-mode canvas
	Now          func() time.Time
	Log          *log.Entry
}

// Engine is the dashboard loop. It is not safe for concurrent use: one
// goroutine receives, applies and renders.
type Engine struct {
	link    Link
	widgets []widgets.Widget
	buf     []byte
	poll    time.Duration
	now     func() time.Time
	log     *log.Entry
	canvas  *widgets.Canvas

	staticsArmed bool
	stats        Stats
}

// New creates an engine that dispatches to ws in the given order.
func New(l Link, ws []widgets.Widget, opts Options) *Engine {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = log.NewEntry(log.StandardLogger())
	}
	size := l.MaxFrameSize()
	if size <= 0 {
		size = fallbackFrameSize
	}

	canvas := widgets.NewCanvas()
	if opts.AccentColor != "" {
		canvas.SetLabelColor(opts.AccentColor)
	}

	return &Engine{
		link:         l,
		widgets:      ws,
		buf:          make([]byte, size),
		poll:         opts.PollInterval,
		now:          opts.Now,
		log:          opts.Log.WithField("component", "dashboard"),
		canvas:       canvas,
		staticsArmed: true,
	}
}

// PollInterval returns the pause between ticks.
func (e *Engine) PollInterval() time.Duration {
	return e.poll
}

// Peer returns the bridge address.
func (e *Engine) Peer() string {
	return e.link.Peer()
}

// Stats returns a snapshot of the counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// State returns the current feed state.
func (e *Engine) State() FeedState {
	return e.stats.State
}

// Receive blocks for one datagram. The returned slice aliases the
// engine buffer and is valid until the next call.
func (e *Engine) Receive() ([]byte, error) {
	n, err := e.link.Receive(e.buf)
	if err != nil {
		return nil, err
	}
	return e.buf[:n], nil
}

// Apply processes one frame received at now. Frames that fail to decode
// are counted and skipped. The keep-alive check runs on every call, and
// its failure is the only error returned.
func (e *Engine) Apply(frame []byte, now time.Time) error {
	doc, err := telemetry.Decode(frame)
	if err != nil {
		var decErr *telemetry.DecodeError
		if !errors.As(err, &decErr) {
			return fmt.Errorf("dashboard: decode: %w", err)
		}
		e.stats.BadFrames++
		e.log.WithFields(log.Fields{"bytes": decErr.Len, "reason": decErr.Reason}).Debug("frame skipped")
	} else {
		e.stats.Frames++
		e.dispatch(doc)
	}
	return e.keepalive(now)
}

func (e *Engine) dispatch(doc telemetry.Document) {
	id := doc.PacketID()
	e.stats.PacketID = id

	if !doc.Live() {
		if e.stats.State != FeedWaiting {
			e.log.WithField("packet_id", id).Info("feed paused, waiting for data")
		}
		e.stats.State = FeedWaiting
		e.staticsArmed = true
		return
	}

	if e.stats.State != FeedLive {
		e.log.WithField("packet_id", id).Info("feed live")
	}
	e.stats.State = FeedLive

	if e.staticsArmed {
		for _, w := range e.widgets {
			w.InitStatics(doc.Statics)
		}
		e.staticsArmed = false
		e.log.WithField("widgets", len(e.widgets)).Debug("statics applied")
	}
	for _, w := range e.widgets {
		w.Update(doc.Physics, doc.Graphics)
	}
}

func (e *Engine) keepalive(now time.Time) error {
	sent, err := e.link.PollKeepalive(now)
	if err != nil {
		e.log.WithField("err", err).Error("keep-alive failed")
		return err
	}
	if sent {
		e.stats.Keepalives++
	}
	return nil
}

// Rearm makes the next live frame re-apply session statics.
func (e *Engine) Rearm() {
	e.staticsArmed = true
	e.log.Info("statics re-armed")
}

// Armed reports whether statics will be applied on the next live frame.
func (e *Engine) Armed() bool {
	return e.staticsArmed
}

// WaitingMessage is shown while no live data arrives.
func WaitingMessage(peer string) string {
	return fmt.Sprintf("Connection established to %s, waiting for data...", peer)
}

// Render draws the current screen into c, replacing its content.
func (e *Engine) Render(c *widgets.Canvas) {
	c.Reset()
	if e.stats.State != FeedLive {
		c.Text(0, 0, WaitingMessage(e.link.Peer()))
		return
	}
	for _, w := range e.widgets {
		w.Display(c)
	}
}
