// Package link owns the UDP session with the simulator bridge: binding,
// the data-request handshake, the keep-alive heartbeat, and frame
// receive.
package link

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Wire messages understood by the bridge.
const (
	RequestMessage   = "Give me the data!"
	KeepaliveMessage = "I'm alive!"
)

// Defaults used when a Config field is zero.
const (
	DefaultHeartbeatInterval = 2000 * time.Millisecond
	DefaultMaxFrameSize      = 8192
	DefaultPeerPort          = 9000
)

// Config describes one session.
type Config struct {
	Listen string // local bind address, host:port
	Peer   string // bridge address; PeerPort is appended when it has no port

	PeerPort          int
	HeartbeatInterval time.Duration
	MaxFrameSize      int
	HandshakeTimeout  time.Duration // 0 waits forever

	Factory SocketFactory    // nil uses UDPSocketFactory
	Now     func() time.Time // nil uses time.Now
	Log     *log.Entry       // nil uses the standard logger
}

// Conn is the single connection to the bridge. It is not safe for
// concurrent use; the dashboard drives it from one goroutine.
type Conn struct {
	sock              Socket
	peer              *net.UDPAddr
	lastHeartbeat     time.Time
	heartbeatInterval time.Duration
	maxFrameSize      int
	handshakeTimeout  time.Duration
	log               *log.Entry
}

// Open resolves the peer and binds the local endpoint.
func Open(cfg Config) (*Conn, error) {
	if cfg.PeerPort == 0 {
		cfg.PeerPort = DefaultPeerPort
	}
	if cfg.HeartbeatInterval == 0 {
		cfg.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.MaxFrameSize == 0 {
		cfg.MaxFrameSize = DefaultMaxFrameSize
	}
	if cfg.Factory == nil {
		cfg.Factory = UDPSocketFactory{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = log.NewEntry(log.StandardLogger())
	}

	if strings.TrimSpace(cfg.Peer) == "" {
		return nil, &BindError{Addr: strconv.Quote(cfg.Peer), Err: errors.New("empty peer address")}
	}
	peerAddr := withDefaultPort(cfg.Peer, cfg.PeerPort)
	peer, err := net.ResolveUDPAddr("udp", peerAddr)
	if err != nil {
		return nil, &BindError{Addr: peerAddr, Err: errors.Wrap(err, "resolve peer")}
	}

	laddr, err := net.ResolveUDPAddr("udp", cfg.Listen)
	if err != nil {
		return nil, &BindError{Addr: cfg.Listen, Err: errors.Wrap(err, "resolve listen address")}
	}
	sock, err := cfg.Factory.ListenUDP("udp", laddr)
	if err != nil {
		return nil, &BindError{Addr: cfg.Listen, Err: errors.Wrap(err, "listen")}
	}

	c := &Conn{
		sock:              sock,
		peer:              peer,
		lastHeartbeat:     cfg.Now(),
		heartbeatInterval: cfg.HeartbeatInterval,
		maxFrameSize:      cfg.MaxFrameSize,
		handshakeTimeout:  cfg.HandshakeTimeout,
		log:               cfg.Log.WithField("peer", peer.String()),
	}
	c.log.WithField("listen", c.LocalAddr().String()).Info("udp endpoint bound")
	return c, nil
}

// withDefaultPort appends port when addr has none.
func withDefaultPort(addr string, port int) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	return net.JoinHostPort(addr, strconv.Itoa(port))
}

// Peer returns the resolved bridge address.
func (c *Conn) Peer() string {
	return c.peer.String()
}

// LocalAddr returns the bound local address.
func (c *Conn) LocalAddr() net.Addr {
	return c.sock.LocalAddr()
}

// MaxFrameSize is the largest datagram Receive returns intact.
func (c *Conn) MaxFrameSize() int {
	return c.maxFrameSize
}

// Handshake requests the data feed and blocks until the bridge answers
// with one datagram, which is discarded. Without a HandshakeTimeout it
// waits indefinitely.
func (c *Conn) Handshake() error {
	c.log.Info("sending data request")
	if _, err := c.sock.WriteToUDP([]byte(RequestMessage), c.peer); err != nil {
		return &HandshakeError{Peer: c.Peer(), Err: errors.Wrap(err, "send request")}
	}

	if c.handshakeTimeout > 0 {
		if err := c.sock.SetReadDeadline(time.Now().Add(c.handshakeTimeout)); err != nil {
			return &HandshakeError{Peer: c.Peer(), Err: errors.Wrap(err, "set read deadline")}
		}
		defer func() {
			if err := c.sock.SetReadDeadline(time.Time{}); err != nil {
				c.log.WithField("err", err).Warn("unable to clear read deadline")
			}
		}()
	}

	buf := make([]byte, c.maxFrameSize)
	n, _, err := c.sock.ReadFromUDP(buf)
	if err != nil {
		return &HandshakeError{Peer: c.Peer(), Err: errors.Wrap(err, "wait for acknowledgement")}
	}
	c.log.WithField("bytes", n).Info("handshake acknowledged")
	return nil
}

// PollKeepalive sends a keep-alive when more than the heartbeat interval
// has passed since the last one. It reports whether a message was sent.
func (c *Conn) PollKeepalive(now time.Time) (bool, error) {
	if now.Sub(c.lastHeartbeat) <= c.heartbeatInterval {
		return false, nil
	}
	if _, err := c.sock.WriteToUDP([]byte(KeepaliveMessage), c.peer); err != nil {
		return false, &KeepaliveError{Peer: c.Peer(), Err: errors.Wrap(err, "send keep-alive")}
	}
	c.lastHeartbeat = now
	c.log.Debug("keep-alive sent")
	return true, nil
}

// Receive blocks for one datagram and copies at most MaxFrameSize bytes
// of it into buf. Longer datagrams are truncated by the socket.
func (c *Conn) Receive(buf []byte) (int, error) {
	if len(buf) > c.maxFrameSize {
		buf = buf[:c.maxFrameSize]
	}
	n, _, err := c.sock.ReadFromUDP(buf)
	if err != nil {
		return 0, &RecvError{Err: errors.Wrap(err, "read datagram")}
	}
	return n, nil
}

// Close releases the socket.
func (c *Conn) Close() error {
	return c.sock.Close()
}
