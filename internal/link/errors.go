package link

import "fmt"

// Every error in this file is fatal to the session: the transport is
// unusable and the dashboard cannot make further progress. None of them
// are retried.

// BindError reports a local or peer address that could not be used.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("link: bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// HandshakeError reports a failed data request or a failed wait for the
// acknowledgement datagram.
type HandshakeError struct {
	Peer string
	Err  error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("link: handshake with %s: %v", e.Peer, e.Err)
}

func (e *HandshakeError) Unwrap() error { return e.Err }

// KeepaliveError reports a failed heartbeat send.
type KeepaliveError struct {
	Peer string
	Err  error
}

func (e *KeepaliveError) Error() string {
	return fmt.Sprintf("link: keep-alive to %s: %v", e.Peer, e.Err)
}

func (e *KeepaliveError) Unwrap() error { return e.Err }

// RecvError reports a socket-level receive failure.
type RecvError struct {
	Err error
}

func (e *RecvError) Error() string {
	return fmt.Sprintf("link: receive: %v", e.Err)
}

func (e *RecvError) Unwrap() error { return e.Err }
