package tui

import "time"

// frameMsg carries one received datagram. The slice aliases the engine
// buffer; it is applied before the next receive is issued.
type frameMsg struct {
	frame []byte
	at    time.Time
}

// pollMsg fires after the poll interval and starts the next receive.
type pollMsg struct{}

// fatalMsg carries an unrecoverable link error.
type fatalMsg struct{ err error }

// tickMsg is sent every second for the clock.
type tickMsg time.Time
