package link

import (
	"net"
	"time"
)

// Socket is the subset of *net.UDPConn the connection uses. Tests
// substitute fakes to exercise failure paths.
type Socket interface {
	ReadFromUDP(b []byte) (int, *net.UDPAddr, error)
	WriteToUDP(b []byte, addr *net.UDPAddr) (int, error)
	SetReadDeadline(t time.Time) error
	LocalAddr() net.Addr
	Close() error
}

// SocketFactory creates bound sockets.
type SocketFactory interface {
	ListenUDP(network string, laddr *net.UDPAddr) (Socket, error)
}

// UDPSocketFactory binds real sockets with net.ListenUDP.
type UDPSocketFactory struct{}

// ListenUDP binds laddr.
func (UDPSocketFactory) ListenUDP(network string, laddr *net.UDPAddr) (Socket, error) {
	conn, err := net.ListenUDP(network, laddr)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
