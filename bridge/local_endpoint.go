package bridge

import (
	"io"
	"net"
	"os"
)

// LocalEndpoint is the client's local side of a tunnel: either a single
// accepted TCP connection, or the process's stdin/stdout pair. Closing In
// is the canonical "local side is done" signal both pumps and the Closer
// key off of.
type LocalEndpoint struct {
	In  io.ReadCloser
	Out io.Writer
}

// ListenOnce opens a TCP listener on port, accepts exactly one connection,
// and returns it as both In and Out. The listener is closed as soon as
// the one connection is accepted; no further local connections are ever
// accepted for this tunnel.
func ListenOnce(port string) (*LocalEndpoint, error) {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, err
	}
	defer func() { _ = ln.Close() }()

	conn, err := ln.Accept()
	if err != nil {
		return nil, err
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetKeepAlive(true)
		_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	}

	return &LocalEndpoint{In: conn, Out: conn}, nil
}

// Stdio returns a LocalEndpoint bound to the process's standard input and
// output. Both directions are unbuffered byte streams.
func Stdio() *LocalEndpoint {
	return &LocalEndpoint{In: os.Stdin, Out: os.Stdout}
}

// Close closes the In side. Per the spec, closing Out separately is not
// required (in the TCP case In and Out are the same conn, so closing In
// closes both; stdio's Out, os.Stdout, is simply left open).
func (l *LocalEndpoint) Close() error {
	return l.In.Close()
}
