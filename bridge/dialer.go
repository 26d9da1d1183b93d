package bridge

import (
	"net"
	"time"
)

const keepAlivePeriod = 30 * time.Second

// Dial opens a TCP connection to addr and enables keepalive on it, with a
// keepAlivePeriod (30 s) probe interval, so the server can detect a
// half-open destination path.
//
// nabbar-golib ships a socket/server/tcp package that does the same dial
// plus keepalive dance, but only its test files were retrieved into the
// pack (no implementation source survived the retrieval filter), so this
// is grounded directly on stdlib net rather than an adapted copy of code
// this workspace never received.
func Dial(addr string) (net.Conn, error) {
	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return nil, err
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetKeepAlive(true)
		_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	}

	return conn, nil
}
