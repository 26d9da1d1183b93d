package bridge

import (
	"net"
	"sync"
	"time"

	liberr "github.com/Pneumaticat/bridge/errors"
)

// MaxChunk bounds the payload of a single PUT body or GET response.
const MaxChunk = 640 * 1024

// TunneledConnection is one entry of the Connection Table: an id paired
// with the outbound socket opened on its behalf. readMu/writeMu serialize
// GET-vs-GET and PUT-vs-PUT for this id independently of each other, so a
// long-poll GET and a concurrent PUT never block one another — only two
// GETs (or two PUTs) for the same id are mutually exclusive.
type TunneledConnection struct {
	Id      string
	Conn    net.Conn
	Dest    string
	Created time.Time

	readMu  sync.Mutex
	writeMu sync.Mutex
}

// Table is the server's process-wide id -> TunneledConnection mapping.
// Lookups and mutations are serialized by mu; the table is not a hot path
// since long-poll suspensions happen inside a handler goroutine, never
// while mu is held.
type Table struct {
	mu sync.Mutex
	m  map[string]*TunneledConnection
}

func NewTable() *Table {
	return &Table{m: make(map[string]*TunneledConnection)}
}

// Open dials dest and inserts a new entry for id. It returns ErrorConflict
// if id is already present (live or not yet removed), matching the
// redesigned POST semantics: a live id is never silently replaced.
func (t *Table) Open(id, dest string) (*TunneledConnection, liberr.Error) {
	t.mu.Lock()
	if _, ok := t.m[id]; ok {
		t.mu.Unlock()
		return nil, ErrorConflict.Error()
	}
	t.mu.Unlock()

	conn, err := Dial(dest)
	if err != nil {
		return nil, ErrorDial.ErrorParent(err)
	}

	tc := &TunneledConnection{
		Id:      id,
		Conn:    conn,
		Dest:    dest,
		Created: time.Now(),
	}

	t.mu.Lock()
	if _, ok := t.m[id]; ok {
		t.mu.Unlock()
		_ = conn.Close()
		return nil, ErrorConflict.Error()
	}
	t.m[id] = tc
	t.mu.Unlock()

	return tc, nil
}

// Get returns the entry for id, if any.
func (t *Table) Get(id string) (*TunneledConnection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	tc, ok := t.m[id]
	return tc, ok
}

// Remove closes and deletes the entry for id. Idempotent: removing an
// absent id is a no-op.
func (t *Table) Remove(id string) {
	t.mu.Lock()
	tc, ok := t.m[id]
	if ok {
		delete(t.m, id)
	}
	t.mu.Unlock()

	if ok {
		_ = tc.Conn.Close()
	}
}

// CloseAll closes every live entry and empties the table, used on server
// shutdown.
func (t *Table) CloseAll() {
	t.mu.Lock()
	m := t.m
	t.m = make(map[string]*TunneledConnection)
	t.mu.Unlock()

	for _, tc := range m {
		_ = tc.Conn.Close()
	}
}

// Len reports the number of live entries, for diagnostics and tests.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.m)
}

// LongPollRead implements the GET handler's read semantics: try a
// non-blocking read first: if data is already sitting in the socket
// buffer, return it immediately. Otherwise wait up to idleWindow for the
// destination to become readable and retry once. If the wait expires, the
// second result is true ("idle", 204); a non-nil error means the
// destination is gone (410).
//
// Serialized against any other concurrent read for this id via readMu —
// a GET may run alongside a PUT on the same connection, but never
// alongside another GET.
func (tc *TunneledConnection) LongPollRead(idleWindow time.Duration) ([]byte, bool, error) {
	tc.readMu.Lock()
	defer tc.readMu.Unlock()

	buf := make([]byte, MaxChunk)

	if err := tc.Conn.SetReadDeadline(time.Now()); err != nil {
		return nil, false, err
	}
	n, err := tc.Conn.Read(buf)
	if n > 0 {
		return buf[:n], false, nil
	}
	if err == nil {
		return nil, false, nil
	}
	if ne, ok := err.(net.Error); !ok || !ne.Timeout() {
		return nil, false, err
	}

	if err := tc.Conn.SetReadDeadline(time.Now().Add(idleWindow)); err != nil {
		return nil, false, err
	}
	n, err = tc.Conn.Read(buf)
	if n > 0 {
		return buf[:n], false, nil
	}
	if err == nil {
		return nil, false, nil
	}
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return nil, true, nil
	}
	return nil, false, err
}

// Write writes body to tc's destination socket, serialized against any
// other concurrent write for this id.
func (tc *TunneledConnection) Write(body []byte) error {
	tc.writeMu.Lock()
	defer tc.writeMu.Unlock()

	_, err := tc.Conn.Write(body)
	return err
}
