package bridge_test

import (
	"net"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/Pneumaticat/bridge/bridge"
)

// newEchoServer starts a TCP echo listener and returns its address. It
// accepts connections until closed, echoing every byte it reads back to
// the same connection. closeFn closes the listener and every connection
// it accepted, so the peer of each connection observes the close.
func newEchoServer() (addr string, closeFn func()) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())

	var (
		mu     sync.Mutex
		conns  []net.Conn
		closed bool
	)

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			if closed {
				_ = conn.Close()
			}
			conns = append(conns, conn)
			mu.Unlock()
			go func(c net.Conn) {
				buf := make([]byte, 4096)
				for {
					n, err := c.Read(buf)
					if n > 0 {
						_, _ = c.Write(buf[:n])
					}
					if err != nil {
						return
					}
				}
			}(conn)
		}
	}()

	return ln.Addr().String(), func() {
		_ = ln.Close()
		mu.Lock()
		closed = true
		for _, c := range conns {
			_ = c.Close()
		}
		mu.Unlock()
	}
}

var _ = Describe("Table", func() {
	var (
		destAddr string
		closeDst func()
	)

	BeforeEach(func() {
		destAddr, closeDst = newEchoServer()
	})

	AfterEach(func() {
		closeDst()
	})

	It("opens a new id against a live destination", func() {
		table := NewTable()
		tc, err := table.Open("conn-1", destAddr)
		Expect(err).To(BeNil())
		Expect(tc).NotTo(BeNil())
		Expect(table.Len()).To(Equal(1))
	})

	It("rejects a second POST to the same live id", func() {
		table := NewTable()
		_, err := table.Open("conn-2", destAddr)
		Expect(err).To(BeNil())

		_, err = table.Open("conn-2", destAddr)
		Expect(err).NotTo(BeNil())
		Expect(err.IsCode(ErrorConflict)).To(BeTrue())
	})

	It("returns a dial error for an unreachable destination, without creating an entry", func() {
		table := NewTable()
		_, err := table.Open("conn-3", "127.0.0.1:1")
		Expect(err).NotTo(BeNil())
		Expect(err.IsCode(ErrorDial)).To(BeTrue())
		Expect(err.Error()).NotTo(BeEmpty())
		Expect(table.Len()).To(Equal(0))
	})

	It("removes an entry idempotently", func() {
		table := NewTable()
		_, err := table.Open("conn-4", destAddr)
		Expect(err).To(BeNil())

		table.Remove("conn-4")
		Expect(table.Len()).To(Equal(0))

		// second removal is a no-op, not an error
		table.Remove("conn-4")
		Expect(table.Len()).To(Equal(0))
	})

	It("closes every entry on CloseAll", func() {
		table := NewTable()
		_, err := table.Open("conn-5", destAddr)
		Expect(err).To(BeNil())
		_, err = table.Open("conn-6", destAddr)
		Expect(err).To(BeNil())

		table.CloseAll()
		Expect(table.Len()).To(Equal(0))
	})

	It("round-trips a write and a read through the destination", func() {
		table := NewTable()
		tc, err := table.Open("conn-7", destAddr)
		Expect(err).To(BeNil())

		Expect(tc.Write([]byte("hello"))).To(Succeed())

		buf, idle, rerr := tc.LongPollRead(2 * time.Second)
		Expect(rerr).To(BeNil())
		Expect(idle).To(BeFalse())
		Expect(string(buf)).To(Equal("hello"))
	})

	It("reports idle (no error) when the destination sends nothing within the window", func() {
		table := NewTable()
		tc, err := table.Open("conn-8", destAddr)
		Expect(err).To(BeNil())

		buf, idle, rerr := tc.LongPollRead(200 * time.Millisecond)
		Expect(rerr).To(BeNil())
		Expect(idle).To(BeTrue())
		Expect(buf).To(BeEmpty())
	})
})
