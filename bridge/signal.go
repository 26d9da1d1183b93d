package bridge

import (
	"os"
	"os/signal"
	"syscall"

	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

// WatchSignals closes local on INT, HUP, or TERM, in its own goroutine.
// Closing local is the single convergent shutdown trigger: it causes the
// Uplink Pump to observe EOF on its next local read, issue DELETE, and
// set Connected false, which in turn causes the server to 410 the
// Downlink Pump's next GET.
func WatchSignals(local *LocalEndpoint) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)

	go func() {
		s := <-sig
		liblog.Entry(liblvl.InfoLevel, "signal received, closing local endpoint").
			FieldAdd("signal", s.String()).Log()
		_ = local.Close()
	}()
}
