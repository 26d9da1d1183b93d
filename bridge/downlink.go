package bridge

import (
	"context"
	"net/http"
	"strings"

	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"

	"github.com/Pneumaticat/bridge/httpcli"
)

// RunDownlink repeatedly GETs the tunnel's URL and writes whatever bytes
// come back to the local endpoint's Out side, until the remote closes,
// the bridge forgets the id, or the local side goes away. It is meant to
// run in its own goroutine for the lifetime of the tunnel.
func RunDownlink(t *Tunnel) {
	for {
		if !t.Connected.Load() {
			return
		}

		res, lerr := httpcli.Do(context.Background(), t.DownlinkCli, http.MethodGet, t.BaseURL, nil, "")
		if lerr != nil {
			if isConnRefused(lerr) {
				t.Connected.Store(false)
				_ = t.Local.Close()
				return
			}
			// read timeout or transient transport error: retry while the
			// local side is still open and the tunnel still Connected.
			if t.Connected.Load() {
				continue
			}
			return
		}

		switch res.StatusCode {
		case http.StatusGone:
			liblog.Entry(liblvl.InfoLevel, "downlink: remote closed").FieldAdd("id", t.Id).Log()
			t.Connected.Store(false)
			_ = t.Local.Close()
			return
		case http.StatusNotFound:
			liblog.Entry(liblvl.WarnLevel, "downlink: bridge forgot connection id").FieldAdd("id", t.Id).Log()
			t.Connected.Store(false)
			return
		case http.StatusNoContent:
			continue
		case http.StatusOK:
			if len(res.Body) > 0 {
				if _, err := t.Local.Out.Write(res.Body); err != nil {
					t.Connected.Store(false)
					return
				}
			}
			continue
		default:
			liblog.Entry(liblvl.ErrorLevel, "downlink: unexpected status").
				FieldAdd("id", t.Id).FieldAdd("status", res.Status).Log()
			continue
		}
	}
}

func isConnRefused(err error) bool {
	return strings.Contains(err.Error(), "connection refused")
}
