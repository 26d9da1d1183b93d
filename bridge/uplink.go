package bridge

import (
	"context"
	"fmt"
	"net/http"

	liberr "github.com/Pneumaticat/bridge/errors"
	"github.com/Pneumaticat/bridge/httpcli"
	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

// RunUplink reads the local endpoint and PUTs chunks of up to MaxChunk
// bytes to the bridge, until local EOF (orderly shutdown, nil return) or
// a fatal bridge response (non-nil return, caller should exit nonzero).
//
// Buffer retention: a chunk read from the local side is held in pending
// until the bridge confirms it with a 200. A transient transport error
// retries the same PUT with the same pending bytes rather than reading
// the next chunk, so accepted-but-unacknowledged bytes are never lost.
func RunUplink(t *Tunnel) liberr.Error {
	readBuf := make([]byte, MaxChunk)
	var pending []byte

	for {
		if pending == nil {
			n, err := t.Local.In.Read(readBuf)
			if n > 0 {
				pending = append([]byte(nil), readBuf[:n]...)
			}
			if err != nil {
				liblog.Entry(liblvl.InfoLevel, "uplink: local eof").FieldAdd("id", t.Id).Log()
				t.Connected.Store(false)
				t.Close()
				return nil
			}
			if pending == nil {
				continue
			}
		}

		res, lerr := httpcli.Do(context.Background(), t.UplinkCli, http.MethodPut, t.BaseURL, pending, "application/octet-stream")
		if lerr != nil {
			if t.Connected.Load() {
				liblog.Entry(liblvl.DebugLevel, "uplink: retrying put after transport error").
					FieldAdd("id", t.Id).ErrorAdd(false, lerr).Log()
				continue
			}
			return nil
		}

		switch {
		case res.StatusCode == http.StatusOK:
			pending = nil
		case res.StatusCode == http.StatusGone:
			liblog.Entry(liblvl.InfoLevel, "uplink: remote closed").FieldAdd("id", t.Id).Log()
			t.Connected.Store(false)
			_ = t.Local.Close()
			return nil
		case res.StatusCode == http.StatusNotFound:
			t.Connected.Store(false)
			return ErrorUnknownId.Error()
		case res.StatusCode >= 500:
			return ErrorBridgeStatus.Error(fmt.Errorf("%s: %s", res.Status, string(res.Body)))
		default:
			liblog.Entry(liblvl.ErrorLevel, "uplink: unexpected status").
				FieldAdd("id", t.Id).FieldAdd("status", res.Status).Log()
		}
	}
}
