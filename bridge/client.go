package bridge

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	libatomic "github.com/Pneumaticat/bridge/atomic"
	libdur "github.com/Pneumaticat/bridge/duration"
	liberr "github.com/Pneumaticat/bridge/errors"
	"github.com/Pneumaticat/bridge/httpcli"
)

// OpenClientTimeout bounds the opening POST; it is not a long-poll, so it
// stays short regardless of IdleTimeout.
var OpenClientTimeout = libdur.Seconds(10)

// Tunnel is the client-side handle to one tunneled connection: its id, the
// bridge URL it talks to, the local endpoint it relays, and the shared
// Connected flag the Uplink and Downlink pumps both observe.
//
// The spec suggests keying shutdown off the local endpoint's closed state
// rather than a shared flag; this implementation keeps Connected as well
// because the Downlink Pump has no portable way to ask an arbitrary
// io.ReadCloser "are you already closed" without risking a second Close
// call racing the first. Connected is the first thing consulted; the
// local endpoint's own EOF/closed-file errors are the fallback.
type Tunnel struct {
	Id      string
	BaseURL string
	Local   *LocalEndpoint

	Connected *libatomic.Value[bool]

	UplinkCli   *http.Client
	DownlinkCli *http.Client
}

// Open issues the opening POST against baseURL ("<scheme>://<host>/<mount>")
// with body "remoteHost:remotePort". On 201 it returns a ready-to-pump
// Tunnel; any other status is returned as a liberr.Error carrying the
// bridge's status line and body, and the caller should exit nonzero
// without launching the pumps.
func Open(baseURL, remoteHost, remotePort string, local *LocalEndpoint) (*Tunnel, liberr.Error) {
	id, err := NewConnId()
	if err != nil {
		return nil, ErrorBridgeStatus.ErrorParent(err)
	}

	url := strings.TrimRight(baseURL, "/") + "/" + id
	dest := fmt.Sprintf("%s:%s", remoteHost, remotePort)

	cli := httpcli.NewClient(OpenClientTimeout.Time())
	res, lerr := httpcli.Do(context.Background(), cli, http.MethodPost, url, []byte(dest), "text/plain")
	if lerr != nil {
		return nil, lerr
	}

	if res.StatusCode != http.StatusCreated {
		return nil, ErrorBridgeStatus.Error(fmt.Errorf("%s: %s", res.Status, string(res.Body)))
	}

	t := &Tunnel{
		Id:          id,
		BaseURL:     url,
		Local:       local,
		Connected:   libatomic.NewValue(true),
		UplinkCli:   httpcli.NewClient((IdleTimeout + IdleMargin).Time()),
		DownlinkCli: httpcli.NewClient((IdleTimeout + IdleMargin).Time()),
	}
	return t, nil
}

// Close issues the closing DELETE, ignoring its outcome: DELETE is
// idempotent and the client is shutting the tunnel down regardless of
// whether the bridge still thinks it's open.
func (t *Tunnel) Close() {
	cli := httpcli.NewClient(OpenClientTimeout.Time())
	_, _ = httpcli.Do(context.Background(), cli, http.MethodDelete, t.BaseURL, nil, "")
}
