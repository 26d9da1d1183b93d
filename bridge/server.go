// Package bridge implements the tunnel protocol shared by the bridge
// server and bridge client: the Connection Table and HTTP endpoint on the
// server side, the pumps and local endpoint on the client side.
package bridge

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

// ServerOption configures a Handler.
type ServerOption func(*Handler)

// WithMetrics attaches a Metrics instance; without it, metrics calls are
// skipped.
func WithMetrics(m *Metrics) ServerOption {
	return func(h *Handler) { h.metrics = m }
}

// Handler wires the four tunnel verbs onto a gin.Engine at mount path
// "<mount>/:id".
type Handler struct {
	table   *Table
	mount   string
	metrics *Metrics
}

// NewHandler builds a Handler serving the tunnel protocol at mount,
// backed by table.
func NewHandler(table *Table, mount string, opts ...ServerOption) *Handler {
	h := &Handler{table: table, mount: mount}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Register attaches the four verbs to r.
func (h *Handler) Register(r gin.IRouter) {
	path := h.mount + "/:id"
	r.POST(path, h.handleOpen)
	r.PUT(path, h.handleWrite)
	r.GET(path, h.handleRead)
	r.DELETE(path, h.handleClose)
}

// NewRouter builds a standalone gin.Engine with the four verbs registered,
// for callers that don't need to compose the bridge's routes into a
// larger application router.
func NewRouter(table *Table, mount string, opts ...ServerOption) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	NewHandler(table, mount, opts...).Register(r)
	return r
}

// handleOpen implements POST <mount>/<id>: body is "host:port", dials it,
// and inserts the new connection into the table.
func (h *Handler) handleOpen(c *gin.Context) {
	id := c.Param("id")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "error reading request body: %s", err)
		return
	}
	dest := string(body)

	_, lerr := h.table.Open(id, dest)
	if lerr != nil {
		if h.metrics != nil {
			h.metrics.TunnelsRejected.Inc()
		}
		if lerr.IsCode(ErrorConflict) {
			c.String(http.StatusConflict, "connection id %q already open", id)
			return
		}
		liblog.Entry(liblvl.WarnLevel, "dial failed").
			FieldAdd("id", id).FieldAdd("dest", dest).ErrorAdd(false, lerr).Log()
		c.String(http.StatusNotAcceptable, "%s", lerr.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.TunnelsTotal.Inc()
		h.metrics.TunnelsOpen.Inc()
	}
	c.Status(http.StatusCreated)
}

// handleWrite implements PUT <mount>/<id>: body is raw bytes, written to
// the destination socket.
func (h *Handler) handleWrite(c *gin.Context) {
	id := c.Param("id")

	tc, ok := h.table.Get(id)
	if !ok {
		c.String(http.StatusNotFound, "unknown connection id %q", id)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "error reading request body: %s", err)
		return
	}

	if err := tc.Write(body); err != nil {
		h.closeAndRemove(id)
		c.String(http.StatusGone, "destination closed: %s", err)
		return
	}

	if h.metrics != nil {
		h.metrics.BytesUplink.Add(float64(len(body)))
	}
	c.Status(http.StatusOK)
}

// handleRead implements GET <mount>/<id>: long-polls the destination
// socket for up to IdleTimeout-IdleMargin seconds.
func (h *Handler) handleRead(c *gin.Context) {
	id := c.Param("id")

	tc, ok := h.table.Get(id)
	if !ok {
		c.String(http.StatusNotFound, "unknown connection id %q", id)
		return
	}

	if h.metrics != nil {
		h.metrics.GetLongPolls.Inc()
	}

	window := (IdleTimeout - IdleMargin).Time()
	buf, idle, err := tc.LongPollRead(window)
	if err != nil {
		h.closeAndRemove(id)
		c.String(http.StatusGone, "destination closed: %s", err)
		return
	}
	if idle {
		if h.metrics != nil {
			h.metrics.GetIdleResponses.Inc()
		}
		c.Status(http.StatusNoContent)
		return
	}
	if len(buf) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	if h.metrics != nil {
		h.metrics.BytesDownlink.Add(float64(len(buf)))
	}
	c.Data(http.StatusOK, "application/octet-stream", buf)
}

// handleClose implements DELETE <mount>/<id>: idempotent close.
func (h *Handler) handleClose(c *gin.Context) {
	id := c.Param("id")
	h.closeAndRemove(id)
	c.Status(http.StatusOK)
}

func (h *Handler) closeAndRemove(id string) {
	if _, ok := h.table.Get(id); ok {
		h.table.Remove(id)
		if h.metrics != nil {
			h.metrics.TunnelsOpen.Dec()
		}
	}
}
