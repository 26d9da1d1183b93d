// Command bridge-server runs the HTTP endpoint that opens outbound TCP
// connections on behalf of bridge clients.
package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Pneumaticat/bridge/bridge"
	"github.com/Pneumaticat/bridge/config"
	"github.com/Pneumaticat/bridge/httpserver"
	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

const usage = `usage: bridge-server <localPort> <mountPath>

  localPort   TCP port the bridge server listens on
  mountPath   URL path prefix tunnels are mounted under, e.g. /br
`

func main() {
	// Arity is checked by hand, not via a flag/cobra framework: a wrong
	// number of arguments prints usage to stderr and exits 0, a documented
	// quirk carried over from this tool's historical behavior rather than
	// fixed to the more conventional nonzero exit.
	if len(os.Args) != 3 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(0)
	}

	cfg := config.ServerConfig{Port: os.Args[1], Mount: os.Args[2]}
	if err := config.Validate(&cfg); err != nil {
		liblog.Entry(liblvl.FatalLevel, "invalid configuration").ErrorAdd(true, err).Log()
		os.Exit(1)
	}
	port := cfg.Port
	mount := cfg.Mount

	table := bridge.NewTable()
	metrics := bridge.NewMetrics(prometheus.DefaultRegisterer)

	router := bridge.NewRouter(table, mount, bridge.WithMetrics(metrics))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := httpserver.NewServer("bridge-server", ":"+port, router)
	if err := srv.Listen(); err != nil {
		liblog.Entry(liblvl.FatalLevel, "failed to start listener").ErrorAdd(true, err).Log()
		os.Exit(1)
	}

	liblog.Entry(liblvl.InfoLevel, "bridge server listening").
		FieldAdd("port", port).FieldAdd("mount", mount).Log()

	srv.WaitNotify()
	table.CloseAll()
}
