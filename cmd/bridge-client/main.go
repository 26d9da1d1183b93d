// Command bridge-client relays a local TCP connection, or the process's
// own stdin/stdout, to a remote TCP endpoint via a bridge server.
package main

import (
	"fmt"
	"os"

	"github.com/Pneumaticat/bridge/bridge"
	"github.com/Pneumaticat/bridge/config"
	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

const usage = `usage: bridge-client <localPort|STDIN|-> <bridgeURL> <remoteHost> <remotePort>

  localPort    TCP port to listen on for the one local connection to relay,
               or STDIN (or -) to relay the process's own stdin/stdout
  bridgeURL    URL of the bridge server's mount path, e.g. http://host:8080/br
  remoteHost   destination host the bridge should dial
  remotePort   destination port the bridge should dial
`

func main() {
	if len(os.Args) != 5 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(0)
	}

	cfg := config.ClientConfig{
		Local:      os.Args[1],
		BridgeURL:  os.Args[2],
		RemoteHost: os.Args[3],
		RemotePort: os.Args[4],
	}
	if err := config.Validate(&cfg); err != nil {
		liblog.Entry(liblvl.FatalLevel, "invalid configuration").ErrorAdd(true, err).Log()
		os.Exit(1)
	}

	localArg := cfg.Local
	bridgeURL := cfg.BridgeURL
	remoteHost := cfg.RemoteHost
	remotePort := cfg.RemotePort

	local, err := newLocalEndpoint(localArg)
	if err != nil {
		liblog.Entry(liblvl.ErrorLevel, "failed to set up local endpoint").ErrorAdd(true, err).Log()
		os.Exit(1)
	}

	tunnel, lerr := bridge.Open(bridgeURL, remoteHost, remotePort, local)
	if lerr != nil {
		fmt.Fprintf(os.Stderr, "open failed: %s\n", lerr.Error())
		os.Exit(1)
	}

	bridge.WatchSignals(local)
	go bridge.RunDownlink(tunnel)

	if runErr := bridge.RunUplink(tunnel); runErr != nil {
		fmt.Fprintf(os.Stderr, "fatal: %s\n", runErr.Error())
		os.Exit(1)
	}

	os.Exit(0)
}

func newLocalEndpoint(arg string) (*bridge.LocalEndpoint, error) {
	if arg == "STDIN" || arg == "-" {
		return bridge.Stdio(), nil
	}
	return bridge.ListenOnce(arg)
}
