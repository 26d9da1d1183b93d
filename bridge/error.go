package bridge

import liberr "github.com/Pneumaticat/bridge/errors"

const (
	ErrorDial liberr.CodeError = iota + liberr.MinPkgBridgeCommon
	ErrorUnknownId
	ErrorConflict
	ErrorDestClosed
	ErrorLocalClosed
	ErrorBridgeStatus
	ErrorUsage
)

func init() {
	liberr.RegisterIdFctMessage(liberr.MinPkgBridgeCommon, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorDial:
		return "destination dial failed"
	case ErrorUnknownId:
		return "connection id is not known to the bridge"
	case ErrorConflict:
		return "connection id is already open"
	case ErrorDestClosed:
		return "destination connection is closed"
	case ErrorLocalClosed:
		return "local endpoint is closed"
	case ErrorBridgeStatus:
		return "bridge returned an unexpected status"
	case ErrorUsage:
		return "invalid command line usage"
	}
	return liberr.UnknownMessage
}
