package bridge

import libdur "github.com/Pneumaticat/bridge/duration"

// IdleTimeout bounds how long an idle tunnel's GET may sit on the server
// before it is answered 204. The client's GET read timeout is set to
// IdleTimeout+IdleMargin so the server's answer always lands first.
var IdleTimeout = libdur.Seconds(60)

// IdleMargin is the slack subtracted from IdleTimeout on the server side
// and added to it on the client side.
var IdleMargin = libdur.Seconds(3)
