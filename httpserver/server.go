/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package httpserver wraps *http.Server with the lifecycle golib/httpserver
// gives every daemon in the teacher's stack: Listen/WaitNotify/Shutdown,
// trimmed of the pool/TLS/HTTP2-tuning machinery this tool doesn't need
// (the bridge server terminates plain HTTP/1.1 behind a corporate proxy).
package httpserver

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	liberr "github.com/Pneumaticat/bridge/errors"
	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

const timeoutShutdown = 10 * time.Second

// Server manages one HTTP listener's start/stop lifecycle.
type Server interface {
	Listen() liberr.Error
	WaitNotify()
	Shutdown()
	IsRunning() bool
}

type server struct {
	name    string
	bind    string
	handler http.Handler
	srv     *http.Server
	running atomic.Bool
	cnl     context.CancelFunc
}

// NewServer builds a Server bound to addr, serving handler.
func NewServer(name, addr string, handler http.Handler) Server {
	return &server{
		name:    name,
		bind:    addr,
		handler: handler,
	}
}

func (s *server) IsRunning() bool {
	return s.running.Load()
}

// Listen starts the HTTP listener in a background goroutine and returns
// once the goroutine has been launched (not once it is actually accepting —
// ListenAndServe's own error path reports bind failures asynchronously,
// matching the teacher's pattern).
func (s *server) Listen() liberr.Error {
	if s.IsRunning() {
		s.Shutdown()
	}

	ctx, cnl := context.WithCancel(context.Background())
	s.cnl = cnl

	s.srv = &http.Server{
		Addr:     s.bind,
		Handler:  s.handler,
		ErrorLog: liblog.GetLogger(liblvl.ErrorLevel, log.LstdFlags, "[bridge http server] "),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		defer s.running.Store(false)

		liblog.Entry(liblvl.InfoLevel, "server starting").
			FieldAdd("bind", s.bind).Log()

		s.running.Store(true)
		err := s.srv.ListenAndServe()

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			liblog.Entry(liblvl.ErrorLevel, "server listen error").
				ErrorAdd(true, err).Log()
		}
	}()

	return nil
}

// WaitNotify blocks until INT/TERM/HUP is received, then shuts down.
func (s *server) WaitNotify() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	<-quit
	s.Shutdown()
}

func (s *server) Shutdown() {
	if s.srv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeoutShutdown)
	defer cancel()

	liblog.Entry(liblvl.InfoLevel, "server shutting down").FieldAdd("bind", s.bind).Log()

	if s.cnl != nil {
		s.cnl()
	}

	if err := s.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		liblog.Entry(liblvl.ErrorLevel, "server shutdown error").ErrorAdd(true, err).Log()
	}

	s.running.Store(false)
}
