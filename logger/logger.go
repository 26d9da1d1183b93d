/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
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

// Package logger provides the default structured logger used across both
// bridge processes, trimmed from golib/logger down to a single logrus-backed
// sink (no syslog/hclog/gorm hooks — this tool has no such downstream).
package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	libent "github.com/Pneumaticat/bridge/logger/entry"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

var (
	defMu  sync.Mutex
	defLog = logrus.New()
)

func init() {
	defLog.SetOutput(os.Stderr)
	defLog.SetLevel(logrus.InfoLevel)
}

// SetLevel changes the minimal level of the default logger.
func SetLevel(lvl liblvl.Level) {
	defMu.Lock()
	defer defMu.Unlock()
	defLog.SetLevel(lvl.Logrus())
}

// SetOutput redirects the default logger's sink.
func SetOutput(w io.Writer) {
	defMu.Lock()
	defer defMu.Unlock()
	defLog.SetOutput(w)
}

// GetDefault returns the process-wide logrus.Logger.
func GetDefault() *logrus.Logger {
	return defLog
}

// Entry starts a new fluent log entry at the given level.
func Entry(lvl liblvl.Level, message string) *libent.Entry {
	return libent.New(defLog, lvl, message)
}

// GetLogger returns a standard log.Logger that writes through the default
// logger at the given level, for handing to *http.Server.ErrorLog.
func GetLogger(lvl liblvl.Level, flags int, prefix string) *log.Logger {
	return log.New(defLog.WriterLevel(lvl.Logrus()), prefix, flags)
}

func Debug(message string) { Entry(liblvl.DebugLevel, message).Log() }
func Info(message string)  { Entry(liblvl.InfoLevel, message).Log() }
func Warn(message string)  { Entry(liblvl.WarnLevel, message).Log() }
func Error(message string) { Entry(liblvl.ErrorLevel, message).Log() }
