/*
 * MIT License
 *
 * Copyright (c) 2021 Nicolas JUHEL
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

// Package entry implements the fluent log-entry builder used by logger.Logger.
package entry

import (
	"github.com/sirupsen/logrus"

	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

// Entry is a single log event under construction. Fields are accumulated
// with FieldAdd/ErrorAdd and the event is only emitted on Log.
type Entry struct {
	out   *logrus.Logger
	lvl   liblvl.Level
	msg   string
	data  logrus.Fields
	fatal bool
}

// New creates an Entry bound to out at the given level.
func New(out *logrus.Logger, lvl liblvl.Level, message string) *Entry {
	return &Entry{
		out:  out,
		lvl:  lvl,
		msg:  message,
		data: make(logrus.Fields),
	}
}

// FieldAdd attaches a key/value pair to the entry.
func (e *Entry) FieldAdd(key string, val interface{}) *Entry {
	if e == nil {
		return e
	}
	e.data[key] = val
	return e
}

// ErrorAdd attaches an error field. If critical is true and err is non-nil,
// the entry's level is raised to at least ErrorLevel.
func (e *Entry) ErrorAdd(critical bool, err error) *Entry {
	if e == nil || err == nil {
		return e
	}
	e.data["error"] = err.Error()
	if critical && e.lvl > liblvl.ErrorLevel {
		e.lvl = liblvl.ErrorLevel
	}
	return e
}

// Log emits the entry through the bound logrus.Logger.
func (e *Entry) Log() {
	if e == nil || e.out == nil {
		return
	}

	le := e.out.WithFields(e.data)

	switch e.lvl {
	case liblvl.PanicLevel:
		le.Panic(e.msg)
	case liblvl.FatalLevel:
		le.Fatal(e.msg)
	case liblvl.ErrorLevel:
		le.Error(e.msg)
	case liblvl.WarnLevel:
		le.Warn(e.msg)
	case liblvl.DebugLevel:
		le.Debug(e.msg)
	default:
		le.Info(e.msg)
	}
}
