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

// Package errors provides structured error handling with numeric codes and
// parent chaining, trimmed from golib/errors down to what a two-binary CLI
// tool needs: no trace capture, no error pool, no gin/compat glue.
package errors

import (
	"errors"
	"strings"
)

type ers struct {
	c uint16
	e string
	p []Error
}

// Error extends the standard error with a numeric code and parent chaining.
type Error interface {
	error

	IsCode(code CodeError) bool
	HasCode(code CodeError) bool
	Code() uint16

	Add(parent ...error)
	HasParent() bool
	GetParent() []error

	Is(err error) bool
	Unwrap() []error
}

func (e *ers) Error() string {
	if e == nil {
		return ""
	}

	msg := e.e
	for _, p := range e.p {
		if p == nil {
			continue
		}
		if s := p.Error(); s != "" {
			msg += ": " + s
		}
	}

	return msg
}

func (e *ers) IsCode(code CodeError) bool {
	return e.c == code.Uint16()
}

func (e *ers) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}
	for _, p := range e.p {
		if p.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *ers) Code() uint16 {
	return e.c
}

func (e *ers) Add(parent ...error) {
	for _, v := range parent {
		if v == nil {
			continue
		}
		if er, ok := v.(Error); ok {
			e.p = append(e.p, er)
		} else {
			e.p = append(e.p, &ers{e: v.Error()})
		}
	}
}

func (e *ers) HasParent() bool {
	return len(e.p) > 0
}

func (e *ers) GetParent() []error {
	res := make([]error, 0, len(e.p))
	for _, p := range e.p {
		res = append(res, p)
	}
	return res
}

func (e *ers) Is(err error) bool {
	if err == nil {
		return false
	}
	if er, ok := err.(*ers); ok {
		return strings.EqualFold(e.Error(), er.Error())
	}
	return strings.EqualFold(e.Error(), err.Error())
}

func (e *ers) Unwrap() []error {
	return e.GetParent()
}

// New builds an Error with the given code, message, and optional parents.
func New(code uint16, message string, parent ...error) Error {
	e := &ers{c: code, e: message}
	e.Add(parent...)
	return e
}

// IfError returns nil unless at least one of the given errors is non-nil.
func IfError(code uint16, message string, parent ...error) Error {
	e := &ers{c: code, e: message}
	e.Add(parent...)
	if !e.HasParent() {
		return nil
	}
	return e
}

// Make wraps a plain error as an Error, or returns it unchanged if it
// already implements Error.
func Make(e error) Error {
	if e == nil {
		return nil
	}
	var er Error
	if errors.As(e, &er) {
		return er
	}
	return &ers{e: e.Error()}
}

// Is reports whether e is (or wraps) an Error.
func Is(e error) bool {
	var err Error
	return errors.As(e, &err)
}

// HasCode reports whether e is an Error carrying the given code, directly
// or in its parent chain.
func HasCode(e error, code CodeError) bool {
	var err Error
	if !errors.As(e, &err) {
		return false
	}
	return err.HasCode(code)
}
