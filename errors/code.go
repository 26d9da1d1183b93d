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

package errors

import (
	"sort"
	"strconv"
)

// idMsgFct stores the mapping between a package's minimum error code and its message function.
var idMsgFct = make(map[CodeError]Message)

// Message generates the human string for a given CodeError.
type Message func(code CodeError) (message string)

// CodeError is a numeric error classification, similar in spirit to an HTTP status code.
type CodeError uint16

const (
	// UnknownError is used as a fallback when no specific code applies.
	UnknownError CodeError = 0

	// UnknownMessage is the default message for UnknownError.
	UnknownMessage = "unknown error"

	// NullMessage represents an empty error message.
	NullMessage = ""
)

func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

func (c CodeError) Int() int {
	return int(c)
}

func (c CodeError) String() string {
	return strconv.Itoa(c.Int())
}

// Message returns the registered message for the code's package range, or UnknownMessage.
func (c CodeError) Message() string {
	if c == UnknownError {
		return UnknownMessage
	}

	if f, ok := idMsgFct[findCodeErrorInMapMessage(c)]; ok {
		if m := f(c); m != "" {
			return m
		}
	}

	return UnknownMessage
}

// Error builds a new Error from this code, chaining any parent errors.
func (c CodeError) Error(parent ...error) Error {
	return New(c.Uint16(), c.Message(), parent...)
}

// ErrorParent is sugar for Error(p) — kept for call sites ported from the
// older generation of this package that called ErrorParent directly.
func (c CodeError) ErrorParent(p error) Error {
	return c.Error(p)
}

// IfError returns nil unless at least one of the given errors is non-nil.
func (c CodeError) IfError(e ...error) Error {
	return IfError(c.Uint16(), c.Message(), e...)
}

// RegisterIdFctMessage registers the message function covering every code
// starting at minCode, up to (but not including) the next registered range.
func RegisterIdFctMessage(minCode CodeError, fct Message) {
	idMsgFct[minCode] = fct
	orderMapMessage()
}

// ExistInMapMessage reports whether a message is already registered for code.
func ExistInMapMessage(code CodeError) bool {
	if f, ok := idMsgFct[findCodeErrorInMapMessage(code)]; ok {
		return f(code) != NullMessage
	}
	return false
}

func getMapMessageKey() []CodeError {
	keys := make([]int, 0, len(idMsgFct))
	for k := range idMsgFct {
		keys = append(keys, k.Int())
	}
	sort.Ints(keys)

	res := make([]CodeError, 0, len(keys))
	for _, k := range keys {
		res = append(res, CodeError(k))
	}
	return res
}

func orderMapMessage() {
	res := make(map[CodeError]Message, len(idMsgFct))
	for _, k := range getMapMessageKey() {
		res[k] = idMsgFct[k]
	}
	idMsgFct = res
}

// findCodeErrorInMapMessage finds the highest registered range key <= code.
func findCodeErrorInMapMessage(code CodeError) CodeError {
	var res CodeError
	for _, k := range getMapMessageKey() {
		if k <= code && k > res {
			res = k
		}
	}
	return res
}
