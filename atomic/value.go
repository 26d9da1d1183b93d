/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package atomic provides a generic atomic.Value box, trimmed from
// golib/atomic down to the single pattern the bridge needs: a
// concurrency-safe holder for a typed value (the tunnel's Connected flag)
// without golib's json/cbor marshaling glue.
package atomic

import "sync/atomic"

// Value is a concurrency-safe box holding a T, backed by sync/atomic.Value.
type Value[T any] struct {
	v atomic.Value
}

// NewValue returns a Value initialized to init.
func NewValue[T any](init T) *Value[T] {
	v := &Value[T]{}
	v.Store(init)
	return v
}

func (v *Value[T]) Store(val T) {
	v.v.Store(box[T]{val: val})
}

func (v *Value[T]) Load() T {
	var zero T
	b, ok := v.v.Load().(box[T])
	if !ok {
		return zero
	}
	return b.val
}

// CompareAndSwap reports whether old matched the current value and, if so,
// swaps in new. The boxed values are compared with ==, so T must be
// comparable; a non-comparable T panics.
func (v *Value[T]) CompareAndSwap(old, new T) bool {
	return v.v.CompareAndSwap(box[T]{val: old}, box[T]{val: new})
}

type box[T any] struct {
	val T
}
