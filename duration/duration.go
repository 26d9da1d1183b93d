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

// Package duration wraps time.Duration with the couple of constructors the
// bridge's typed timeout constants (IDLE_TIMEOUT_SECONDS and its margins)
// are expressed with, trimmed from golib/duration's days-notation parser,
// big/viper/cbor encoders (none of which apply to a handful of constants).
package duration

import "time"

// Duration is a time.Duration with second/minute constructors matching the
// spec's constants (IDLE_TIMEOUT_SECONDS = Seconds(60), etc).
type Duration time.Duration

func Seconds(i int64) Duration {
	return Duration(time.Duration(i) * time.Second)
}

func Minutes(i int64) Duration {
	return Duration(time.Duration(i) * time.Minute)
}

// Time returns d as a stdlib time.Duration.
func (d Duration) Time() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return d.Time().String()
}
