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

// Package httpcli provides the HTTP client used by the bridge client's
// pumps, trimmed from golib/httpcli down to a single concern: a
// *http.Client with a per-pump timeout, proxy-from-environment support,
// and a couple of quick transport-level retries before handing control
// back to the caller's own retry loop.
package httpcli

import (
	"context"
	"net/http"
	"time"

	retryablehttp "github.com/hashicorp/go-retryablehttp"

	liblog "github.com/Pneumaticat/bridge/logger"
	liblvl "github.com/Pneumaticat/bridge/logger/level"
)

// NewClient returns an *http.Client configured with the given per-attempt
// request timeout (ReadTimeout equivalent for long-poll GETs) and honoring
// http_proxy/https_proxy/no_proxy from the environment, including embedded
// proxy credentials (http.ProxyFromEnvironment does this natively).
//
// The returned client retries a request up to 2 extra times purely on
// transport-level errors (dial/read/write failures) — never on a status
// code, which the bridge protocol treats as meaningful application state
// (404/410/5xx) and must observe exactly once per call to Do.
func NewClient(timeout time.Duration) *http.Client {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = 2
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 1 * time.Second
	rc.CheckRetry = transportOnlyRetry
	rc.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		},
	}

	return rc.StandardClient()
}

// transportOnlyRetry retries only on network/transport errors, passing
// every HTTP status code straight through to the caller unmolested.
func transportOnlyRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	liblog.Entry(liblvl.DebugLevel, "retrying after transport error").
		ErrorAdd(false, err).Log()
	return true, nil
}
