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

package httpcli

import (
	"bytes"
	"context"
	"io"
	"net/http"

	liberr "github.com/Pneumaticat/bridge/errors"
)

// Result is the outcome of a tunnel verb call: status code and raw body.
type Result struct {
	StatusCode int
	Status     string
	Body       []byte
}

// Do issues method against url carrying body (may be nil), using cli.
// It always reads and closes the response body so the underlying connection
// is returned to cli's pool for reuse by the next long-poll GET.
func Do(ctx context.Context, cli *http.Client, method, url string, body []byte, contentType string) (*Result, liberr.Error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, ErrNewRequest.ErrorParent(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := cli.Do(req)
	if err != nil {
		return nil, ErrDo.ErrorParent(err)
	}
	defer func() { _ = res.Body.Close() }()

	buf, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, ErrReadBody.ErrorParent(err)
	}

	return &Result{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Body:       buf,
	}, nil
}
