// Copyright (c) 2026 The gapic-generator-go Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package call wraps every generated client method with the per-call
// machinery clients share: client identification metadata, caller metadata,
// routing headers extracted from the request, deadlines, and retries.
package call

import (
	"context"
	"fmt"
	"net/url"
	"runtime"
	"strings"

	"google.golang.org/protobuf/proto"

	gapic "github.com/landrito/gapic-generator-go"
	"github.com/landrito/gapic-generator-go/api/transport"
	"github.com/landrito/gapic-generator-go/internal/fieldpath"
	"github.com/landrito/gapic-generator-go/retry"
)

// _apiClientHeader identifies the client library on every outgoing call.
var _apiClientHeader = fmt.Sprintf("gl-go/%s gapic/%s",
	strings.TrimPrefix(runtime.Version(), "go"), gapic.Version)

// Invoke assembles the outgoing metadata for a single call and runs fn under
// the call's deadline and retry policy. fn receives the final metadata and
// performs the transport dispatch; it runs once per attempt.
//
// Metadata order is fixed: the client identification entry first, then
// caller entries in option order, then routing headers in declared option
// order. Routing headers whose request field is unset are skipped.
func Invoke(ctx context.Context, req proto.Message, fn func(context.Context, transport.MD) error, opts ...Option) error {
	var info callInfo
	for _, opt := range opts {
		opt.apply(&info)
	}

	md := transport.Pairs("x-api-client", _apiClientHeader)
	for _, pair := range info.md {
		md = md.Append(pair.k, pair.v)
	}
	for _, fh := range info.fieldHeaders {
		value, ok := fieldpath.Extract(req, fh.field)
		if !ok {
			continue
		}
		md = md.Append(fh.header, url.QueryEscape(fh.field)+"="+url.QueryEscape(value))
	}

	if info.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, info.timeout)
		defer cancel()
	}

	return retry.Call(ctx, info.retryPolicy, func(ctx context.Context) error {
		return fn(ctx, md.Copy())
	})
}
