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

package protohttp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/multierr"
	"google.golang.org/protobuf/proto"

	"github.com/landrito/gapic-generator-go/api/transport"
	"github.com/landrito/gapic-generator-go/gapicerrors"
)

const contentType = "application/x-protobuf"

// Invoke serializes req, POSTs it to {baseURL}/$rpc/{service}/{method}, and
// deserializes a 2xx response body into resp. Metadata entries become HTTP
// headers in order, duplicates preserved. A non-2xx status maps onto a coded
// error carrying the response body as the message.
func (t *Transport) Invoke(ctx context.Context, method string, req, resp proto.Message, md transport.MD) error {
	body, err := proto.Marshal(req)
	if err != nil {
		return gapicerrors.WrapError(gapicerrors.CodeInvalidArgument, err)
	}

	reqURL := t.baseURL + "/$rpc/" + t.service + "/" + method
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return gapicerrors.WrapError(gapicerrors.CodeInternal, err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	for _, pair := range md {
		httpReq.Header.Add(pair.Key, pair.Value)
	}

	span := t.startSpan(ctx, method, httpReq)
	defer span.Finish()

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		// Workaround borrowed from ctxhttp until
		// https://github.com/golang/go/issues/17711 is resolved.
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}

		ext.Error.Set(span, true)
		if err == context.DeadlineExceeded {
			return gapicerrors.WrapError(gapicerrors.CodeDeadlineExceeded, err)
		}
		if err == context.Canceled {
			return gapicerrors.WrapError(gapicerrors.CodeCancelled, err)
		}
		return gapicerrors.WrapError(gapicerrors.CodeUnavailable, err)
	}

	ext.HTTPStatusCode.Set(span, uint16(httpResp.StatusCode))

	contents, err := readBody(httpResp)
	if err != nil {
		ext.Error.Set(span, true)
		return gapicerrors.WrapError(gapicerrors.CodeInternal, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		ext.Error.Set(span, true)
		message := strings.TrimSuffix(string(contents), "\n")
		return gapicerrors.Newf(gapicerrors.CodeFromHTTPStatus(httpResp.StatusCode), "%s", message)
	}

	if err := proto.Unmarshal(contents, resp); err != nil {
		ext.Error.Set(span, true)
		return gapicerrors.WrapError(gapicerrors.CodeInternal, err)
	}
	return nil
}

func (t *Transport) startSpan(ctx context.Context, method string, req *http.Request) opentracing.Span {
	var parent opentracing.SpanContext // ok to be nil
	if parentSpan := opentracing.SpanFromContext(ctx); parentSpan != nil {
		parent = parentSpan.Context()
	}
	span := t.tracer.StartSpan(
		t.service+"/"+method,
		opentracing.StartTime(time.Now()),
		opentracing.ChildOf(parent),
	)
	ext.PeerService.Set(span, t.service)
	ext.SpanKindRPCClient.Set(span)
	ext.HTTPUrl.Set(span, req.URL.String())

	t.tracer.Inject(
		span.Context(),
		opentracing.HTTPHeaders,
		opentracing.HTTPHeadersCarrier(req.Header),
	)
	return span
}

func readBody(resp *http.Response) (contents []byte, err error) {
	defer func() {
		err = multierr.Append(err, resp.Body.Close())
	}()
	return io.ReadAll(resp.Body)
}
