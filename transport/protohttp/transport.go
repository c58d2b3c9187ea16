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

// Package protohttp is the binary-proto HTTP/1.1 transport. Each call is a
// POST of the serialized request to
//
//	https://{address}/$rpc/{service}/{method}
//
// with content-type application/x-protobuf; a 2xx response body is the
// serialized response message, anything else maps onto a coded error.
package protohttp

import (
	"context"
	"net/http"
	"strings"

	"github.com/opentracing/opentracing-go"

	"github.com/landrito/gapic-generator-go/api/transport"
	"github.com/landrito/gapic-generator-go/internal/syncutil"
	"github.com/landrito/gapic-generator-go/lro"
)

// TransportName is the name this package registers under with
// transport.RegisterTransport.
const TransportName = "protohttp"

func init() {
	transport.RegisterTransport(TransportName, func(ctx context.Context, cfg transport.DialConfig, creds transport.Credentials) (transport.Channel, error) {
		return New(ctx, cfg.Address, cfg.Service,
			WithCredentials(creds),
			WithScopes(cfg.Scopes...),
		)
	})
}

// Transport is a channel bound to one service at one address. It holds an
// authenticated session for its lifetime and lazily builds the operations
// sub-client next to its service on first use.
type Transport struct {
	baseURL string
	service string
	scopes  []string
	client  *http.Client
	tracer  opentracing.Tracer

	opsOnce   syncutil.OnceWithError
	opsClient *lro.Client
}

var _ transport.Channel = (*Transport)(nil)
var _ lro.Provider = (*Transport)(nil)

// Option configures a Transport under construction.
type Option struct{ apply func(*options) }

type options struct {
	credentials transport.Credentials
	scopes      []string
	client      *http.Client
	tracer      opentracing.Tracer
}

// WithCredentials sets the credentials the transport opens its session
// with. Defaults to environment-derived credentials.
func WithCredentials(creds transport.Credentials) Option {
	return Option{func(o *options) {
		if creds != nil {
			o.credentials = creds
		}
	}}
}

// WithScopes sets the OAuth scopes the session is bound to, normally the
// scopes the service definition declares.
func WithScopes(scopes ...string) Option {
	return Option{func(o *options) {
		o.scopes = append(o.scopes, scopes...)
	}}
}

// WithHTTPClient injects a ready-made HTTP client instead of opening a
// session through credentials.
func WithHTTPClient(client *http.Client) Option {
	return Option{func(o *options) {
		o.client = client
	}}
}

// WithTracer traces every call with the given tracer instead of the global
// one.
func WithTracer(tracer opentracing.Tracer) Option {
	return Option{func(o *options) {
		o.tracer = tracer
	}}
}

// New builds a transport for the named service at the given address. An
// address without a scheme is reached over https. The authenticated session
// is opened once, here, and reused for every call.
func New(ctx context.Context, address, service string, opts ...Option) (*Transport, error) {
	o := options{credentials: transport.DetectCredentials()}
	for _, opt := range opts {
		opt.apply(&o)
	}

	client := o.client
	if client == nil {
		var err error
		client, err = o.credentials.NewSession(ctx, o.scopes...)
		if err != nil {
			return nil, err
		}
	}

	tracer := o.tracer
	if tracer == nil {
		tracer = opentracing.GlobalTracer()
	}

	return &Transport{
		baseURL: baseURL(address),
		service: service,
		scopes:  o.scopes,
		client:  client,
		tracer:  tracer,
	}, nil
}

// baseURL normalizes an address into a base URL with a scheme and no
// trailing slash.
func baseURL(address string) string {
	if !strings.Contains(address, "://") {
		address = "https://" + address
	}
	return strings.TrimSuffix(address, "/")
}

// OperationsClient returns the operations sub-client next to this
// transport's service. The sub-client shares this transport's address,
// session, and tracer, and is built at most once; every call, including
// concurrent first calls, returns the identical instance.
func (t *Transport) OperationsClient(ctx context.Context) (*lro.Client, error) {
	err := t.opsOnce.Do(func() error {
		sibling := &Transport{
			baseURL: t.baseURL,
			service: lro.ServiceName,
			scopes:  t.scopes,
			client:  t.client,
			tracer:  t.tracer,
		}
		t.opsClient = lro.NewClient(sibling)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t.opsClient, nil
}
