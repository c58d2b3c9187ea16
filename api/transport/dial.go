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

package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/landrito/gapic-generator-go/gapicerrors"
)

// DefaultTransportName is the transport implementation Dial resolves when
// the caller names none.
const DefaultTransportName = "protohttp"

// DialConfig identifies the remote service a channel is bound to.
type DialConfig struct {
	// Address of the remote service, with no trailing slash. An address
	// without a scheme is reached over https.
	Address string

	// Service is the fully qualified proto service name, for example
	// "pkg.Widgets".
	Service string

	// Scopes are the OAuth scopes declared by the service definition,
	// forwarded to the credentials when a session is opened.
	Scopes []string
}

// Builder constructs a named transport implementation. Implementations
// register themselves with RegisterTransport.
type Builder func(ctx context.Context, cfg DialConfig, creds Credentials) (Channel, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Builder)
)

// RegisterTransport makes a transport implementation available to Dial
// under the given name. It panics if the name is already taken.
func RegisterTransport(name string, builder Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if builder == nil {
		panic("transport: RegisterTransport builder is nil")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("transport: RegisterTransport called twice for %q", name))
	}
	registry[name] = builder
}

func lookupTransport(name string) (Builder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	builder, ok := registry[name]
	return builder, ok
}

// dialSettings collects the DialOptions for one Dial call.
type dialSettings struct {
	channel       Channel
	credentials   Credentials
	transportName string
}

// DialOption configures how Dial binds a channel.
type DialOption struct{ apply func(*dialSettings) }

// WithChannel injects an existing transport channel instance. The instance
// already encapsulates its own credentials, so combining WithChannel with
// WithCredentials is a usage error that Dial rejects before any I/O.
func WithChannel(channel Channel) DialOption {
	return DialOption{func(s *dialSettings) { s.channel = channel }}
}

// WithCredentials supplies the credentials the constructed transport opens
// its session with.
func WithCredentials(creds Credentials) DialOption {
	return DialOption{func(s *dialSettings) { s.credentials = creds }}
}

// WithTransportName selects a registered transport implementation by name
// instead of DefaultTransportName.
func WithTransportName(name string) DialOption {
	return DialOption{func(s *dialSettings) { s.transportName = name }}
}

// Dial binds exactly one channel for a client: the injected instance if one
// was supplied, otherwise a newly constructed instance of the default or
// named transport implementation carrying the given credentials, or
// environment-derived credentials if none were given.
func Dial(ctx context.Context, cfg DialConfig, opts ...DialOption) (Channel, error) {
	var settings dialSettings
	for _, opt := range opts {
		opt.apply(&settings)
	}

	if settings.channel != nil {
		if settings.credentials != nil {
			return nil, gapicerrors.InvalidArgumentErrorf(
				"cannot supply both a transport channel instance and credentials: the instance already encapsulates its own")
		}
		return settings.channel, nil
	}

	name := settings.transportName
	if name == "" {
		name = DefaultTransportName
	}
	builder, ok := lookupTransport(name)
	if !ok {
		return nil, gapicerrors.InvalidArgumentErrorf("unknown transport %q", name)
	}

	creds := settings.credentials
	if creds == nil {
		creds = DetectCredentials()
	}
	return builder(ctx, cfg, creds)
}
