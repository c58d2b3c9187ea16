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

// Package transport defines the capability each concrete transport must
// satisfy, the ordered call metadata passed alongside every request, the
// opaque credentials collaborator, and the dial path that binds exactly one
// transport channel to a client for its lifetime.
package transport

import (
	"context"

	"google.golang.org/protobuf/proto"
)

// Channel is the single invocable every concrete transport provides.
// Generated per-service transports dispatch each of their typed methods
// through a Channel bound at construction.
//
// Invoke serializes req, performs one synchronous exchange for the named
// method, and deserializes the response into resp. It performs no retries
// and owns no deadline arithmetic; both belong to the calling layer.
//
// Invoke MUST be safe to call concurrently if the session it holds is.
type Channel interface {
	Invoke(ctx context.Context, method string, req, resp proto.Message, md MD) error
}
