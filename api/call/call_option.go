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

package call

import (
	"time"

	"github.com/landrito/gapic-generator-go/retry"
)

// Option customizes a single outgoing call. Generated clients bake their
// per-method routing headers in as leading options; callers append their own
// afterwards.
type Option struct{ apply func(*callInfo) }

type fieldHeader struct {
	field  string
	header string
}

type callInfo struct {
	timeout      time.Duration
	retryPolicy  *retry.Policy
	md           []keyValuePair
	fieldHeaders []fieldHeader
}

type keyValuePair struct{ k, v string }

// WithTimeout sets an overall deadline for the call, covering every retry
// attempt. Zero means no deadline beyond the caller's context.
func WithTimeout(timeout time.Duration) Option {
	return Option{func(info *callInfo) {
		info.timeout = timeout
	}}
}

// WithRetryPolicy re-attempts the call per the given policy. A nil policy
// means the call runs exactly once.
func WithRetryPolicy(policy *retry.Policy) Option {
	return Option{func(info *callInfo) {
		info.retryPolicy = policy
	}}
}

// WithMetadata adds a metadata entry to the outgoing call. Entries accumulate
// in option order and duplicate keys are preserved.
func WithMetadata(k, v string) Option {
	return Option{func(info *callInfo) {
		info.md = append(info.md, keyValuePair{k: k, v: v})
	}}
}

// WithFieldHeader extracts the request field at the given dotted path and,
// when the field is set, sends it as a "field=value" metadata entry under the
// given header. Both the path and the value are URL-encoded on the wire.
// Unset, repeated, and message-typed fields produce no entry.
//
// Generated clients declare these per method; hand-written callers rarely
// need one.
func WithFieldHeader(field, header string) Option {
	return Option{func(info *callInfo) {
		info.fieldHeaders = append(info.fieldHeaders, fieldHeader{field: field, header: header})
	}}
}
