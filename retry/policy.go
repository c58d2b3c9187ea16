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

package retry

import (
	"time"

	"github.com/landrito/gapic-generator-go/api/backoff"
	"github.com/landrito/gapic-generator-go/gapicerrors"
	ibackoff "github.com/landrito/gapic-generator-go/internal/backoff"
)

// Policy defines how a retry will be applied. It contains all the
// information needed to perform a retry.
type Policy struct {
	opts policyOptions
}

// NewPolicy creates a new retry Policy that can be passed to a client call
// with call.WithRetryPolicy.
func NewPolicy(opts ...PolicyOption) *Policy {
	policyOpts := defaultPolicyOpts
	for _, opt := range opts {
		opt.apply(&policyOpts)
	}
	return &Policy{opts: policyOpts}
}

var defaultPolicyOpts = policyOptions{
	retries:           0,
	maxRequestTimeout: time.Second,
	backoffStrategy:   ibackoff.None,
	retryableCodes: []gapicerrors.Code{
		gapicerrors.CodeUnavailable,
		gapicerrors.CodeDeadlineExceeded,
	},
}

type policyOptions struct {
	// retries is the number of times we will retry the request (after the
	// initial attempt).
	retries uint

	// maxRequestTimeout is the timeout we will enforce for each outgoing
	// attempt. This will be clamped down to the context deadline.
	maxRequestTimeout time.Duration

	// backoffStrategy is a backoff strategy that will be called after every
	// retry.
	backoffStrategy backoff.Strategy

	// retryableCodes are the error codes that will be re-attempted.
	retryableCodes []gapicerrors.Code
}

// PolicyOption customizes the behavior of a retry policy.
type PolicyOption interface {
	apply(*policyOptions)
}

type policyOptionFunc func(*policyOptions)

func (f policyOptionFunc) apply(opts *policyOptions) { f(opts) }

// Retries is the number of times we will retry the request (after the
// initial attempt).
//
// Defaults to 0.
func Retries(retries uint) PolicyOption {
	return policyOptionFunc(func(opts *policyOptions) {
		opts.retries = retries
	})
}

// MaxRequestTimeout is the timeout we will enforce per attempt (if this is
// greater than the context deadline, we'll use that instead).
//
// Defaults to 1 second.
func MaxRequestTimeout(timeout time.Duration) PolicyOption {
	return policyOptionFunc(func(opts *policyOptions) {
		opts.maxRequestTimeout = timeout
	})
}

// BackoffStrategy sets the backoff strategy that will be used after each
// failed attempt.
//
// Defaults to no backoff.
func BackoffStrategy(strategy backoff.Strategy) PolicyOption {
	return policyOptionFunc(func(opts *policyOptions) {
		if strategy != nil {
			opts.backoffStrategy = strategy
		}
	})
}

// RetryableCodes sets the error codes that will be re-attempted.
//
// Defaults to unavailable and deadline-exceeded.
func RetryableCodes(codes ...gapicerrors.Code) PolicyOption {
	return policyOptionFunc(func(opts *policyOptions) {
		if len(codes) > 0 {
			opts.retryableCodes = codes
		}
	})
}

func (p *Policy) isRetryable(err error) bool {
	code := gapicerrors.ErrorCode(err)
	for _, retryable := range p.opts.retryableCodes {
		if code == retryable {
			return true
		}
	}
	return false
}
