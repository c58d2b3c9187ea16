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

// Package retry re-attempts failed calls according to a Policy. The policy
// decides which error codes are worth another attempt; everything else
// surfaces to the caller unmodified.
package retry

import (
	"context"
	"time"
)

// Call runs the given attempt under the policy, re-attempting failures whose
// error codes the policy declares retryable. A nil policy runs the attempt
// exactly once with the caller's context untouched.
func Call(ctx context.Context, policy *Policy, attempt func(context.Context) error) error {
	if policy == nil {
		return attempt(ctx)
	}

	boff := policy.opts.backoffStrategy.Backoff()

	var err error
	for i := uint(0); i < policy.opts.retries+1; i++ {
		err = runAttempt(ctx, policy.opts.maxRequestTimeout, attempt)

		if err == nil || !policy.isRetryable(err) {
			return err
		}

		boffDur := boff.Duration(i)
		if _, ctxWillTimeout := getTimeLeft(ctx, boffDur); ctxWillTimeout {
			return err
		}
		time.Sleep(boffDur)
	}
	return err
}

func runAttempt(ctx context.Context, maxTimeout time.Duration, attempt func(context.Context) error) error {
	if maxTimeout <= 0 {
		return attempt(ctx)
	}
	timeout, _ := getTimeLeft(ctx, maxTimeout)
	subCtx, cancel := context.WithTimeout(ctx, timeout)
	// Clear the attempt's context immediately after the call.
	defer cancel()
	return attempt(subCtx)
}

// getTimeLeft will return the amount of time left in the context or the
// "max" duration passed in. It will also return a boolean indicating
// whether the context will timeout.
func getTimeLeft(ctx context.Context, max time.Duration) (timeleft time.Duration, ctxWillTimeout bool) {
	ctxDeadline, ok := ctx.Deadline()
	if !ok {
		return max, false
	}
	now := time.Now()
	if ctxDeadline.After(now.Add(max)) {
		return max, false
	}
	return ctxDeadline.Sub(now), true
}
