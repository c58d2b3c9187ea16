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
	"context"
	"errors"
	"testing"
	"time"

	"github.com/landrito/gapic-generator-go/api/backoff"
	"github.com/landrito/gapic-generator-go/gapicerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallNilPolicyRunsOnce(t *testing.T) {
	calls := 0
	err := Call(context.Background(), nil, func(ctx context.Context) error {
		calls++
		_, hasDeadline := ctx.Deadline()
		assert.False(t, hasDeadline, "nil policy must leave the context untouched")
		return gapicerrors.UnavailableErrorf("down")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestCallRetriesRetryableCodes(t *testing.T) {
	tests := []struct {
		desc        string
		givePolicy  *Policy
		giveErrs    []error
		wantCalls   int
		wantErr     bool
		wantErrCode gapicerrors.Code
	}{
		{
			desc:       "success on first attempt",
			givePolicy: NewPolicy(Retries(3)),
			giveErrs:   []error{nil},
			wantCalls:  1,
		},
		{
			desc:       "retryable then success",
			givePolicy: NewPolicy(Retries(3)),
			giveErrs: []error{
				gapicerrors.UnavailableErrorf("down"),
				nil,
			},
			wantCalls: 2,
		},
		{
			desc:       "non-retryable stops immediately",
			givePolicy: NewPolicy(Retries(3)),
			giveErrs: []error{
				gapicerrors.NotFoundErrorf("nope"),
			},
			wantCalls:   1,
			wantErr:     true,
			wantErrCode: gapicerrors.CodeNotFound,
		},
		{
			desc:       "attempts exhausted",
			givePolicy: NewPolicy(Retries(2)),
			giveErrs: []error{
				gapicerrors.UnavailableErrorf("down"),
				gapicerrors.UnavailableErrorf("down"),
				gapicerrors.UnavailableErrorf("down"),
			},
			wantCalls:   3,
			wantErr:     true,
			wantErrCode: gapicerrors.CodeUnavailable,
		},
		{
			desc: "custom retryable codes",
			givePolicy: NewPolicy(
				Retries(1),
				RetryableCodes(gapicerrors.CodeNotFound),
			),
			giveErrs: []error{
				gapicerrors.NotFoundErrorf("nope"),
				nil,
			},
			wantCalls: 2,
		},
		{
			desc:       "plain errors are not retried",
			givePolicy: NewPolicy(Retries(3)),
			giveErrs: []error{
				errors.New("boom"),
			},
			wantCalls:   1,
			wantErr:     true,
			wantErrCode: gapicerrors.CodeUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			calls := 0
			err := Call(context.Background(), tt.givePolicy, func(ctx context.Context) error {
				result := tt.giveErrs[calls]
				calls++
				return result
			})
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, gapicerrors.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCallAttemptTimeout(t *testing.T) {
	policy := NewPolicy(MaxRequestTimeout(10 * time.Millisecond))
	var deadline time.Time
	var hasDeadline bool
	start := time.Now()
	err := Call(context.Background(), policy, func(ctx context.Context) error {
		deadline, hasDeadline = ctx.Deadline()
		return nil
	})
	require.NoError(t, err)
	require.True(t, hasDeadline)
	assert.WithinDuration(t, start.Add(10*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestCallAttemptTimeoutClampedToContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	policy := NewPolicy(MaxRequestTimeout(time.Hour))
	var deadline time.Time
	err := Call(ctx, policy, func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	})
	require.NoError(t, err)

	outer, _ := ctx.Deadline()
	assert.True(t, !deadline.After(outer), "attempt deadline must not outlive the caller's")
}

func TestCallStopsWhenBackoffOutlivesContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	policy := NewPolicy(
		Retries(5),
		MaxRequestTimeout(5*time.Millisecond),
		BackoffStrategy(fixedStrategy{d: time.Hour}),
	)

	calls := 0
	callErr := Call(ctx, policy, func(ctx context.Context) error {
		calls++
		return gapicerrors.UnavailableErrorf("down")
	})
	require.Error(t, callErr)
	assert.Equal(t, 1, calls, "must not sleep past the caller's deadline")
}

// fixedStrategy waits a constant duration between attempts.
type fixedStrategy struct{ d time.Duration }

func (s fixedStrategy) Backoff() backoff.Backoff { return s }

func (s fixedStrategy) Duration(uint) time.Duration { return s.d }
