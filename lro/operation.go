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

package lro

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/protobuf/proto"

	"github.com/landrito/gapic-generator-go/api/backoff"
	"github.com/landrito/gapic-generator-go/api/call"
	"github.com/landrito/gapic-generator-go/gapicerrors"
	ibackoff "github.com/landrito/gapic-generator-go/internal/backoff"
)

// Operation is a future for a long-running server-side operation. Methods
// that start one return it in place of their eventual response; the caller
// resolves it with Poll or Wait.
type Operation struct {
	client *Client
	proto  *longrunningpb.Operation
}

// NewOperation wraps the raw operation handle a method returned. The client
// must be bound to the operations service next to that method's service.
func NewOperation(client *Client, op *longrunningpb.Operation) *Operation {
	return &Operation{client: client, proto: op}
}

// Name returns the server-assigned operation name. It is valid from the
// moment the operation is created and is the key for Cancel and Delete.
func (op *Operation) Name() string {
	return op.proto.GetName()
}

// Done reports whether the operation has resolved, per the latest state
// fetched. It does not contact the server.
func (op *Operation) Done() bool {
	return op.proto.GetDone()
}

// Metadata unmarshals the operation's latest service-specific metadata into
// meta. It returns gapicerrors.CodeNotFound if no metadata has been reported
// yet.
func (op *Operation) Metadata(meta proto.Message) error {
	any := op.proto.GetMetadata()
	if any == nil {
		return gapicerrors.NotFoundErrorf("operation %q has no metadata", op.Name())
	}
	return any.UnmarshalTo(meta)
}

// Poll fetches the operation's latest state. If the operation has resolved
// successfully and resp is non-nil, the result is unmarshaled into resp. If
// it resolved with an error, Poll returns that error as a coded error. If it
// is still running, Poll returns nil and Done stays false.
func (op *Operation) Poll(ctx context.Context, resp proto.Message, opts ...call.Option) error {
	if !op.Done() {
		latest, err := op.client.GetOperation(ctx, &longrunningpb.GetOperationRequest{
			Name: op.Name(),
		}, opts...)
		if err != nil {
			return err
		}
		op.proto = latest
	}
	if !op.Done() {
		return nil
	}
	if errProto := op.proto.GetError(); errProto != nil {
		return gapicerrors.Newf(gapicerrors.Code(errProto.GetCode()), "%s", errProto.GetMessage())
	}
	if resp == nil {
		return nil
	}
	result := op.proto.GetResponse()
	if result == nil {
		return nil
	}
	return result.UnmarshalTo(resp)
}

// Wait polls the operation until it resolves or ctx expires, backing off
// between polls. On success the result is unmarshaled into resp.
func (op *Operation) Wait(ctx context.Context, resp proto.Message, opts ...WaitOption) error {
	waitOpts := waitOptions{
		backoffStrategy: ibackoff.DefaultExponential,
	}
	for _, opt := range opts {
		opt.apply(&waitOpts)
	}

	boff := waitOpts.backoffStrategy.Backoff()
	for attempts := uint(0); ; attempts++ {
		if err := op.Poll(ctx, resp, waitOpts.callOpts...); err != nil {
			return err
		}
		if op.Done() {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return ctxError(err)
		}
		timer := time.NewTimer(boff.Duration(attempts))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctxError(ctx.Err())
		case <-timer.C:
		}
	}
}

func ctxError(err error) error {
	if errors.Is(err, context.Canceled) {
		return gapicerrors.WrapError(gapicerrors.CodeCancelled, err)
	}
	return gapicerrors.WrapError(gapicerrors.CodeDeadlineExceeded, err)
}

// Cancel asks the server to cancel the operation. The operation keeps
// running until the server acts on the request; poll to observe the outcome.
func (op *Operation) Cancel(ctx context.Context, opts ...call.Option) error {
	return op.client.CancelOperation(ctx, &longrunningpb.CancelOperationRequest{
		Name: op.Name(),
	}, opts...)
}

// Delete removes the server's record of the operation without stopping it.
func (op *Operation) Delete(ctx context.Context, opts ...call.Option) error {
	return op.client.DeleteOperation(ctx, &longrunningpb.DeleteOperationRequest{
		Name: op.Name(),
	}, opts...)
}

// WaitOption customizes how Wait polls.
type WaitOption struct{ apply func(*waitOptions) }

type waitOptions struct {
	backoffStrategy backoff.Strategy
	callOpts        []call.Option
}

// WithWaitBackoff sets the strategy spacing out polls. Defaults to full
// jitter exponential backoff.
func WithWaitBackoff(strategy backoff.Strategy) WaitOption {
	return WaitOption{func(opts *waitOptions) {
		if strategy != nil {
			opts.backoffStrategy = strategy
		}
	}}
}

// WithWaitCallOptions applies the given call options to every poll.
func WithWaitCallOptions(callOpts ...call.Option) WaitOption {
	return WaitOption{func(opts *waitOptions) {
		opts.callOpts = append(opts.callOpts, callOpts...)
	}}
}
