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

// Package lro tracks long-running operations. Methods that start such an
// operation return an Operation future; the future resolves by polling the
// google.longrunning.Operations service next to the originating method.
package lro

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/landrito/gapic-generator-go/api/call"
	"github.com/landrito/gapic-generator-go/api/transport"
)

// ServiceName is the fully-qualified name of the operations service every
// transport exposes next to its primary service.
const ServiceName = "google.longrunning.Operations"

// Provider is a transport that can serve the operations service sharing the
// primary service's address and credentials. The returned client MUST be the
// same instance on every call, including concurrent first calls.
type Provider interface {
	OperationsClient(ctx context.Context) (*Client, error)
}

// Client calls the google.longrunning.Operations service over a channel
// bound to it.
type Client struct {
	channel transport.Channel
}

// NewClient builds an operations client on the given channel. The channel
// must be bound to the operations service.
func NewClient(channel transport.Channel) *Client {
	return &Client{channel: channel}
}

// GetOperation fetches the latest state of the named operation.
func (c *Client) GetOperation(ctx context.Context, req *longrunningpb.GetOperationRequest, opts ...call.Option) (*longrunningpb.Operation, error) {
	resp := &longrunningpb.Operation{}
	err := call.Invoke(ctx, req, func(ctx context.Context, md transport.MD) error {
		return c.channel.Invoke(ctx, "GetOperation", req, resp, md)
	}, opts...)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelOperation asks the server to cancel the named operation. The
// operation still has to be polled to completion; a cancelled operation
// resolves with a cancellation error.
func (c *Client) CancelOperation(ctx context.Context, req *longrunningpb.CancelOperationRequest, opts ...call.Option) error {
	resp := &emptypb.Empty{}
	return call.Invoke(ctx, req, func(ctx context.Context, md transport.MD) error {
		return c.channel.Invoke(ctx, "CancelOperation", req, resp, md)
	}, opts...)
}

// DeleteOperation removes the server's record of the named operation. It
// does not stop the underlying work.
func (c *Client) DeleteOperation(ctx context.Context, req *longrunningpb.DeleteOperationRequest, opts ...call.Option) error {
	resp := &emptypb.Empty{}
	return call.Invoke(ctx, req, func(ctx context.Context, md transport.MD) error {
		return c.channel.Invoke(ctx, "DeleteOperation", req, resp, md)
	}, opts...)
}
