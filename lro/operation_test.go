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
	"testing"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/landrito/gapic-generator-go/api/transport"
	"github.com/landrito/gapic-generator-go/api/transport/transporttest"
	"github.com/landrito/gapic-generator-go/gapicerrors"
	ibackoff "github.com/landrito/gapic-generator-go/internal/backoff"
	"github.com/landrito/gapic-generator-go/internal/prototest"
)

// respondWith makes the mocked channel write the given server state into the
// call's response message.
func respondWith(serverOp *longrunningpb.Operation) func(context.Context, string, proto.Message, proto.Message, transport.MD) error {
	return func(_ context.Context, _ string, _, resp proto.Message, _ transport.MD) error {
		proto.Merge(resp, serverOp)
		return nil
	}
}

func runningOp(name string) *longrunningpb.Operation {
	return &longrunningpb.Operation{Name: name}
}

func doneOp(t *testing.T, name string, result proto.Message) *longrunningpb.Operation {
	t.Helper()
	any, err := anypb.New(result)
	require.NoError(t, err)
	return &longrunningpb.Operation{
		Name:   name,
		Done:   true,
		Result: &longrunningpb.Operation_Response{Response: any},
	}
}

func failedOp(name string, code gapicerrors.Code, msg string) *longrunningpb.Operation {
	return &longrunningpb.Operation{
		Name: name,
		Done: true,
		Result: &longrunningpb.Operation_Error{
			Error: &statuspb.Status{Code: int32(code), Message: msg},
		},
	}
}

func TestOperationPoll(t *testing.T) {
	job := prototest.NewMessage("Job")
	prototest.Set(job, "id", "j1")
	prototest.Set(job, "state", "DONE")

	t.Run("still running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := transporttest.NewMockChannel(ctrl)
		channel.EXPECT().
			Invoke(gomock.Any(), "GetOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondWith(runningOp("ops/1")))

		op := NewOperation(NewClient(channel), runningOp("ops/1"))
		require.NoError(t, op.Poll(context.Background(), nil))
		assert.False(t, op.Done())
	})

	t.Run("resolves with a response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := transporttest.NewMockChannel(ctrl)
		channel.EXPECT().
			Invoke(gomock.Any(), "GetOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondWith(doneOp(t, "ops/1", job)))

		op := NewOperation(NewClient(channel), runningOp("ops/1"))
		got := prototest.NewMessage("Job")
		require.NoError(t, op.Poll(context.Background(), got))
		assert.True(t, op.Done())
		assert.True(t, proto.Equal(job, got))
	})

	t.Run("resolves with an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := transporttest.NewMockChannel(ctrl)
		channel.EXPECT().
			Invoke(gomock.Any(), "GetOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondWith(failedOp("ops/1", gapicerrors.CodeNotFound, "job vanished")))

		op := NewOperation(NewClient(channel), runningOp("ops/1"))
		err := op.Poll(context.Background(), prototest.NewMessage("Job"))
		require.Error(t, err)
		assert.True(t, gapicerrors.IsNotFound(err))
		assert.Equal(t, "job vanished", gapicerrors.ErrorMessage(err))
		assert.True(t, op.Done())
	})

	t.Run("already resolved operations do not poll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := transporttest.NewMockChannel(ctrl)
		// No expectations: any Invoke fails the test.

		op := NewOperation(NewClient(channel), doneOp(t, "ops/1", job))
		got := prototest.NewMessage("Job")
		require.NoError(t, op.Poll(context.Background(), got))
		assert.True(t, proto.Equal(job, got))
	})

	t.Run("poll error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := transporttest.NewMockChannel(ctrl)
		channel.EXPECT().
			Invoke(gomock.Any(), "GetOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(gapicerrors.UnavailableErrorf("down"))

		op := NewOperation(NewClient(channel), runningOp("ops/1"))
		err := op.Poll(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, gapicerrors.IsUnavailable(err))
	})
}

func TestOperationWait(t *testing.T) {
	job := prototest.NewMessage("Job")
	prototest.Set(job, "id", "j1")

	ctrl := gomock.NewController(t)
	channel := transporttest.NewMockChannel(ctrl)
	gomock.InOrder(
		channel.EXPECT().
			Invoke(gomock.Any(), "GetOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondWith(runningOp("ops/1"))),
		channel.EXPECT().
			Invoke(gomock.Any(), "GetOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(respondWith(doneOp(t, "ops/1", job))),
	)

	op := NewOperation(NewClient(channel), runningOp("ops/1"))
	got := prototest.NewMessage("Job")
	require.NoError(t, op.Wait(context.Background(), got, WithWaitBackoff(ibackoff.None)))
	assert.True(t, op.Done())
	assert.True(t, proto.Equal(job, got))
}

func TestOperationWaitContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	channel := transporttest.NewMockChannel(ctrl)
	channel.EXPECT().
		Invoke(gomock.Any(), "GetOperation", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respondWith(runningOp("ops/1"))).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	op := NewOperation(NewClient(channel), runningOp("ops/1"))
	err := op.Wait(ctx, nil, WithWaitBackoff(ibackoff.None))
	require.Error(t, err)
	assert.Equal(t, gapicerrors.CodeCancelled, gapicerrors.ErrorCode(err))
}

func TestOperationMetadata(t *testing.T) {
	meta := prototest.NewMessage("JobMetadata")
	prototest.Set(meta, "stage", "QUEUED")
	any, err := anypb.New(meta)
	require.NoError(t, err)

	t.Run("unmarshals", func(t *testing.T) {
		op := NewOperation(nil, &longrunningpb.Operation{Name: "ops/1", Metadata: any})
		got := prototest.NewMessage("JobMetadata")
		require.NoError(t, op.Metadata(got))
		assert.True(t, proto.Equal(meta, got))
	})

	t.Run("absent metadata", func(t *testing.T) {
		op := NewOperation(nil, runningOp("ops/1"))
		err := op.Metadata(prototest.NewMessage("JobMetadata"))
		require.Error(t, err)
		assert.True(t, gapicerrors.IsNotFound(err))
	})
}

func TestOperationCancelAndDelete(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := transporttest.NewMockChannel(ctrl)
		channel.EXPECT().
			Invoke(gomock.Any(), "CancelOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message, _ transport.MD) error {
				assert.Equal(t, "ops/1", req.(*longrunningpb.CancelOperationRequest).GetName())
				return nil
			})

		op := NewOperation(NewClient(channel), runningOp("ops/1"))
		assert.NoError(t, op.Cancel(context.Background()))
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		channel := transporttest.NewMockChannel(ctrl)
		channel.EXPECT().
			Invoke(gomock.Any(), "DeleteOperation", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message, _ transport.MD) error {
				assert.Equal(t, "ops/1", req.(*longrunningpb.DeleteOperationRequest).GetName())
				return nil
			})

		op := NewOperation(NewClient(channel), runningOp("ops/1"))
		assert.NoError(t, op.Delete(context.Background()))
	})
}
