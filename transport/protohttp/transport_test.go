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

package protohttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/landrito/gapic-generator-go/api/transport"
	"github.com/landrito/gapic-generator-go/gapicerrors"
	"github.com/landrito/gapic-generator-go/internal/prototest"
	"github.com/landrito/gapic-generator-go/lro"
)

func newTestTransport(t *testing.T, handler http.Handler) *Transport {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	trans, err := New(context.Background(), server.URL, "test.v1.Widgets",
		WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return trans
}

func TestInvokeRequestShape(t *testing.T) {
	want := prototest.NewMessage("GetWidgetRequest")
	prototest.Set(want, "id", "w1")

	widget := prototest.NewMessage("Widget")
	prototest.Set(widget, "id", "w1")
	widgetBytes, err := proto.Marshal(widget)
	require.NoError(t, err)

	var gotPath, gotMethod, gotContentType string
	var gotHeaders http.Header
	var gotBody []byte
	trans := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.Write(widgetBytes)
	}))

	resp := prototest.NewMessage("Widget")
	md := transport.Pairs(
		"x-api-client", "gl-go/test gapic/test",
		"x-widget-id", "id=w1",
		"x-widget-id", "id=w2",
	)
	require.NoError(t, trans.Invoke(context.Background(), "GetWidget", want, resp, md))

	assert.Equal(t, "/$rpc/test.v1.Widgets/GetWidget", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/x-protobuf", gotContentType)
	assert.Equal(t, []string{"gl-go/test gapic/test"}, gotHeaders.Values("X-Api-Client"))
	assert.Equal(t, []string{"id=w1", "id=w2"}, gotHeaders.Values("X-Widget-Id"),
		"duplicate metadata keys must arrive in order")

	gotReq := prototest.NewMessage("GetWidgetRequest")
	require.NoError(t, proto.Unmarshal(gotBody, gotReq))
	assert.True(t, proto.Equal(want, gotReq))

	assert.True(t, proto.Equal(widget, resp), "response body must round-trip")
}

func TestInvokeErrorMapping(t *testing.T) {
	tests := []struct {
		desc       string
		giveStatus int
		giveBody   string
		wantCode   gapicerrors.Code
		wantMsg    string
	}{
		{
			desc:       "not found",
			giveStatus: 404,
			giveBody:   "no such widget\n",
			wantCode:   gapicerrors.CodeNotFound,
			wantMsg:    "no such widget",
		},
		{
			desc:       "unavailable",
			giveStatus: 503,
			giveBody:   "try again",
			wantCode:   gapicerrors.CodeUnavailable,
			wantMsg:    "try again",
		},
		{
			desc:       "unauthenticated",
			giveStatus: 401,
			giveBody:   "who are you",
			wantCode:   gapicerrors.CodeUnauthenticated,
			wantMsg:    "who are you",
		},
		{
			desc:       "unmapped 4xx",
			giveStatus: 418,
			giveBody:   "teapot",
			wantCode:   gapicerrors.CodeInvalidArgument,
			wantMsg:    "teapot",
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			trans := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.giveBody, tt.giveStatus)
			}))

			req := prototest.NewMessage("GetWidgetRequest")
			resp := prototest.NewMessage("Widget")
			err := trans.Invoke(context.Background(), "GetWidget", req, resp, nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, gapicerrors.ErrorCode(err))
			assert.Equal(t, tt.wantMsg, gapicerrors.ErrorMessage(err))
		})
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		give string
		want string
	}{
		{give: "api.example.com", want: "https://api.example.com"},
		{give: "api.example.com/", want: "https://api.example.com"},
		{give: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{give: "https://api.example.com", want: "https://api.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			assert.Equal(t, tt.want, baseURL(tt.give))
		})
	}
}

func TestOperationsClientMemoized(t *testing.T) {
	trans := newTestTransport(t, http.NotFoundHandler())

	first, err := trans.OperationsClient(context.Background())
	require.NoError(t, err)
	second, err := trans.OperationsClient(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestOperationsClientConcurrentFirstAccess(t *testing.T) {
	trans := newTestTransport(t, http.NotFoundHandler())

	const n = 50
	clients := make([]*lro.Client, n)
	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			client, err := trans.OperationsClient(context.Background())
			assert.NoError(t, err)
			clients[i] = client
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, clients[0], clients[i])
	}
}

func TestOperationsClientTargetsOperationsService(t *testing.T) {
	var gotPath string
	trans := newTestTransport(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := proto.Marshal(&longrunningpb.Operation{Name: "ops/1"})
		w.Write(body)
	}))

	client, err := trans.OperationsClient(context.Background())
	require.NoError(t, err)
	got, err := client.GetOperation(context.Background(), &longrunningpb.GetOperationRequest{Name: "ops/1"})
	require.NoError(t, err)
	assert.Equal(t, "/$rpc/google.longrunning.Operations/GetOperation", gotPath)
	assert.Equal(t, "ops/1", got.GetName())
}

func TestDialResolvesThisTransport(t *testing.T) {
	channel, err := transport.Dial(context.Background(), transport.DialConfig{
		Address: "api.example.com",
		Service: "test.v1.Widgets",
	})
	require.NoError(t, err)
	assert.IsType(t, &Transport{}, channel)
}
