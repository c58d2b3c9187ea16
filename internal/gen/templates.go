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

package gen

import "text/template"

var docTemplate = template.Must(template.New("doc").Parse(`// Code generated by gapic-generator-go. DO NOT EDIT.

// Package {{.Package}} is the auto-generated client library for the {{.APIName}} API.
package {{.Package}}

// Importing the default transport registers it for dialing.
import _ "github.com/landrito/gapic-generator-go/transport/protohttp"
`))

var clientTemplate = template.Must(template.New("client").Parse(`// Code generated by gapic-generator-go. DO NOT EDIT.

package {{.Package}}

import (
	"context"

	"github.com/landrito/gapic-generator-go/api/call"
	"github.com/landrito/gapic-generator-go/api/transport"
{{- if .HasLRO}}
	"github.com/landrito/gapic-generator-go/gapicerrors"
	"github.com/landrito/gapic-generator-go/lro"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
{{- end}}

{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.ServiceName}}Client is a client for the {{.FullName}} service.
//
// Methods accept call options for per-call timeouts, retry policies, and
// metadata. The client is safe for concurrent use.
type {{.ServiceName}}Client struct {
	channel transport.Channel
}

// New{{.ServiceName}}Client dials {{.FullName}} at {{.Address}} and returns
// a client bound to the resulting channel.
func New{{.ServiceName}}Client(ctx context.Context, opts ...transport.DialOption) (*{{.ServiceName}}Client, error) {
	channel, err := transport.Dial(ctx, transport.DialConfig{
		Address: "{{.Address}}",
		Service: "{{.FullName}}",
{{- if .Scopes}}
		Scopes: []string{
{{- range .Scopes}}
			"{{.}}",
{{- end}}
		},
{{- end}}
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &{{.ServiceName}}Client{channel: channel}, nil
}
{{- $root := .}}
{{- range .Methods}}
{{- if .LRO}}

// {{.Name}} calls {{$root.FullName}}.{{.Name}} and returns a future for the
// long-running operation the server starts.
func (c *{{$root.ServiceName}}Client) {{.Name}}(ctx context.Context, req *{{.RequestType}}, opts ...call.Option) (*{{.Name}}Operation, error) {
	resp := &longrunningpb.Operation{}
{{- if .FieldHeaders}}
	opts = append([]call.Option{
{{- range .FieldHeaders}}
		call.WithFieldHeader("{{.Field}}", "{{.Header}}"),
{{- end}}
	}, opts...)
{{- end}}
	err := call.Invoke(ctx, req, func(ctx context.Context, md transport.MD) error {
		return c.channel.Invoke(ctx, "{{.Name}}", req, resp, md)
	}, opts...)
	if err != nil {
		return nil, err
	}
	provider, ok := c.channel.(lro.Provider)
	if !ok {
		return nil, gapicerrors.UnimplementedErrorf("transport %T cannot serve the operations service", c.channel)
	}
	operations, err := provider.OperationsClient(ctx)
	if err != nil {
		return nil, err
	}
	return &{{.Name}}Operation{lro: lro.NewOperation(operations, resp)}, nil
}

// {{.Name}}Operation is a future for a long-running {{.Name}} call.
type {{.Name}}Operation struct {
	lro *lro.Operation
}

// Name returns the server-assigned operation name.
func (op *{{.Name}}Operation) Name() string {
	return op.lro.Name()
}

// Done reports whether the operation has resolved, per the latest poll.
func (op *{{.Name}}Operation) Done() bool {
	return op.lro.Done()
}

// Poll fetches the operation's latest state. It returns (nil, nil) while
// the operation is still running.
func (op *{{.Name}}Operation) Poll(ctx context.Context, opts ...call.Option) (*{{.LRO.ResponseType}}, error) {
	resp := &{{.LRO.ResponseType}}{}
	if err := op.lro.Poll(ctx, resp, opts...); err != nil {
		return nil, err
	}
	if !op.lro.Done() {
		return nil, nil
	}
	return resp, nil
}

// Wait blocks until the operation resolves or ctx expires.
func (op *{{.Name}}Operation) Wait(ctx context.Context, opts ...lro.WaitOption) (*{{.LRO.ResponseType}}, error) {
	resp := &{{.LRO.ResponseType}}{}
	if err := op.lro.Wait(ctx, resp, opts...); err != nil {
		return nil, err
	}
	return resp, nil
}

// Metadata returns the operation's latest service-specific metadata.
func (op *{{.Name}}Operation) Metadata() (*{{.LRO.MetadataType}}, error) {
	meta := &{{.LRO.MetadataType}}{}
	if err := op.lro.Metadata(meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// Cancel asks the server to cancel the operation.
func (op *{{.Name}}Operation) Cancel(ctx context.Context, opts ...call.Option) error {
	return op.lro.Cancel(ctx, opts...)
}

// Delete removes the server's record of the operation.
func (op *{{.Name}}Operation) Delete(ctx context.Context, opts ...call.Option) error {
	return op.lro.Delete(ctx, opts...)
}
{{- else}}

// {{.Name}} calls {{$root.FullName}}.{{.Name}}.
func (c *{{$root.ServiceName}}Client) {{.Name}}(ctx context.Context, req *{{.RequestType}}, opts ...call.Option) (*{{.ResponseType}}, error) {
	resp := &{{.ResponseType}}{}
{{- if .FieldHeaders}}
	opts = append([]call.Option{
{{- range .FieldHeaders}}
		call.WithFieldHeader("{{.Field}}", "{{.Header}}"),
{{- end}}
	}, opts...)
{{- end}}
	err := call.Invoke(ctx, req, func(ctx context.Context, md transport.MD) error {
		return c.channel.Invoke(ctx, "{{.Name}}", req, resp, md)
	}, opts...)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
{{- end}}
{{- end}}
`))
