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

package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validModel = `
naming:
  name: Test
  proto_package: test.v1
  go_package: github.com/example/test-go/testapi
address: api.example.com
oauth_scopes:
  - https://example.com/auth/widgets
services:
  - name: Widgets
    methods:
      - name: GetWidget
        request:
          name: GetWidgetRequest
          import: github.com/example/test-go/testpb
        response:
          name: Widget
          import: github.com/example/test-go/testpb
        field_headers:
          - field: id
            header: x-widget-id
          - field: name
            header: x-routing-params
  - name: Jobs
    methods:
      - name: StartJob
        request:
          name: StartJobRequest
          import: github.com/example/test-go/testpb
        lro:
          response:
            name: Job
            import: github.com/example/test-go/testpb
          metadata:
            name: JobMetadata
            import: github.com/example/test-go/testpb
`

func TestParse(t *testing.T) {
	api, err := Parse([]byte(validModel))
	require.NoError(t, err)

	assert.Equal(t, "Test", api.Naming.Name)
	assert.Equal(t, "Test", api.Naming.LongName())
	assert.Equal(t, "api.example.com", api.Address)
	assert.Equal(t, []string{"https://example.com/auth/widgets"}, api.Scopes)
	require.Len(t, api.Services, 2)

	widgets := api.Services[0]
	assert.Equal(t, "test.v1.Widgets", api.FullName(&widgets))
	assert.False(t, widgets.HasLRO())
	assert.True(t, widgets.HasFieldHeaders())
	require.Len(t, widgets.Methods, 1)
	assert.Equal(t, []FieldHeader{
		{Field: "id", Header: "x-widget-id"},
		{Field: "name", Header: "x-routing-params"},
	}, widgets.Methods[0].FieldHeaders, "field header order must survive decoding")

	jobs := api.Services[1]
	assert.True(t, jobs.HasLRO())
	assert.False(t, jobs.HasFieldHeaders())
	require.NotNil(t, jobs.Methods[0].LRO)
	assert.Equal(t, "Job", jobs.Methods[0].LRO.Response.Name)
}

func TestLongName(t *testing.T) {
	naming := Naming{Name: "Test", Namespace: []string{"Acme", "Cloud"}}
	assert.Equal(t, "Acme Cloud Test", naming.LongName())
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
naming:
  name: Test
  proto_package: test.v1
  go_package: github.com/example/test-go/testapi
address: api.example.com
services:
  - name: Widgets
    methods:
      - name: GetWidget
        request:
          name: GetWidgetRequest
          import: github.com/example/test-go/testpb
        response:
          name: Widget
          import: github.com/example/test-go/testpb
        field_headerz:
          - field: id
            header: x-widget-id
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field_headerz")
}

func TestValidate(t *testing.T) {
	method := func(name string) Method {
		return Method{
			Name:     name,
			Request:  TypeRef{Name: name + "Request", Import: "github.com/example/test-go/testpb"},
			Response: TypeRef{Name: name + "Response", Import: "github.com/example/test-go/testpb"},
		}
	}
	base := func() *API {
		return &API{
			Naming: Naming{
				Name:         "Test",
				ProtoPackage: "test.v1",
				GoPackage:    "github.com/example/test-go/testapi",
			},
			Address: "api.example.com",
			Services: []Service{
				{Name: "Widgets", Methods: []Method{method("GetWidget")}},
			},
		}
	}

	tests := []struct {
		desc    string
		mutate  func(*API)
		wantErr string
	}{
		{
			desc:   "valid",
			mutate: func(*API) {},
		},
		{
			desc:    "missing address",
			mutate:  func(api *API) { api.Address = "" },
			wantErr: "address is required",
		},
		{
			desc:    "missing proto package",
			mutate:  func(api *API) { api.Naming.ProtoPackage = "" },
			wantErr: "proto_package is required",
		},
		{
			desc: "duplicate service",
			mutate: func(api *API) {
				api.Services = append(api.Services, api.Services[0])
			},
			wantErr: `duplicate service "Widgets"`,
		},
		{
			desc: "duplicate method",
			mutate: func(api *API) {
				api.Services[0].Methods = append(api.Services[0].Methods, method("GetWidget"))
			},
			wantErr: `duplicate method "GetWidget"`,
		},
		{
			desc: "missing response",
			mutate: func(api *API) {
				api.Services[0].Methods[0].Response = TypeRef{}
			},
			wantErr: "response is required",
		},
		{
			desc: "lro and response are exclusive",
			mutate: func(api *API) {
				api.Services[0].Methods[0].LRO = &LRO{
					Response: TypeRef{Name: "Job", Import: "github.com/example/test-go/testpb"},
					Metadata: TypeRef{Name: "JobMetadata", Import: "github.com/example/test-go/testpb"},
				}
			},
			wantErr: "mutually exclusive",
		},
		{
			desc: "lro needs metadata",
			mutate: func(api *API) {
				api.Services[0].Methods[0].Response = TypeRef{}
				api.Services[0].Methods[0].LRO = &LRO{
					Response: TypeRef{Name: "Job", Import: "github.com/example/test-go/testpb"},
				}
			},
			wantErr: "lro.metadata is required",
		},
		{
			desc: "incomplete field header",
			mutate: func(api *API) {
				api.Services[0].Methods[0].FieldHeaders = []FieldHeader{{Field: "id"}}
			},
			wantErr: "field header needs both field and header",
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			api := base()
			tt.mutate(api)
			err := api.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAccumulatesErrors(t *testing.T) {
	err := (&API{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "address is required")
	assert.Contains(t, err.Error(), "at least one service is required")
}

func TestMessageImports(t *testing.T) {
	api, err := Parse([]byte(validModel))
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"github.com/example/test-go/testpb"},
		api.Services[0].MessageImports())
	assert.Equal(t,
		[]string{"github.com/example/test-go/testpb"},
		api.Services[1].MessageImports())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validModel), 0o644))

	api, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", api.Naming.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
