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

// Package schema is the service model the generator consumes: which services
// exist, what their methods look like on the wire, which request fields
// route as headers, and which methods resolve through long-running
// operations.
package schema

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v2"
)

// API is the root of a service model.
type API struct {
	Naming Naming `yaml:"naming"`

	// Address is the default host generated clients dial, with no scheme.
	Address string `yaml:"address"`

	// Scopes are the OAuth scopes the service definition declares.
	Scopes []string `yaml:"oauth_scopes"`

	Services []Service `yaml:"services"`
}

// Naming carries the identity of the API across every generated artifact.
type Naming struct {
	// Name is the displayable API name, for example "Test".
	Name string `yaml:"name"`

	// Namespace qualifies the name for display, for example
	// ["Acme", "Cloud"]. Optional.
	Namespace []string `yaml:"namespace"`

	// Version is the API version, for example "v1". Optional; display only.
	Version string `yaml:"version"`

	// ProtoPackage is the versioned proto package, for example "test.v1".
	// Service names on the wire are qualified with it.
	ProtoPackage string `yaml:"proto_package"`

	// GoPackage is the import path the clients are generated into.
	GoPackage string `yaml:"go_package"`
}

// LongName is the namespace-qualified display name, for example
// "Acme Cloud Test".
func (n Naming) LongName() string {
	return strings.Join(append(append([]string{}, n.Namespace...), n.Name), " ")
}

// Service is one generated client.
type Service struct {
	Name    string   `yaml:"name"`
	Methods []Method `yaml:"methods"`
}

// Method is one RPC on a service.
type Method struct {
	Name string `yaml:"name"`

	Request TypeRef `yaml:"request"`

	// Response is the method's response type. Empty when LRO is set: such
	// methods answer with an operation handle on the wire and the eventual
	// response type lives in LRO.
	Response TypeRef `yaml:"response"`

	// FieldHeaders route request fields as metadata, in declared order.
	FieldHeaders []FieldHeader `yaml:"field_headers"`

	LRO *LRO `yaml:"lro"`
}

// FieldHeader names a request field, by dotted path, that is sent as
// metadata under the given header when set.
type FieldHeader struct {
	Field  string `yaml:"field"`
	Header string `yaml:"header"`
}

// LRO marks a method as long-running and names the types its operation
// eventually resolves with.
type LRO struct {
	Response TypeRef `yaml:"response"`
	Metadata TypeRef `yaml:"metadata"`
}

// TypeRef points at a generated proto type.
type TypeRef struct {
	// Name is the Go type name, for example "Widget".
	Name string `yaml:"name"`

	// Import is the import path of the package declaring the type.
	Import string `yaml:"import"`
}

// IsZero reports whether the reference points at nothing.
func (r TypeRef) IsZero() bool {
	return r.Name == "" && r.Import == ""
}

// Load reads and validates a service model from a YAML file.
func Load(path string) (*API, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(contents)
}

// Parse decodes and validates a service model. Unknown keys are an error;
// a model that silently drops a misspelled field_headers entry would
// generate a client missing routing headers.
func Parse(contents []byte) (*API, error) {
	var api API
	if err := yaml.UnmarshalStrict(contents, &api); err != nil {
		return nil, fmt.Errorf("could not decode service model: %v", err)
	}
	if err := api.Validate(); err != nil {
		return nil, err
	}
	return &api, nil
}

// Validate checks the model for every mistake the generator can catch
// before emitting code, accumulating all of them.
func (api *API) Validate() error {
	var err error
	if api.Naming.Name == "" {
		err = multierr.Append(err, fmt.Errorf("naming: name is required"))
	}
	if api.Naming.ProtoPackage == "" {
		err = multierr.Append(err, fmt.Errorf("naming: proto_package is required"))
	}
	if api.Naming.GoPackage == "" {
		err = multierr.Append(err, fmt.Errorf("naming: go_package is required"))
	}
	if api.Address == "" {
		err = multierr.Append(err, fmt.Errorf("address is required"))
	}
	if len(api.Services) == 0 {
		err = multierr.Append(err, fmt.Errorf("at least one service is required"))
	}

	serviceNames := make(map[string]bool)
	for _, service := range api.Services {
		if serviceNames[service.Name] {
			err = multierr.Append(err, fmt.Errorf("duplicate service %q", service.Name))
		}
		serviceNames[service.Name] = true
		err = multierr.Append(err, service.validate())
	}
	return err
}

func (s *Service) validate() error {
	var err error
	if s.Name == "" {
		return fmt.Errorf("service: name is required")
	}
	if len(s.Methods) == 0 {
		err = multierr.Append(err, fmt.Errorf("service %s: at least one method is required", s.Name))
	}

	methodNames := make(map[string]bool)
	for _, method := range s.Methods {
		if methodNames[method.Name] {
			err = multierr.Append(err, fmt.Errorf("service %s: duplicate method %q", s.Name, method.Name))
		}
		methodNames[method.Name] = true
		err = multierr.Append(err, method.validate(s.Name))
	}
	return err
}

func (m *Method) validate(service string) error {
	var err error
	if m.Name == "" {
		return fmt.Errorf("service %s: method name is required", service)
	}
	if m.Request.IsZero() {
		err = multierr.Append(err, fmt.Errorf("method %s.%s: request is required", service, m.Name))
	}

	switch {
	case m.LRO != nil && !m.Response.IsZero():
		err = multierr.Append(err, fmt.Errorf(
			"method %s.%s: response and lro are mutually exclusive: a long-running method answers with an operation handle",
			service, m.Name))
	case m.LRO != nil:
		if m.LRO.Response.IsZero() {
			err = multierr.Append(err, fmt.Errorf("method %s.%s: lro.response is required", service, m.Name))
		}
		if m.LRO.Metadata.IsZero() {
			err = multierr.Append(err, fmt.Errorf("method %s.%s: lro.metadata is required", service, m.Name))
		}
	case m.Response.IsZero():
		err = multierr.Append(err, fmt.Errorf("method %s.%s: response is required", service, m.Name))
	}

	for _, fh := range m.FieldHeaders {
		if fh.Field == "" || fh.Header == "" {
			err = multierr.Append(err, fmt.Errorf("method %s.%s: field header needs both field and header", service, m.Name))
		}
	}
	return err
}

// FullName qualifies the service name with the API's proto package. This is
// the name that appears in request URLs.
func (api *API) FullName(s *Service) string {
	return api.Naming.ProtoPackage + "." + s.Name
}

// HasLRO reports whether any method of the service is long-running.
func (s *Service) HasLRO() bool {
	for _, m := range s.Methods {
		if m.LRO != nil {
			return true
		}
	}
	return false
}

// HasFieldHeaders reports whether any method of the service routes request
// fields as headers.
func (s *Service) HasFieldHeaders() bool {
	for _, m := range s.Methods {
		if len(m.FieldHeaders) > 0 {
			return true
		}
	}
	return false
}

// MessageImports returns the sorted, deduplicated import paths of every
// proto type the service's methods mention.
func (s *Service) MessageImports() []string {
	seen := make(map[string]bool)
	for _, m := range s.Methods {
		for _, ref := range []TypeRef{m.Request, m.Response} {
			if ref.Import != "" {
				seen[ref.Import] = true
			}
		}
		if m.LRO != nil {
			for _, ref := range []TypeRef{m.LRO.Response, m.LRO.Metadata} {
				if ref.Import != "" {
					seen[ref.Import] = true
				}
			}
		}
	}
	imports := make([]string, 0, len(seen))
	for path := range seen {
		imports = append(imports, path)
	}
	sort.Strings(imports)
	return imports
}
