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

import (
	"fmt"
	"path"
	"strings"

	"github.com/landrito/gapic-generator-go/internal/schema"
)

type docData struct {
	Package string
	APIName string
}

// clientData is the fully-resolved input to the client template: all type
// references are rendered to aliased Go expressions here so the template
// only concatenates strings.
type clientData struct {
	Package     string
	APIName     string
	Address     string
	Scopes      []string
	ServiceName string // bare name, for example "Widgets"
	FullName    string // wire name, for example "test.v1.Widgets"
	HasLRO      bool
	Imports     []importSpec
	Methods     []methodData
}

type importSpec struct {
	Alias string // empty when the base name already matches
	Path  string
}

type methodData struct {
	Name         string
	RequestType  string // aliased Go type, for example "testpb.GetWidgetRequest"
	ResponseType string
	FieldHeaders []schema.FieldHeader
	LRO          *lroData
}

type lroData struct {
	ResponseType string
	MetadataType string
}

func buildClientData(api *schema.API, service *schema.Service, pkg string) (*clientData, error) {
	resolver := newImportResolver()

	data := &clientData{
		Package:     pkg,
		APIName:     api.Naming.Name,
		Address:     api.Address,
		Scopes:      api.Scopes,
		ServiceName: service.Name,
		FullName:    api.FullName(service),
	}

	for _, m := range service.Methods {
		md := methodData{
			Name:         m.Name,
			RequestType:  resolver.typeExpr(m.Request),
			FieldHeaders: m.FieldHeaders,
		}
		if m.LRO != nil {
			data.HasLRO = true
			md.LRO = &lroData{
				ResponseType: resolver.typeExpr(m.LRO.Response),
				MetadataType: resolver.typeExpr(m.LRO.Metadata),
			}
		} else {
			md.ResponseType = resolver.typeExpr(m.Response)
		}
		data.Methods = append(data.Methods, md)
	}

	data.Imports = resolver.imports()
	return data, nil
}

// importResolver assigns a stable alias to every proto import a client file
// mentions, suffixing on base-name collisions.
type importResolver struct {
	order   []string
	aliases map[string]string // path -> alias
	taken   map[string]bool   // alias -> true
}

func newImportResolver() *importResolver {
	return &importResolver{
		aliases: make(map[string]string),
		taken:   make(map[string]bool),
	}
}

// typeExpr renders a type reference through the import's alias, for example
// "testpb.Widget". Templates add the pointer or composite literal syntax.
func (r *importResolver) typeExpr(ref schema.TypeRef) string {
	return r.alias(ref.Import) + "." + ref.Name
}

func (r *importResolver) alias(importPath string) string {
	if alias, ok := r.aliases[importPath]; ok {
		return alias
	}
	alias := sanitizeAlias(path.Base(importPath))
	for i := 0; r.taken[alias]; i++ {
		alias = fmt.Sprintf("%s_%d", sanitizeAlias(path.Base(importPath)), i)
	}
	r.aliases[importPath] = alias
	r.taken[alias] = true
	r.order = append(r.order, importPath)
	return alias
}

func (r *importResolver) imports() []importSpec {
	specs := make([]importSpec, 0, len(r.order))
	for _, importPath := range r.order {
		alias := r.aliases[importPath]
		spec := importSpec{Path: importPath}
		if alias != path.Base(importPath) {
			spec.Alias = alias
		}
		specs = append(specs, spec)
	}
	return specs
}

func sanitizeAlias(base string) string {
	var out strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	if s := out.String(); s != "" && !(s[0] >= '0' && s[0] <= '9') {
		return s
	}
	return "pb_" + out.String()
}
