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

// Package gen renders a service model into Go client source: one client file
// per service plus a package doc file that wires in the default transport.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"strings"
	"text/template"
	"unicode"

	"github.com/landrito/gapic-generator-go/internal/schema"
)

// File is one generated source file.
type File struct {
	// Name is the file name relative to the output directory.
	Name string

	// Content is formatted Go source.
	Content []byte
}

// Generate renders every client for the given service model.
func Generate(api *schema.API) ([]File, error) {
	pkg := path.Base(api.Naming.GoPackage)

	files := []File{{Name: "doc.go"}}
	content, err := render(docTemplate, docData{
		Package: pkg,
		APIName: api.Naming.LongName(),
	})
	if err != nil {
		return nil, err
	}
	files[0].Content = content

	for i := range api.Services {
		service := &api.Services[i]
		data, err := buildClientData(api, service, pkg)
		if err != nil {
			return nil, err
		}
		content, err := render(clientTemplate, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Name:    snakeCase(service.Name) + "_client.go",
			Content: content,
		})
	}
	return files, nil
}

func render(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("could not format go code: %v\n%s", err, buf.String())
	}
	return formatted, nil
}

// snakeCase turns a CamelCase service name into its file name form.
func snakeCase(name string) string {
	var out strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				out.WriteByte('_')
			}
			out.WriteRune(unicode.ToLower(r))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
