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

// Package fieldpath reads dotted field paths off request messages for field
// header extraction. Absence is a normal outcome, not an error: header
// fields are optional per-request.
package fieldpath

import (
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Extract traverses the dotted path over the message and returns the leaf
// value rendered as a string.
//
// The second return value reports whether the path resolved to a set,
// singular scalar field. It is false whenever the path names an unknown
// field, an unset field (for proto3 implicit presence this includes scalar
// zero values), a repeated or map field, or a message-typed leaf.
func Extract(msg proto.Message, path string) (string, bool) {
	if msg == nil || path == "" {
		return "", false
	}

	cur := msg.ProtoReflect()
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		fd := cur.Descriptor().Fields().ByName(protoreflect.Name(segment))
		if fd == nil || fd.IsList() || fd.IsMap() {
			return "", false
		}
		if !cur.Has(fd) {
			return "", false
		}

		if i == len(segments)-1 {
			if fd.Kind() == protoreflect.MessageKind || fd.Kind() == protoreflect.GroupKind {
				return "", false
			}
			return formatValue(fd, cur.Get(fd)), true
		}

		// Interior segments must be singular, populated messages.
		if fd.Kind() != protoreflect.MessageKind {
			return "", false
		}
		cur = cur.Get(fd).Message()
	}
	return "", false
}

func formatValue(fd protoreflect.FieldDescriptor, v protoreflect.Value) string {
	switch fd.Kind() {
	case protoreflect.StringKind:
		return v.String()
	case protoreflect.BoolKind:
		return strconv.FormatBool(v.Bool())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return strconv.FormatInt(v.Int(), 10)
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return strconv.FormatUint(v.Uint(), 10)
	case protoreflect.FloatKind:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case protoreflect.DoubleKind:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case protoreflect.EnumKind:
		if ev := fd.Enum().Values().ByNumber(v.Enum()); ev != nil {
			return string(ev.Name())
		}
		return strconv.FormatInt(int64(v.Enum()), 10)
	case protoreflect.BytesKind:
		return string(v.Bytes())
	default:
		return v.String()
	}
}
