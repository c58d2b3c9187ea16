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

// Package prototest provides dynamic test messages for a fixed test.v1
// schema so runtime tests can exercise real proto wire serialization
// without generated message packages.
package prototest

import (
	"fmt"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

var (
	fileOnce sync.Once
	file     protoreflect.FileDescriptor
	fileErr  error
)

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_STRING)
}

func scalarField(name string, number int32, kind descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   kind.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
	}
}

func testFileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("test/v1/test.proto"),
		Package: proto.String("test.v1"),
		Syntax:  proto.String("proto3"),
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{
				Name: proto.String("Color"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: proto.String("COLOR_UNSPECIFIED"), Number: proto.Int32(0)},
					{Name: proto.String("RED"), Number: proto.Int32(1)},
				},
			},
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Widget"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("id", 1),
					stringField("name", 2),
					scalarField("size", 3, descriptorpb.FieldDescriptorProto_TYPE_INT32),
				},
			},
			{
				Name: proto.String("GetWidgetRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("id", 1),
					stringField("name", 2),
					messageField("template", 3, ".test.v1.Widget"),
					scalarField("urgent", 4, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					scalarField("count", 5, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
					scalarField("ratio", 6, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
					scalarField("blob", 7, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
					{
						Name:     proto.String("color"),
						Number:   proto.Int32(8),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_ENUM.Enum(),
						TypeName: proto.String(".test.v1.Color"),
					},
					{
						Name:   proto.String("tags"),
						Number: proto.Int32(9),
						Label:  descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
						Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
					},
				},
			},
			{
				Name: proto.String("StartJobRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("job_id", 1),
				},
			},
			{
				Name: proto.String("Job"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("id", 1),
					stringField("state", 2),
				},
			},
			{
				Name: proto.String("JobMetadata"),
				Field: []*descriptorpb.FieldDescriptorProto{
					stringField("stage", 1),
				},
			},
		},
	}
}

// File returns the descriptor of the test.v1 schema.
func File() protoreflect.FileDescriptor {
	fileOnce.Do(func() {
		file, fileErr = protodesc.NewFile(testFileProto(), nil)
	})
	if fileErr != nil {
		panic(fmt.Sprintf("prototest: building test.v1 descriptor: %v", fileErr))
	}
	return file
}

// NewMessage returns an empty dynamic message for the named test.v1 message.
func NewMessage(name string) *dynamicpb.Message {
	md := File().Messages().ByName(protoreflect.Name(name))
	if md == nil {
		panic(fmt.Sprintf("prototest: unknown message %q", name))
	}
	return dynamicpb.NewMessage(md)
}

// Set assigns a field on a dynamic message. Message-typed values are
// accepted as proto.Message; enums as protoreflect.EnumNumber.
func Set(m *dynamicpb.Message, field string, value interface{}) *dynamicpb.Message {
	fd := m.Descriptor().Fields().ByName(protoreflect.Name(field))
	if fd == nil {
		panic(fmt.Sprintf("prototest: unknown field %q on %s", field, m.Descriptor().FullName()))
	}
	if mv, ok := value.(proto.Message); ok {
		m.Set(fd, protoreflect.ValueOfMessage(mv.ProtoReflect()))
		return m
	}
	m.Set(fd, protoreflect.ValueOf(value))
	return m
}
