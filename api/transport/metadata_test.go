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

package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMDOrderAndDuplicates(t *testing.T) {
	md := Pairs("a", "1", "b", "2")
	md = md.Append("a", "3")

	assert.Equal(t, MD{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "a", Value: "3"},
	}, md)

	v, ok := md.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v, "Get returns the last value")

	assert.Equal(t, []string{"1", "3"}, md.Values("a"))

	_, ok = md.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, md.Values("missing"))
}

func TestMDCopy(t *testing.T) {
	md := Pairs("a", "1")
	cp := md.Copy()
	cp[0].Value = "changed"
	assert.Equal(t, "1", md[0].Value)

	assert.Nil(t, MD(nil).Copy())
}

func TestPairsPanicsOnOddArguments(t *testing.T) {
	assert.Panics(t, func() { Pairs("a") })
}
