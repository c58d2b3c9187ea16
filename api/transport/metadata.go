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

// Pair is a single metadata entry.
type Pair struct {
	Key   string
	Value string
}

// MD is the ordered sequence of metadata key/value pairs passed alongside
// every call. Duplicate keys are allowed and declaration order is preserved;
// this is what lets independently declared field headers for one method
// appear on the wire in declared order.
//
//	md := transport.Pairs("x-widget-id", "id=w1")
//	md = md.Append("x-request-id", "abc")
type MD []Pair

// Pairs builds an MD from alternating key/value strings. Pairs panics if
// given an odd number of arguments.
func Pairs(kv ...string) MD {
	if len(kv)%2 != 0 {
		panic("transport.Pairs: odd number of arguments")
	}
	md := make(MD, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		md = append(md, Pair{Key: kv[i], Value: kv[i+1]})
	}
	return md
}

// Append returns an MD with the given pair appended.
//
// The returned MD MAY not share underlying storage with the original, so the
// returned value MUST always be used instead of the original.
func (md MD) Append(k, v string) MD {
	return append(md, Pair{Key: k, Value: v})
}

// Get retrieves the last value associated with the given key, if any.
func (md MD) Get(k string) (string, bool) {
	for i := len(md) - 1; i >= 0; i-- {
		if md[i].Key == k {
			return md[i].Value, true
		}
	}
	return "", false
}

// Values retrieves every value associated with the given key, in order.
func (md MD) Values(k string) []string {
	var values []string
	for _, pair := range md {
		if pair.Key == k {
			values = append(values, pair.Value)
		}
	}
	return values
}

// Copy returns a copy of the MD that does not share storage with the
// original.
func (md MD) Copy() MD {
	if md == nil {
		return nil
	}
	out := make(MD, len(md))
	copy(out, md)
	return out
}
