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

package gapicerrors

var (
	// _codeToStatusCode maps all Codes to their corresponding HTTP status code.
	_codeToStatusCode = map[Code]int{
		CodeOK:                 200,
		CodeCancelled:          499,
		CodeUnknown:            500,
		CodeInvalidArgument:    400,
		CodeDeadlineExceeded:   504,
		CodeNotFound:           404,
		CodeAlreadyExists:      409,
		CodePermissionDenied:   403,
		CodeResourceExhausted:  429,
		CodeFailedPrecondition: 400,
		CodeAborted:            409,
		CodeOutOfRange:         400,
		CodeUnimplemented:      501,
		CodeInternal:           500,
		CodeUnavailable:        503,
		CodeDataLoss:           500,
		CodeUnauthenticated:    401,
	}

	// _statusCodeToCodes maps HTTP status codes to a slice of their
	// corresponding Codes.
	_statusCodeToCodes = map[int][]Code{
		200: {CodeOK},
		400: {
			CodeInvalidArgument,
			CodeFailedPrecondition,
			CodeOutOfRange,
		},
		401: {CodeUnauthenticated},
		403: {CodePermissionDenied},
		404: {CodeNotFound},
		409: {
			CodeAborted,
			CodeAlreadyExists,
		},
		429: {CodeResourceExhausted},
		499: {CodeCancelled},
		500: {
			CodeUnknown,
			CodeInternal,
			CodeDataLoss,
		},
		501: {CodeUnimplemented},
		503: {CodeUnavailable},
		504: {CodeDeadlineExceeded},
	}
)

// HTTPStatusCode returns the HTTP status code for the given Code, or 500 if
// the Code is not known.
func HTTPStatusCode(code Code) int {
	statusCode, ok := _codeToStatusCode[code]
	if !ok {
		return 500
	}
	return statusCode
}

// CodeFromHTTPStatus does a best-effort conversion from the given HTTP
// status code to a Code.
//
// If one Code maps to the given HTTP status code, that Code is returned.
// If more than one Code maps to the given HTTP status code, one Code is
// returned. If the status code is >= 400 and < 500, CodeInvalidArgument is
// returned. Else, CodeUnknown is returned.
func CodeFromHTTPStatus(statusCode int) Code {
	codes, ok := _statusCodeToCodes[statusCode]
	if !ok || len(codes) == 0 {
		if statusCode >= 400 && statusCode < 500 {
			return CodeInvalidArgument
		}
		return CodeUnknown
	}
	return codes[0]
}
