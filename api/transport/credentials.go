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
	"context"
	"net/http"
	"os"
)

// TokenEnv is the environment variable DetectCredentials reads a bearer
// token from when no credentials are supplied explicitly.
const TokenEnv = "GAPIC_API_TOKEN"

// Credentials is the opaque capability presented to transports at
// construction. Transports never inspect credentials; they only ask for an
// authenticated session bound to the declared scopes and hold it for their
// lifetime.
type Credentials interface {
	NewSession(ctx context.Context, scopes ...string) (*http.Client, error)
}

// TokenCredentials returns Credentials whose sessions attach the given
// static bearer token to every request.
func TokenCredentials(token string) Credentials {
	return &tokenCredentials{token: token}
}

// AnonymousCredentials returns Credentials whose sessions carry no
// authentication at all.
func AnonymousCredentials() Credentials {
	return anonymousCredentials{}
}

// DetectCredentials resolves environment-derived credentials: a bearer
// token from TokenEnv if one is set, anonymous credentials otherwise.
func DetectCredentials() Credentials {
	if token := os.Getenv(TokenEnv); token != "" {
		return TokenCredentials(token)
	}
	return AnonymousCredentials()
}

type tokenCredentials struct {
	token string
}

func (c *tokenCredentials) NewSession(ctx context.Context, scopes ...string) (*http.Client, error) {
	return &http.Client{
		Transport: &tokenRoundTripper{
			token:  c.token,
			scopes: scopes,
			base:   http.DefaultTransport,
		},
	}, nil
}

type anonymousCredentials struct{}

func (anonymousCredentials) NewSession(ctx context.Context, scopes ...string) (*http.Client, error) {
	return &http.Client{}, nil
}

// tokenRoundTripper decorates every request in a session with the bearer
// token and declared scopes.
type tokenRoundTripper struct {
	token  string
	scopes []string
	base   http.RoundTripper
}

func (t *tokenRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	out := req.Clone(req.Context())
	out.Header.Set("Authorization", "Bearer "+t.token)
	for _, scope := range t.scopes {
		out.Header.Add("X-Auth-Scope", scope)
	}
	return t.base.RoundTrip(out)
}
