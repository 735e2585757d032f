package gh

import (
	"net/http"
	"time"
)

// tokenTransport adds a bearer token to every request
type tokenTransport struct {
	token string
	base  http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "bearer "+t.token)
	return t.base.RoundTrip(r)
}

// NewHTTPClient returns an HTTP client authenticating with a personal access token
func NewHTTPClient(token string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &tokenTransport{token: token, base: http.DefaultTransport},
	}
}
