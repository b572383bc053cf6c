// Package httpclient builds the outbound HTTP clients used for the movie
// search API and for poster probes.
package httpclient

import (
	"errors"
	"net/http"
	"time"

	"github.com/kailas-cloud/moviesearch/internal/version"
)

const defaultTimeout = 10 * time.Second

// Transport sets a User-Agent on requests that do not carry one.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Header.Get("User-Agent") != "" || t.UserAgent == "" {
		return base.RoundTrip(req) //nolint:wrapcheck // transparent transport
	}
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.UserAgent)
	return base.RoundTrip(r) //nolint:wrapcheck // transparent transport
}

// New creates a client with a total timeout. A non-positive timeout uses the default.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
	}
	return &http.Client{
		Transport: &Transport{Base: base, UserAgent: version.UserAgent()},
		Timeout:   timeout,
	}
}
