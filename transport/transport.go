// Package transport builds the HTTP client settings handed to the search
// client: a recognizable User-Agent, HTTP keep-alive, and gzip responses.
package transport

import (
	"net/http"
	"time"
)

// Default header values.
const (
	DefaultUserAgent      = "Bonsai Searchkick Client"
	DefaultKeepAlive      = "timeout=10, max=1000"
	DefaultAcceptEncoding = "gzip"
	DefaultTimeout        = 30 * time.Second
)

// Options holds the client overrides. Empty header values are not sent.
type Options struct {
	UserAgent      string
	KeepAlive      string
	AcceptEncoding string
	Timeout        time.Duration
}

// DefaultOptions returns the stock overrides.
func DefaultOptions() Options {
	return Options{
		UserAgent:      DefaultUserAgent,
		KeepAlive:      DefaultKeepAlive,
		AcceptEncoding: DefaultAcceptEncoding,
		Timeout:        DefaultTimeout,
	}
}

// Headers returns the headers every request should carry.
func (o Options) Headers() http.Header {
	h := make(http.Header)
	if o.UserAgent != "" {
		h.Set("User-Agent", o.UserAgent)
	}
	if o.KeepAlive != "" {
		h.Set("Keep-Alive", o.KeepAlive)
	}
	if o.AcceptEncoding != "" {
		h.Set("Accept-Encoding", o.AcceptEncoding)
	}
	return h
}

// NewClient returns an http.Client that adds the option headers to requests
// that do not already set them. No connection is made until a request is
// sent.
func NewClient(opts Options) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	// An explicit Accept-Encoding turns off the transport's transparent
	// decompression, so the caller sees the compressed body it asked for.
	base.DisableCompression = opts.AcceptEncoding != ""

	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &headerTransport{
			base:    base,
			headers: opts.Headers(),
		},
	}
}

type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	missing := false
	for k := range t.headers {
		if req.Header.Get(k) == "" {
			missing = true
			break
		}
	}
	if !missing {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	for k, v := range t.headers {
		if clone.Header.Get(k) == "" {
			clone.Header[k] = append([]string(nil), v...)
		}
	}
	return t.base.RoundTrip(clone)
}
