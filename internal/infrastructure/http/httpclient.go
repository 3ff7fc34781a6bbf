package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds the HTTP client shared by the external API
// repositories. http.DefaultClient has no timeout, so the jobs always use
// this one: bounded dial/TLS handshake times, connection reuse across the
// per-symbol request loop, and an overall request timeout supplied by the
// caller.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
