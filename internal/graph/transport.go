package graph

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

// NewHTTPClient builds the outbound HTTP client. A zero timeout leaves the
// transport default in place; the component itself imposes none. When a
// SOCKS5 proxy address is configured, all dials are routed through it.
func NewHTTPClient(timeout time.Duration, socksProxy string) (*http.Client, error) {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
	}

	if socksProxy != "" {
		socksDialer, err := proxy.SOCKS5("tcp", socksProxy, nil, &net.Dialer{
			Timeout: 30 * time.Second,
		})
		if err != nil {
			return nil, &ConfigurationError{Reason: "invalid socks5 proxy: " + err.Error()}
		}
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return socksDialer.Dial(network, addr)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
