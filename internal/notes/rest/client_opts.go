package rest

import (
	"net/http"
	"time"
)

type ClientOpt func(*Client)

// WithHTTPClient replaces the http client, including its timeout.
func WithHTTPClient(h *http.Client) ClientOpt {
	return func(c *Client) {
		c.http = h
	}
}

func WithTimeout(d time.Duration) ClientOpt {
	return func(c *Client) {
		c.http.Timeout = d
	}
}
