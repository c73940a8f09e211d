package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a REST client bound to baseURL that sends token as
// a bearer credential and JSON Accept headers with every request.
// A zero timeout leaves resty's default (none) in place.
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetAuthScheme("Bearer")

	if token != "" {
		client.SetAuthToken(token)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
