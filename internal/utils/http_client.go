package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the full resty API is available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client with the given per-request timeout.
// A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
