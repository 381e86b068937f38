package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient(oauthConfig.Client(ctx, token), 10*time.Second)
//	resp, err := client.R().Get("https://openidconnect.googleapis.com/v1/userinfo")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client on top of the given
// *http.Client (nil means http.DefaultClient). A non-zero timeout bounds
// every request made through the client.
func NewHTTPClient(base *http.Client, timeout time.Duration) *HTTPClient {
	if base == nil {
		base = http.DefaultClient
	}

	client := resty.NewWithClient(base)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
