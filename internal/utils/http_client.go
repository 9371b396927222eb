package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(req).Post("/user/podcast/list")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends and accepts JSON.
// Base URL and timeout are left to the caller.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &HTTPClient{Client: client}
}
