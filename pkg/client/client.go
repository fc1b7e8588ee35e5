package client

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pulseview/cli/pkg/config"
	"github.com/pulseview/cli/pkg/logger"
)

var httpClient *resty.Client

// Init initializes the HTTP client for the analysis backend
func Init() {
	httpClient = resty.New()

	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", "Pulseview-CLI/0.1.0")

	// The backend proxy accepts a placeholder credential and substitutes its
	// own platform token server-side.
	httpClient.SetHeader("Authorization", "Bearer "+config.GetString("api.bearer_token"))

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode())
		return nil
	})
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

// SetBearerToken overrides the bearer credential for subsequent requests
func SetBearerToken(token string) {
	if httpClient == nil {
		Init()
	}
	httpClient.SetHeader("Authorization", "Bearer "+token)
}
