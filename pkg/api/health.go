package api

import (
	"github.com/pulseview/cli/pkg/client"
	"github.com/pulseview/cli/pkg/logger"
)

// CheckHealth probes the backend's liveness endpoint
func CheckHealth() (*HealthResponse, error) {
	var response HealthResponse

	resp, err := client.GetClient().R().
		SetResult(&response).
		Get("/health")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// IsHealthy reports backend reachability as a boolean, never an error
func IsHealthy() bool {
	health, err := CheckHealth()
	if err != nil {
		logger.Warn("Backend health check failed", "err", err)
		return false
	}
	return health.Status == "ok"
}
