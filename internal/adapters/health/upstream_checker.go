package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"scaffold/internal/platform/health"
)

// UpstreamChecker probes a remote dependency's health endpoint. One checker
// is registered per configured upstream, so the readiness report names every
// remote this service calls.
type UpstreamChecker struct {
	client   *http.Client
	endpoint string
	name     string
}

func NewUpstreamChecker(endpoint, name string) *UpstreamChecker {
	return &UpstreamChecker{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		endpoint: endpoint,
		name:     name,
	}
}

func (c *UpstreamChecker) Name() string {
	return c.name
}

func (c *UpstreamChecker) Check(ctx context.Context) health.CheckResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "failed to create request",
			Error:   err.Error(),
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "upstream request failed",
			Error:   err.Error(),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return health.CheckResult{
			Status:  health.StatusHealthy,
			Message: fmt.Sprintf("upstream responding with status %d", resp.StatusCode),
		}
	}

	return health.CheckResult{
		Status:  health.StatusUnhealthy,
		Message: fmt.Sprintf("upstream returned status %d", resp.StatusCode),
	}
}
