package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"formvalidator/internal/platform/health"
	"formvalidator/internal/version"
)

// maxDrainBytes bounds how much of a probe response is read before the
// connection is returned to the pool.
const maxDrainBytes = 4 << 10

// UpstreamChecker probes the HTTP service registered signups are forwarded
// to. Redirects are not followed: a probe answered with a login page must
// not look healthy.
type UpstreamChecker struct {
	client   *http.Client
	endpoint string
	name     string
}

func NewUpstreamChecker(endpoint, name string, timeout time.Duration) *UpstreamChecker {
	return &UpstreamChecker{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
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
			Message: "invalid upstream endpoint",
			Error:   err.Error(),
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "formvalidator/"+version.Get())

	resp, err := c.client.Do(req)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "upstream unreachable",
			Error:   err.Error(),
		}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: fmt.Sprintf("upstream returned status %d", resp.StatusCode),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("upstream responding with status %d", resp.StatusCode),
	}
}
