package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"formvalidator/internal/adapters/http/response"
	"formvalidator/internal/platform/health"
	"formvalidator/internal/platform/logger"
)

const defaultReadinessTimeout = 5 * time.Second

type ReadinessHandler struct {
	version       string
	healthManager health.ManagerInterface
	timeout       time.Duration
}

// NewReadinessHandler bounds every readiness probe by timeout. A zero
// timeout falls back to five seconds.
func NewReadinessHandler(version string, healthManager health.ManagerInterface, timeout time.Duration) *ReadinessHandler {
	if timeout <= 0 {
		timeout = defaultReadinessTimeout
	}

	return &ReadinessHandler{
		version:       version,
		healthManager: healthManager,
		timeout:       timeout,
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	log := logger.FromContext(ctx)
	healthResults := h.healthManager.CheckAll(ctx)
	overallStatus := StatusPass
	checks := make(map[string][]CheckDetail, len(healthResults))
	var notes []string
	var failed []string

	names := make([]string, 0, len(healthResults))
	for name := range healthResults {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now()
	for _, name := range names {
		result := healthResults[name]

		var status Status
		switch result.Status {
		case health.StatusHealthy:
			status = StatusPass
		case health.StatusUnhealthy:
			status = StatusFail
			overallStatus = StatusFail
		default:
			status = StatusWarn
			if overallStatus == StatusPass {
				overallStatus = StatusWarn
			}
		}

		checkDetail := CheckDetail{
			ComponentId:   name,
			ComponentType: componentType(name),
			Status:        status,
			Time:          now,
			ObservedValue: result.Latency.Milliseconds(),
			ObservedUnit:  "ms",
			Output:        result.Message,
		}

		if result.Error != "" {
			checkDetail.Output = result.Error
		}

		checks[name] = []CheckDetail{checkDetail}

		if status == StatusFail {
			notes = append(notes, "Dependency "+name+" is unavailable")
			failed = append(failed, name)
		}
	}

	readinessResponse := ReadinessResponse{
		Status:    overallStatus,
		ServiceId: ServiceID,
		Version:   h.version,
		Checks:    checks,
		Notes:     notes,
	}

	statusCode := http.StatusOK
	if overallStatus == StatusFail {
		statusCode = http.StatusServiceUnavailable
		log.Warn("Readiness check failed",
			logger.String("status", string(overallStatus)),
			logger.Strings("failed", failed),
		)
	}

	response.RespondJSON(w, statusCode, readinessResponse)
}

// componentType classifies a checker name for the health+json payload.
func componentType(name string) string {
	switch name {
	case RulesComponent:
		return "component"
	case StorageComponent, DatabaseComponent:
		return "datastore"
	default:
		return "dependency"
	}
}
